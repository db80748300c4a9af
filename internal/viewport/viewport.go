// Package viewport tracks the visible window into a document.
package viewport

import (
	"math"

	"scribe/internal/domain"
)

// Viewport is the visible window into the document. The absolute row shown
// at viewport row r is r+RowOffset(); the absolute column shown at viewport
// column c is c+ColOffset(). Offsets never go negative.
type Viewport struct {
	Width  int
	Height int

	rowOffset int
	colOffset int
}

// New creates a viewport for the given text area size
func New(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize changes the text area size. Dimensions are kept at least 1 so that
// a cursor cell always exists.
func (v *Viewport) Resize(width, height int) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)
}

func (v *Viewport) RowOffset() int { return v.rowOffset }
func (v *Viewport) ColOffset() int { return v.colOffset }

// Offset returns the absolute coordinates of the top-left cell
func (v *Viewport) Offset() domain.Coordinates {
	return domain.NewCoordinates(v.colOffset, v.rowOffset)
}

func (v *Viewport) ScrollUp(by int)    { v.rowOffset = saturatingSub(v.rowOffset, by) }
func (v *Viewport) ScrollDown(by int)  { v.rowOffset = saturatingAdd(v.rowOffset, by) }
func (v *Viewport) ScrollLeft(by int)  { v.colOffset = saturatingSub(v.colOffset, by) }
func (v *Viewport) ScrollRight(by int) { v.colOffset = saturatingAdd(v.colOffset, by) }

func (v *Viewport) ResetRowOffset() { v.rowOffset = 0 }
func (v *Viewport) ResetColOffset() { v.colOffset = 0 }

// Contains reports whether an absolute position is on screen
func (v *Viewport) Contains(abs domain.Coordinates) bool {
	return abs.Y >= v.rowOffset && abs.Y < v.rowOffset+v.Height &&
		abs.X >= v.colOffset && abs.X < v.colOffset+v.Width
}

// ToRelative converts an absolute position to viewport coordinates
func (v *Viewport) ToRelative(abs domain.Coordinates) domain.Coordinates {
	return abs.Sub(v.Offset())
}

// ToAbsolute converts viewport coordinates to an absolute position
func (v *Viewport) ToAbsolute(rel domain.Coordinates) domain.Coordinates {
	return rel.Add(v.Offset())
}

// Follow scrolls by the smallest amount that brings abs on screen
func (v *Viewport) Follow(abs domain.Coordinates) {
	if abs.Y < v.rowOffset {
		v.ScrollUp(v.rowOffset - abs.Y)
	} else if abs.Y >= v.rowOffset+v.Height {
		v.ScrollDown(abs.Y - (v.rowOffset + v.Height) + 1)
	}

	if abs.X < v.colOffset {
		v.ScrollLeft(v.colOffset - abs.X)
	} else if abs.X >= v.colOffset+v.Width {
		v.ScrollRight(abs.X - (v.colOffset + v.Width) + 1)
	}
}

// CenterOn resets both offsets and scrolls so abs sits in the middle of the
// viewport, or as close to it as the top-left edge allows.
func (v *Viewport) CenterOn(abs domain.Coordinates) {
	v.ResetRowOffset()
	v.ResetColOffset()
	v.ScrollDown(saturatingSub(abs.Y, v.Height/2))
	v.ScrollRight(saturatingSub(abs.X, v.Width/2))
}

func saturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

func saturatingAdd(a, b int) int {
	if b < 0 {
		return saturatingSub(a, -b)
	}
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
