package domain

import (
	"fmt"
	"math"
)

// Coordinates is a point on a character grid. X is the column and Y the row.
// Values are immutable; every step returns a new point.
type Coordinates struct {
	X int
	Y int
}

// Range is a half-open interval [Lo, Hi) used to bound a checked step
type Range struct {
	Lo int
	Hi int
}

// Below returns the range [0, n)
func Below(n int) Range {
	return Range{Lo: 0, Hi: n}
}

// AtLeast returns the range [n, ∞)
func AtLeast(n int) Range {
	return Range{Lo: n, Hi: math.MaxInt}
}

// Contains reports whether v lies inside the range
func (r Range) Contains(v int) bool {
	return v >= r.Lo && v < r.Hi
}

// NewCoordinates creates a point from column and row
func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Origin returns (0, 0)
func Origin() Coordinates {
	return Coordinates{}
}

func (c Coordinates) Up() Coordinates    { return Coordinates{X: c.X, Y: c.Y - 1} }
func (c Coordinates) Down() Coordinates  { return Coordinates{X: c.X, Y: c.Y + 1} }
func (c Coordinates) Left() Coordinates  { return Coordinates{X: c.X - 1, Y: c.Y} }
func (c Coordinates) Right() Coordinates { return Coordinates{X: c.X + 1, Y: c.Y} }

// Step moves one cell in the given direction without any bounds check
func (c Coordinates) Step(dir Direction) Coordinates {
	return c.StepBy(dir, 1)
}

// StepBy moves n cells in the given direction without any bounds check
func (c Coordinates) StepBy(dir Direction, n int) Coordinates {
	switch dir {
	case Up:
		return Coordinates{X: c.X, Y: c.Y - n}
	case Down:
		return Coordinates{X: c.X, Y: c.Y + n}
	case Left:
		return Coordinates{X: c.X - n, Y: c.Y}
	case Right:
		return Coordinates{X: c.X + n, Y: c.Y}
	}
	return c
}

// TryStep is the checked form of Step: it fails when an axis would go negative
func (c Coordinates) TryStep(dir Direction) (Coordinates, bool) {
	return c.TryStepBy(dir, 1)
}

// TryStepBy is the checked form of StepBy
func (c Coordinates) TryStepBy(dir Direction, n int) (Coordinates, bool) {
	return c.TryBoundedStepBy(dir, n, AtLeast(0))
}

func (c Coordinates) TryUp() (Coordinates, bool)    { return c.TryStep(Up) }
func (c Coordinates) TryDown() (Coordinates, bool)  { return c.TryStep(Down) }
func (c Coordinates) TryLeft() (Coordinates, bool)  { return c.TryStep(Left) }
func (c Coordinates) TryRight() (Coordinates, bool) { return c.TryStep(Right) }

// TryBoundedStepBy moves n cells and rejects the result when the moved axis
// leaves bounds or would become negative. On failure the receiver is returned
// unchanged together with false.
func (c Coordinates) TryBoundedStepBy(dir Direction, n int, bounds Range) (Coordinates, bool) {
	next := c.StepBy(dir, n)

	var from, to int
	switch dir {
	case Up, Down:
		from, to = c.Y, next.Y
	case Left, Right:
		from, to = c.X, next.X
	default:
		return c, false
	}

	// wrapped around on overflow
	forward := dir == Down || dir == Right
	if (forward && n > 0 && to < from) || (!forward && n > 0 && to > from) {
		return c, false
	}
	if to < 0 || !bounds.Contains(to) {
		return c, false
	}
	return next, true
}

// Add returns the component-wise sum
func (c Coordinates) Add(o Coordinates) Coordinates {
	return Coordinates{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference
func (c Coordinates) Sub(o Coordinates) Coordinates {
	return Coordinates{X: c.X - o.X, Y: c.Y - o.Y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
