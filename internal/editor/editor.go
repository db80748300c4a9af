// Package editor implements cursor navigation and text editing on top of a
// document and the viewport looking into it.
//
// The editor keeps a single absolute cursor. The viewport-relative position
// is derived from it, and after every operation the viewport is scrolled by
// the minimum amount that keeps the cursor on screen.
package editor

import (
	"scribe/internal/document"
	"scribe/internal/domain"
	"scribe/internal/viewport"
)

// Editor couples a document, a viewport and a cursor
type Editor struct {
	doc    *document.Document
	view   *viewport.Viewport
	cursor domain.Coordinates // absolute
	dirty  bool
}

// State is a snapshot of the cursor and scroll position
type State struct {
	Cursor    domain.Coordinates
	RowOffset int
	ColOffset int
}

// New creates an editor with the cursor at the origin
func New(doc *document.Document, view *viewport.Viewport) *Editor {
	if doc == nil {
		doc = document.New()
	}
	if view == nil {
		view = viewport.New(1, 1)
	}
	return &Editor{doc: doc, view: view}
}

func (e *Editor) Document() *document.Document { return e.doc }
func (e *Editor) Viewport() *viewport.Viewport { return e.view }

// Dirty reports whether the document changed since the last load or save
func (e *Editor) Dirty() bool { return e.dirty }

// MarkClean clears the dirty flag, typically after a successful save
func (e *Editor) MarkClean() { e.dirty = false }

// Position returns the absolute cursor position
func (e *Editor) Position() domain.Coordinates {
	return e.cursor
}

// Cursor returns the cursor position relative to the viewport
func (e *Editor) Cursor() domain.Coordinates {
	return e.view.ToRelative(e.cursor)
}

// Load replaces the document content and returns to a clean state at the origin
func (e *Editor) Load(lines []string) {
	e.doc.Replace(lines)
	e.cursor = domain.Origin()
	e.view.ResetRowOffset()
	e.view.ResetColOffset()
	e.dirty = false
}

// Resize changes the text area size and keeps the cursor visible
func (e *Editor) Resize(width, height int) {
	e.view.Resize(width, height)
	e.ScrollToCursor()
}

// ScrollToCursor clamps the cursor to the document and scrolls the viewport
// so the cursor is on screen.
func (e *Editor) ScrollToCursor() {
	e.cursor = e.clamp(e.cursor)
	e.view.Follow(e.cursor)
}

// Snapshot captures the cursor and scroll position
func (e *Editor) Snapshot() State {
	return State{
		Cursor:    e.cursor,
		RowOffset: e.view.RowOffset(),
		ColOffset: e.view.ColOffset(),
	}
}

// Restore returns to a snapshot taken with Snapshot. The cursor is clamped in
// case the document changed in between.
func (e *Editor) Restore(s State) {
	e.view.ResetRowOffset()
	e.view.ResetColOffset()
	e.view.ScrollDown(s.RowOffset)
	e.view.ScrollRight(s.ColOffset)
	e.cursor = s.Cursor
	e.ScrollToCursor()
}

func (e *Editor) clamp(c domain.Coordinates) domain.Coordinates {
	row := e.doc.ClampRow(c.Y)
	col := min(max(c.X, 0), e.doc.LineLen(row))
	return domain.NewCoordinates(col, row)
}
