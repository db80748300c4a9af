package editor

import "scribe/internal/domain"

// EndOfLine returns the absolute end-of-line position of row. The row is
// clamped to the document first.
func (e *Editor) EndOfLine(row int) domain.Coordinates {
	row = e.doc.ClampRow(row)
	return domain.NewCoordinates(e.doc.LineLen(row), row)
}

// Move steps the cursor once in dir. Moves that would leave the document are
// silently ignored.
func (e *Editor) Move(dir domain.Direction) {
	switch dir {
	case domain.Up:
		if next, ok := e.cursor.TryUp(); ok {
			e.moveToRow(next.Y)
		}
	case domain.Down:
		if next, ok := e.cursor.TryBoundedStepBy(domain.Down, 1, domain.Below(e.doc.LineCount())); ok {
			e.moveToRow(next.Y)
		}
	case domain.Left:
		e.moveLeft()
	case domain.Right:
		e.moveRight()
	}
	e.ScrollToCursor()
}

// moveToRow moves vertically and keeps the column where the target line
// allows it.
func (e *Editor) moveToRow(row int) {
	eol := e.EndOfLine(row)
	if eol.X < e.view.ColOffset() {
		// target line ends before the visible part starts
		e.view.ResetColOffset()
	}
	e.cursor = domain.NewCoordinates(min(e.cursor.X, eol.X), eol.Y)
}

func (e *Editor) moveLeft() {
	if next, ok := e.cursor.TryLeft(); ok {
		e.cursor = domain.NewCoordinates(min(next.X, e.EndOfLine(next.Y).X), next.Y)
		return
	}
	if e.cursor.Y == 0 {
		// beginning of file
		return
	}
	e.cursor = e.EndOfLine(e.cursor.Y - 1)
}

func (e *Editor) moveRight() {
	eol := e.EndOfLine(e.cursor.Y)
	if e.cursor.X < eol.X {
		e.cursor = e.cursor.Right()
		return
	}
	if e.cursor.Y >= e.doc.LastRow() {
		// end of file
		return
	}
	e.cursor = domain.NewCoordinates(0, e.cursor.Y+1)
}

// Home moves to the start of the current line
func (e *Editor) Home() {
	e.cursor.X = 0
	e.ScrollToCursor()
}

// End moves to the end of the current line
func (e *Editor) End() {
	e.cursor = e.EndOfLine(e.cursor.Y)
	e.ScrollToCursor()
}

// PageUp moves the cursor up by one viewport height
func (e *Editor) PageUp() {
	e.moveToRow(max(e.cursor.Y-e.view.Height, 0))
	e.ScrollToCursor()
}

// PageDown moves the cursor down by one viewport height
func (e *Editor) PageDown() {
	e.moveToRow(min(e.cursor.Y+e.view.Height, e.doc.LastRow()))
	e.ScrollToCursor()
}

// JumpTo places the cursor at an absolute position, clamped to the document,
// and scrolls it into view.
func (e *Editor) JumpTo(abs domain.Coordinates) {
	e.cursor = abs
	e.ScrollToCursor()
}

// CenterOn places the cursor at abs and recenters the viewport around it
func (e *Editor) CenterOn(abs domain.Coordinates) {
	e.cursor = e.clamp(abs)
	e.view.CenterOn(e.cursor)
}
