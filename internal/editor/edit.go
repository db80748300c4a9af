package editor

import (
	"strings"

	"scribe/internal/domain"
)

// IsPrintable reports whether r is a printable ASCII character
func IsPrintable(r rune) bool {
	return r >= ' ' && r <= '~'
}

// InsertChar inserts c before the cursor and advances past it. '\n' splits
// the line; other non-printable runes are ignored.
func (e *Editor) InsertChar(c rune) {
	if c == '\n' {
		e.InsertNewline()
		return
	}
	if !IsPrintable(c) {
		return
	}
	e.doc.InsertChar(e.cursor.Y, e.cursor.X, c)
	e.dirty = true
	e.Move(domain.Right)
}

// InsertString inserts printable characters and line breaks from s. "\r\n"
// and a lone '\r' count as line breaks. Anything else is dropped.
func (e *Editor) InsertString(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	for _, r := range s {
		switch {
		case r == '\n':
			e.InsertNewline()
		case IsPrintable(r):
			e.InsertChar(r)
		}
	}
}

// InsertNewline splits the current line at the cursor and moves to the start
// of the new line.
func (e *Editor) InsertNewline() {
	e.doc.SplitLine(e.cursor.Y, e.cursor.X)
	e.dirty = true
	e.cursor = domain.NewCoordinates(0, e.cursor.Y+1)
	e.view.ResetColOffset()
	e.ScrollToCursor()
}

// Backspace removes the character left of the cursor, joining with the
// previous line at column 0. It reports false at the start of the document.
func (e *Editor) Backspace() bool {
	if e.cursor == domain.Origin() {
		return false
	}

	if e.cursor.X == 0 {
		// cursor lands on the join point
		e.Move(domain.Left)
		e.doc.JoinWithNext(e.cursor.Y)
	} else {
		e.Move(domain.Left)
		e.doc.DeleteChar(e.cursor.Y, e.cursor.X)
	}
	e.dirty = true
	e.ScrollToCursor()
	return true
}

// DeleteForward removes the character under the cursor, joining the next line
// at end of line. It reports false at the end of the document.
func (e *Editor) DeleteForward() bool {
	eol := e.EndOfLine(e.cursor.Y)
	switch {
	case e.cursor.X < eol.X:
		e.doc.DeleteChar(e.cursor.Y, e.cursor.X)
	case e.cursor.Y < e.doc.LastRow():
		e.doc.JoinWithNext(e.cursor.Y)
	default:
		return false
	}
	e.dirty = true
	e.ScrollToCursor()
	return true
}
