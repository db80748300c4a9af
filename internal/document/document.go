// Package document holds the editable text as an ordered list of lines.
//
// A Document is never empty: a new or fully cleared buffer is a single empty
// line, so there is always a valid cursor target. Row and column arguments
// are clamped to the current bounds instead of being rejected.
package document

import "strings"

// Document is an ordered sequence of text lines
type Document struct {
	lines []string
}

// New creates a document holding a copy of lines
func New(lines ...string) *Document {
	d := &Document{}
	d.Replace(lines)
	return d
}

// Replace swaps the whole content for a copy of lines
func (d *Document) Replace(lines []string) {
	if len(lines) == 0 {
		d.lines = []string{""}
		return
	}
	d.lines = append(make([]string, 0, len(lines)), lines...)
}

// LineCount returns the number of lines, always at least 1
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LastRow returns the index of the last line
func (d *Document) LastRow() int {
	return len(d.lines) - 1
}

// ClampRow limits row to [0, LastRow()]
func (d *Document) ClampRow(row int) int {
	return clamp(row, 0, d.LastRow())
}

// Line returns the line at row, clamped to the document
func (d *Document) Line(row int) string {
	return d.lines[d.ClampRow(row)]
}

// LineLen returns the length of the line at row, clamped to the document
func (d *Document) LineLen(row int) int {
	return len(d.Line(row))
}

// Lines returns a copy of all lines
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// IsEmpty reports whether the document is a single empty line
func (d *Document) IsEmpty() bool {
	return len(d.lines) == 1 && d.lines[0] == ""
}

// String joins the lines with newline characters
func (d *Document) String() string {
	return strings.Join(d.lines, "\n")
}

// InsertChar splices c into the line at row before col
func (d *Document) InsertChar(row, col int, c rune) {
	d.InsertText(row, col, string(c))
}

// InsertText splices s into the line at row before col. s must not contain
// line breaks; use SplitLine for those.
func (d *Document) InsertText(row, col int, s string) {
	row = d.ClampRow(row)
	line := d.lines[row]
	col = clamp(col, 0, len(line))
	d.lines[row] = line[:col] + s + line[col:]
}

// DeleteChar removes the character at col on row. It reports false when col
// is at or past the end of the line.
func (d *Document) DeleteChar(row, col int) bool {
	row = d.ClampRow(row)
	line := d.lines[row]
	if col < 0 || col >= len(line) {
		return false
	}
	d.lines[row] = line[:col] + line[col+1:]
	return true
}

// SplitLine breaks the line at row into line[:col], kept at row, and
// line[col:], inserted as a new line right after it.
func (d *Document) SplitLine(row, col int) {
	row = d.ClampRow(row)
	line := d.lines[row]
	col = clamp(col, 0, len(line))
	d.lines[row] = line[:col]
	d.InsertLine(row+1, line[col:])
}

// JoinWithNext appends the line after row onto row and removes it. It
// reports false when row is the last line.
func (d *Document) JoinWithNext(row int) bool {
	if row < 0 || row >= d.LastRow() {
		return false
	}
	d.lines[row] += d.lines[row+1]
	d.RemoveLine(row + 1)
	return true
}

// InsertLine inserts s as a new line at index at; at is clamped to
// [0, LineCount()] so a line can be appended.
func (d *Document) InsertLine(at int, s string) {
	at = clamp(at, 0, len(d.lines))
	d.lines = append(d.lines, "")
	copy(d.lines[at+1:], d.lines[at:])
	d.lines[at] = s
}

// RemoveLine deletes the line at index at. Removing the only line leaves a
// single empty line behind. It reports false when at is out of range.
func (d *Document) RemoveLine(at int) bool {
	if at < 0 || at >= len(d.lines) {
		return false
	}
	if len(d.lines) == 1 {
		d.lines[0] = ""
		return true
	}
	d.lines = append(d.lines[:at], d.lines[at+1:]...)
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
