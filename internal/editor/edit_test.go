package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scribe/internal/domain"
)

func TestInsertChar(t *testing.T) {
	e := newEditor(80, 10, "ab")
	e.InsertChar('x')

	assert.Equal(t, []string{"xab"}, e.Document().Lines())
	assert.Equal(t, at(1, 0), e.Position())
	assert.True(t, e.Dirty())
}

func TestInsertCharAtEndOfLine(t *testing.T) {
	e := newEditor(80, 10, "ab", "cd")
	e.End()
	e.InsertChar('!')

	assert.Equal(t, []string{"ab!", "cd"}, e.Document().Lines())
	assert.Equal(t, at(3, 0), e.Position())
}

func TestInsertCharScrollsHorizontally(t *testing.T) {
	e := newEditor(3, 2)
	for _, r := range "hello" {
		e.InsertChar(r)
	}

	assert.Equal(t, []string{"hello"}, e.Document().Lines())
	assert.Equal(t, at(5, 0), e.Position())
	assert.Equal(t, 3, e.Viewport().ColOffset())
	assert.Equal(t, at(2, 0), e.Cursor())
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		start domain.Coordinates
		want  []string
	}{
		{"middle of line", []string{"abcd"}, at(2, 0), []string{"ab", "cd"}},
		{"start of line", []string{"abcd"}, at(0, 0), []string{"", "abcd"}},
		{"end of line", []string{"abcd", "e"}, at(4, 0), []string{"abcd", "", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(80, 10, tt.lines...)
			e.JumpTo(tt.start)
			e.InsertNewline()

			assert.Equal(t, tt.want, e.Document().Lines())
			assert.Equal(t, at(0, tt.start.Y+1), e.Position())
			assert.True(t, e.Dirty())
		})
	}
}

func TestInsertNewlineResetsColumnOffset(t *testing.T) {
	e := newEditor(4, 5, "abcdefghij")
	e.End()
	require.NotZero(t, e.Viewport().ColOffset())

	e.InsertNewline()
	assert.Equal(t, 0, e.Viewport().ColOffset())
	assert.Equal(t, at(0, 1), e.Cursor())
}

func TestBackspace(t *testing.T) {
	t.Run("deletes previous character", func(t *testing.T) {
		e := newEditor(80, 10, "abc")
		e.JumpTo(at(2, 0))

		require.True(t, e.Backspace())
		assert.Equal(t, []string{"ac"}, e.Document().Lines())
		assert.Equal(t, at(1, 0), e.Position())
		assert.True(t, e.Dirty())
	})

	t.Run("joins with previous line at column zero", func(t *testing.T) {
		e := newEditor(80, 10, "ab", "cd")
		e.JumpTo(at(0, 1))

		require.True(t, e.Backspace())
		assert.Equal(t, []string{"abcd"}, e.Document().Lines())
		assert.Equal(t, at(2, 0), e.Position())
	})

	t.Run("does nothing at origin", func(t *testing.T) {
		e := newEditor(80, 10, "ab")

		assert.False(t, e.Backspace())
		assert.Equal(t, []string{"ab"}, e.Document().Lines())
		assert.Equal(t, domain.Origin(), e.Position())
		assert.False(t, e.Dirty())
	})
}

func TestDeleteForward(t *testing.T) {
	t.Run("deletes character under cursor", func(t *testing.T) {
		e := newEditor(80, 10, "abc")
		e.JumpTo(at(1, 0))

		require.True(t, e.DeleteForward())
		assert.Equal(t, []string{"ac"}, e.Document().Lines())
		assert.Equal(t, at(1, 0), e.Position())
		assert.True(t, e.Dirty())
	})

	t.Run("joins next line at end of line", func(t *testing.T) {
		e := newEditor(80, 10, "ab", "cd")
		e.JumpTo(at(2, 0))

		require.True(t, e.DeleteForward())
		assert.Equal(t, []string{"abcd"}, e.Document().Lines())
		assert.Equal(t, at(2, 0), e.Position())
	})

	t.Run("does nothing at end of document", func(t *testing.T) {
		e := newEditor(80, 10, "ab", "cd")
		e.JumpTo(at(2, 1))

		assert.False(t, e.DeleteForward())
		assert.Equal(t, []string{"ab", "cd"}, e.Document().Lines())
		assert.False(t, e.Dirty())
	})
}

func TestInsertThenBackspaceRestores(t *testing.T) {
	e := newEditor(5, 3, "hello world", "second")
	e.JumpTo(at(8, 0))
	before := e.Document().Lines()
	pos := e.Position()

	e.InsertChar('z')
	e.Backspace()
	assert.Equal(t, before, e.Document().Lines())
	assert.Equal(t, pos, e.Position())

	e.InsertNewline()
	e.Backspace()
	assert.Equal(t, before, e.Document().Lines())
	assert.Equal(t, pos, e.Position())
}

func TestInsertString(t *testing.T) {
	e := newEditor(80, 10)
	e.InsertString("ab\n\tc\x1bd")

	assert.Equal(t, []string{"ab", "cd"}, e.Document().Lines())
	assert.Equal(t, at(2, 1), e.Position())
	assert.True(t, e.Dirty())
}

func TestInsertStringLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lf", "one\ntwo", []string{"one", "two"}},
		{"cr", "one\rtwo", []string{"one", "two"}},
		{"crlf", "one\r\ntwo", []string{"one", "two"}},
		{"blank line", "a\r\rb", []string{"a", "", "b"}},
		{"trailing cr", "a\r", []string{"a", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditor(80, 10)
			e.InsertString(tt.in)
			assert.Equal(t, tt.want, e.Document().Lines())
		})
	}
}

func TestInsertCharIgnoresNonPrintable(t *testing.T) {
	e := newEditor(80, 10, "ab")
	for _, r := range []rune{'é', '\t', 0x1b, '\r', '世'} {
		e.InsertChar(r)
	}

	assert.Equal(t, []string{"ab"}, e.Document().Lines())
	assert.Equal(t, at(0, 0), e.Position())
	assert.False(t, e.Dirty())
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, IsPrintable(' '))
	assert.True(t, IsPrintable('~'))
	assert.True(t, IsPrintable('a'))
	assert.False(t, IsPrintable('\t'))
	assert.False(t, IsPrintable(0x7f))
	assert.False(t, IsPrintable('é'))
}

func TestMarkClean(t *testing.T) {
	e := newEditor(80, 10)
	e.InsertChar('a')
	require.True(t, e.Dirty())
	e.MarkClean()
	assert.False(t, e.Dirty())
}
