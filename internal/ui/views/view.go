package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"scribe/internal/domain"
)

// Untitled is shown in the status bar for a buffer without a file name
const Untitled = "[No Name]"

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width     int // text area width
	Height    int // text area rows, the status row comes on top of this
	Lines     []string
	RowOffset int
	ColOffset int

	Cursor        domain.Coordinates // viewport relative
	Position      domain.Coordinates // absolute, shown in the status bar
	CursorVisible bool

	ShowGreeting bool
	Greeting     string

	FileName string
	Dirty    bool

	Prompt       string // rendered prompt including the text input
	PromptActive bool
	Message      string // status message still within its display time
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	cursor cursor.Model
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	c := cursor.New()
	c.Style = styles.Cursor
	c.SetMode(cursor.CursorStatic)
	c.Focus()
	return &Renderer{
		styles: styles,
		cursor: c,
	}
}

// Render produces the complete view: one line per text row plus the
// message bar.
func (r *Renderer) Render(state ViewState) string {
	state.Width = max(state.Width, 1)
	rows := make([]string, 0, state.Height+1)
	greetingRow := state.Height / 3

	for y := 0; y < state.Height; y++ {
		abs := y + state.RowOffset
		cursorX := -1
		if state.CursorVisible && y == state.Cursor.Y {
			cursorX = state.Cursor.X
		}

		switch {
		case state.ShowGreeting && y == greetingRow:
			rows = append(rows, r.renderTildeRow(r.greetingText(state), state.Width, cursorX, true))
		case state.ShowGreeting || abs >= len(state.Lines):
			rows = append(rows, r.renderTildeRow("~", state.Width, cursorX, false))
		default:
			rows = append(rows, r.renderTextRow(visibleSlice(state.Lines[abs], state.ColOffset, state.Width), state.Width, cursorX))
		}
	}

	rows = append(rows, r.renderBottomRow(state))
	return strings.Join(rows, "\n")
}

// visibleSlice returns line[from:from+width], clamped to the line
func visibleSlice(line string, from, width int) string {
	if from >= len(line) {
		return ""
	}
	end := min(from+width, len(line))
	return line[from:end]
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func (r *Renderer) renderTextRow(text string, width, cursorX int) string {
	text = pad(text, width)
	if cursorX < 0 || cursorX >= len(text) {
		return r.styles.Text.Render(text)
	}
	r.cursor.SetChar(string(text[cursorX]))
	return r.styles.Text.Render(text[:cursorX]) + r.cursor.View() + r.styles.Text.Render(text[cursorX+1:])
}

// renderTildeRow draws a row past the document. The leading tilde is dim and
// the rest, if any, is the greeting.
func (r *Renderer) renderTildeRow(text string, width, cursorX int, greeting bool) string {
	text = pad(visibleSlice(text, 0, width), width)
	rest := text[1:]
	if greeting {
		rest = r.styles.Greeting.Render(rest)
	}
	if cursorX == 0 {
		r.cursor.SetChar(text[:1])
		return r.cursor.View() + rest
	}
	return r.styles.Tilde.Render(text[:1]) + rest
}

// greetingText centers the greeting, keeping the leading tilde
func (r *Renderer) greetingText(state ViewState) string {
	greeting := state.Greeting
	if len(greeting) > state.Width {
		greeting = greeting[:state.Width]
	}
	padding := (state.Width - len(greeting)) / 2
	if padding == 0 {
		return "~" + greeting
	}
	return "~" + strings.Repeat(" ", padding-1) + greeting
}

func (r *Renderer) renderBottomRow(state ViewState) string {
	switch {
	case state.PromptActive:
		return ansi.Truncate(r.styles.Prompt.Render(state.Prompt), state.Width, "")
	case state.Message != "":
		return ansi.Truncate(r.styles.Message.Render(state.Message), state.Width, "")
	default:
		return r.renderStatusBar(state)
	}
}

// renderStatusBar shows the file name on the left and the 1-based cursor
// position on the right, across the full width.
func (r *Renderer) renderStatusBar(state ViewState) string {
	right := fmt.Sprintf("%d:%d", state.Position.Y+1, state.Position.X+1)

	suffix := ""
	if state.Dirty {
		suffix = " (modified)"
	}

	name := state.FileName
	if name == "" {
		name = Untitled
	}
	avail := state.Width - len(right) - len(suffix) - 1
	if avail < 1 {
		name = ""
	} else {
		name = runewidth.Truncate(name, avail, "…")
	}

	left := name + suffix
	gap := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	bar := left + strings.Repeat(" ", max(gap, 1)) + right
	return ansi.Truncate(r.styles.StatusBar.Render(bar), state.Width, "")
}
