package commands

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/editor"
	"scribe/internal/eventbus"
	"scribe/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Saver writes document lines to a path
type Saver interface {
	Save(path string, lines []string) (int, error)
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Store   Saver
	Editor  *editor.Editor
	Now     func() time.Time
	Timeout time.Duration // how long a failure stays on screen before quitting
}

// SaveFailedMsg is sent after a failed save has been shown to the user
type SaveFailedMsg struct {
	Path string
	Err  error
}

// SaveCommand writes the buffer to disk
type SaveCommand struct {
	ctx  *CommandContext
	path string
}

// NewSaveCommand creates a new save command
func NewSaveCommand(ctx *CommandContext, path string) *SaveCommand {
	return &SaveCommand{
		ctx:  ctx,
		path: path,
	}
}

// Execute performs the save. A failure is reported on the message bar and
// followed by a SaveFailedMsg once the message has been visible.
func (c *SaveCommand) Execute() tea.Cmd {
	n, err := c.ctx.Store.Save(c.path, c.ctx.Editor.Document().Lines())
	if err != nil {
		log.Printf("Save failed for %s: %v", c.path, err)
		c.ctx.State.SetStatus(fmt.Sprintf("Can't save! I/O error: %v", err), c.ctx.Now())
		path := c.path
		return tea.Tick(c.ctx.Timeout, func(time.Time) tea.Msg {
			return SaveFailedMsg{Path: path, Err: err}
		})
	}

	c.ctx.State.FileName = c.path
	c.ctx.Editor.MarkClean()
	c.ctx.State.SetStatus(fmt.Sprintf("%d bytes written to %s", n, c.path), c.ctx.Now())

	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.DocumentSavedEvent{Path: c.path, Bytes: n})
	}
	return nil
}
