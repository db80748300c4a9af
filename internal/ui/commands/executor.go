package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx *CommandContext) *Executor {
	return &Executor{ctx: ctx}
}

// ExecuteSave creates and executes a save command
func (e *Executor) ExecuteSave(path string) tea.Cmd {
	cmd := NewSaveCommand(e.ctx, path)
	return cmd.Execute()
}
