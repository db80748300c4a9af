package viewmodels

import (
	"fmt"
	"strings"
	"time"

	"scribe/internal/config"
	"scribe/internal/editor"
	"scribe/internal/ui/state"
	"scribe/internal/ui/views"
	"scribe/internal/version"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	editor *editor.Editor

	prompt       string
	promptActive bool
	textEntry    bool
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, ed *editor.Editor) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		editor: ed,
	}
}

// SetPrompt shows prompt on the message bar. textEntry hides the text
// cursor while the user types into the prompt.
func (vm *ViewModel) SetPrompt(prompt string, textEntry bool) {
	vm.prompt = prompt
	vm.promptActive = true
	vm.textEntry = textEntry
}

// ClearPrompt returns the message bar to status display
func (vm *ViewModel) ClearPrompt() {
	vm.prompt = ""
	vm.promptActive = false
	vm.textEntry = false
}

// Greeting returns the configured greeting with the version filled in
func (vm *ViewModel) Greeting() string {
	greeting := vm.config.Editor.Greeting
	if strings.Contains(greeting, "%s") {
		greeting = fmt.Sprintf(greeting, version.GetVersion())
	}
	return greeting
}

// BuildViewState creates a ViewState for rendering at time now
func (vm *ViewModel) BuildViewState(now time.Time) views.ViewState {
	doc := vm.editor.Document()
	view := vm.editor.Viewport()

	return views.ViewState{
		Width:         view.Width,
		Height:        view.Height,
		Lines:         doc.Lines(),
		RowOffset:     view.RowOffset(),
		ColOffset:     view.ColOffset(),
		Cursor:        vm.editor.Cursor(),
		Position:      vm.editor.Position(),
		CursorVisible: !vm.textEntry,
		ShowGreeting:  doc.IsEmpty() && !vm.editor.Dirty(),
		Greeting:      vm.Greeting(),
		FileName:      vm.state.FileName,
		Dirty:         vm.editor.Dirty(),
		Prompt:        vm.prompt,
		PromptActive:  vm.promptActive,
		Message:       vm.state.VisibleStatus(now, vm.config.MessageDuration()),
	}
}
