package viewmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"scribe/internal/config"
	"scribe/internal/document"
	"scribe/internal/domain"
	"scribe/internal/editor"
	"scribe/internal/ui/state"
	"scribe/internal/version"
	"scribe/internal/viewport"
)

func TestBuildViewState(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ed := editor.New(document.New("one", "two"), viewport.New(10, 4))
	ed.JumpTo(domain.NewCoordinates(2, 1))
	st := state.NewAppState("f.txt")
	st.SetStatus("hello", now)

	vm := NewViewModel(st, config.DefaultConfig(), ed)
	vs := vm.BuildViewState(now.Add(500 * time.Millisecond))

	assert.Equal(t, 10, vs.Width)
	assert.Equal(t, 4, vs.Height)
	assert.Equal(t, []string{"one", "two"}, vs.Lines)
	assert.Equal(t, domain.NewCoordinates(2, 1), vs.Cursor)
	assert.Equal(t, domain.NewCoordinates(2, 1), vs.Position)
	assert.True(t, vs.CursorVisible)
	assert.False(t, vs.ShowGreeting)
	assert.Equal(t, "f.txt", vs.FileName)
	assert.Equal(t, "hello", vs.Message)

	vs = vm.BuildViewState(now.Add(2 * time.Second))
	assert.Empty(t, vs.Message, "message expires")
}

func TestPromptHidesCursorWhileTyping(t *testing.T) {
	vm := NewViewModel(state.NewAppState(""), config.DefaultConfig(), editor.New(nil, viewport.New(5, 5)))

	vm.SetPrompt("Search: x", true)
	vs := vm.BuildViewState(time.Now())
	assert.True(t, vs.PromptActive)
	assert.False(t, vs.CursorVisible)
	assert.Equal(t, "Search: x", vs.Prompt)

	vm.SetPrompt("Quit? (y/n)", false)
	assert.True(t, vm.BuildViewState(time.Now()).CursorVisible)

	vm.ClearPrompt()
	assert.False(t, vm.BuildViewState(time.Now()).PromptActive)
}

func TestGreeting(t *testing.T) {
	cfg := config.DefaultConfig()
	ed := editor.New(nil, viewport.New(5, 5))
	vm := NewViewModel(state.NewAppState(""), cfg, ed)

	assert.Contains(t, vm.Greeting(), version.GetVersion())
	assert.True(t, vm.BuildViewState(time.Now()).ShowGreeting)

	cfg.Editor.Greeting = "plain"
	assert.Equal(t, "plain", vm.Greeting())

	ed.InsertChar('a')
	ed.Backspace()
	assert.False(t, vm.BuildViewState(time.Now()).ShowGreeting, "greeting stays hidden once edited")
}
