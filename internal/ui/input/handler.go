package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/ui/input/modes"
	"scribe/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for text modes
	keys        types.KeyMap
}

func New() *Handler {
	return NewWithKeys(types.DefaultKeyMap())
}

func NewWithKeys(keys types.KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = ""

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeSearchCycle] = modes.NewSearchCycleMode()
	h.modes[types.ModeSaveAs] = modes.NewSaveAsMode(h.textInput)
	h.modes[types.ModeQuitConfirm] = modes.NewConfirmMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, changeMode.Data, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		before := h.textInput.Value()
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		if h.textInput.Value() != before {
			allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value(), Mode: h.currentMode})
		}
	}

	return allActions, cmd
}

// switchMode runs the exit and enter hooks around a mode change and
// returns the actions they produce.
func (h *Handler) switchMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	var actions []types.Action

	// Exit current mode
	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Exit(ctx)...)
	}

	// Change mode
	oldMode := h.currentMode
	h.currentMode = mode

	// Enter new mode
	if h.modes[h.currentMode] != nil {
		actions = append(actions, h.modes[h.currentMode].Enter(ctx)...)
	}

	// Handle text input focus
	if h.isTextMode(h.currentMode) {
		h.textInput.Reset()
		h.textInput.SetValue(data)
		h.textInput.Focus()
	} else if h.isTextMode(oldMode) {
		h.textInput.Blur()
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

func (h *Handler) TextInput() *textinput.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// Prompt returns the message bar prompt of the current mode, if it has one
func (h *Handler) Prompt() (string, bool) {
	p, ok := h.modes[h.currentMode].(types.Prompter)
	if !ok {
		return "", false
	}
	return p.Prompt(), true
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeSaveAs:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode switches mode from outside a key press, running the mode hooks.
// The returned actions come from those hooks.
func (h *Handler) ChangeMode(mode types.Mode, data string, ctx types.Context) []types.Action {
	return h.switchMode(mode, data, ctx)
}
