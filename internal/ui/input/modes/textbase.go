package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/ui/input/types"
)

// TextInputMode is a one-line prompt on the message bar. The shared text
// input holds what the user typed; keys it does not handle are returned
// unconsumed so the input handler can feed them to the text input.
type TextInputMode struct {
	mode      types.Mode
	name      string
	prompt    string
	textInput *textinput.Model
}

func NewTextInputMode(mode types.Mode, name, prompt string, ti *textinput.Model) TextInputMode {
	return TextInputMode{mode: mode, name: name, prompt: prompt, textInput: ti}
}

func (m TextInputMode) Name() string   { return m.name }
func (m TextInputMode) Prompt() string { return m.prompt }

// Enter starts every prompt empty
func (m TextInputMode) Enter(ctx types.Context) []types.Action {
	if m.textInput == nil {
		return nil
	}
	m.textInput.Reset()
	m.textInput.Prompt = "" // drawn by the message bar
	m.textInput.Focus()
	return nil
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	if m.textInput != nil {
		m.textInput.Blur()
	}
	return nil
}

func (m TextInputMode) value() string {
	if m.textInput == nil {
		return ""
	}
	return m.textInput.Value()
}

func (m TextInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return []types.Action{
			types.CancelTextAction{Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case tea.KeyEnter:
		return []types.Action{
			types.SubmitTextAction{Text: m.value(), Mode: m.mode},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
