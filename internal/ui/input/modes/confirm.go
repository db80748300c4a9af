package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/ui/input/types"
)

type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "quit-confirm"
}

func (m *ConfirmMode) Prompt() string {
	return "File has unsaved changes. Quit anyway? (y/n)"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "y", "Y":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		// Cancel and return to normal mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}
