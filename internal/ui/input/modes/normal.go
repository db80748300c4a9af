package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/editor"
	"scribe/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if ctx.Dirty() && ctx.ConfirmQuit() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeQuitConfirm}}, true
		}
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Save):
		if ctx.Untitled() {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSaveAs}}, true
		}
		return []types.Action{types.SaveAction{}}, true

	case key.Matches(msg, m.keys.Find):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Up):
		return navigate("up"), true
	case key.Matches(msg, m.keys.Down):
		return navigate("down"), true
	case key.Matches(msg, m.keys.Left):
		return navigate("left"), true
	case key.Matches(msg, m.keys.Right):
		return navigate("right"), true
	case key.Matches(msg, m.keys.Home):
		return navigate("home"), true
	case key.Matches(msg, m.keys.End):
		return navigate("end"), true
	case key.Matches(msg, m.keys.PageUp):
		return navigate("pageup"), true
	case key.Matches(msg, m.keys.PageDown):
		return navigate("pagedown"), true

	case key.Matches(msg, m.keys.Newline):
		return []types.Action{types.InsertNewlineAction{}}, true
	case key.Matches(msg, m.keys.Backspace):
		return []types.Action{types.BackspaceAction{}}, true
	case key.Matches(msg, m.keys.Delete):
		return []types.Action{types.DeleteForwardAction{}}, true
	}

	switch msg.Type {
	case tea.KeySpace:
		return []types.Action{types.InsertCharAction{Char: ' '}}, true
	case tea.KeyRunes:
		if msg.Paste {
			return []types.Action{types.InsertTextAction{Text: string(msg.Runes)}}, true
		}
		var actions []types.Action
		for _, r := range msg.Runes {
			if editor.IsPrintable(r) {
				actions = append(actions, types.InsertCharAction{Char: r})
			}
		}
		return actions, len(actions) > 0
	}

	return nil, false
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
