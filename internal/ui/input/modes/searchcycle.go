package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/ui/input/types"
)

// SearchCycleMode steps through the matches of a committed search. Any key
// other than the arrows ends it.
type SearchCycleMode struct{}

func NewSearchCycleMode() *SearchCycleMode {
	return &SearchCycleMode{}
}

func (m *SearchCycleMode) Name() string {
	return "search-cycle"
}

func (m *SearchCycleMode) Prompt() string {
	return "Search: ←/↑ previous, →/↓ next, any other key to stop"
}

func (m *SearchCycleMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchCycleMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ClearSearchAction{}}
}

func (m *SearchCycleMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp, tea.KeyLeft:
		return []types.Action{types.SearchNavigateAction{Direction: "prev"}}, true
	case tea.KeyDown, tea.KeyRight:
		return []types.Action{types.SearchNavigateAction{Direction: "next"}}, true
	}
	return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
}
