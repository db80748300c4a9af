package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"scribe/internal/ui/input/types"
)

type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search (ESC to cancel): ", ti),
	}
}

// Enter remembers where the search started so it can be cancelled
func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	return []types.Action{types.BeginSearchAction{}}
}
