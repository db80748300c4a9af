package ui

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/domain"
	inputtypes "scribe/internal/ui/input/types"
)

// processAction applies one input action to the model
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.InsertCharAction:
		m.editor.InsertChar(a.Char)

	case inputtypes.InsertTextAction:
		m.editor.InsertString(a.Text)

	case inputtypes.InsertNewlineAction:
		m.editor.InsertNewline()

	case inputtypes.BackspaceAction:
		m.editor.Backspace()

	case inputtypes.DeleteForwardAction:
		m.editor.DeleteForward()

	case inputtypes.SaveAction:
		return m.cmdExecutor.ExecuteSave(m.state.FileName)

	case inputtypes.BeginSearchAction:
		m.searchOrigin = m.editor.Snapshot()

	case inputtypes.UpdateTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.previewSearch(a.Text)
		}

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			return m.commitSearch(a.Text)
		case inputtypes.ModeSaveAs:
			return m.saveAs(a.Text)
		}

	case inputtypes.CancelTextAction:
		switch a.Mode {
		case inputtypes.ModeSearch:
			m.cancelSearch()
		case inputtypes.ModeSaveAs:
			m.setStatus("Save aborted")
		}

	case inputtypes.SearchNavigateAction:
		var err error
		if a.Direction == "prev" {
			_, err = m.search.Previous()
		} else {
			_, err = m.search.Next()
		}
		if err != nil {
			log.Printf("Search navigation: %v", err)
		}

	case inputtypes.ClearSearchAction:
		m.search.Clear()

	case inputtypes.ToggleHelpAction:
		return m.showHelpPager()

	case inputtypes.QuitAction:
		m.state.Quitting = true
		return tea.Quit
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "home":
		m.editor.Home()
	case "end":
		m.editor.End()
	case "pageup":
		m.editor.PageUp()
	case "pagedown":
		m.editor.PageDown()
	default:
		dir, err := domain.ParseDirection(direction)
		if err != nil {
			log.Printf("Unknown navigation %q", direction)
			return
		}
		m.editor.Move(dir)
	}
}

// previewSearch jumps to the first match while the query is being typed, or
// back to where the search started when nothing matches.
func (m *Model) previewSearch(query string) {
	if m.search.Start(query, m.editor.Document()) == 0 {
		m.editor.Restore(m.searchOrigin)
	}
}

func (m *Model) commitSearch(query string) tea.Cmd {
	if query == "" {
		m.cancelSearch()
		return nil
	}

	if m.search.Query() != query {
		m.search.Start(query, m.editor.Document())
	}
	if m.search.MatchCount() == 0 {
		m.cancelSearch()
		m.setStatus(fmt.Sprintf("No matches for %q", query))
		return nil
	}

	m.inputHandler.ChangeMode(inputtypes.ModeSearchCycle, "", m.context())
	return nil
}

func (m *Model) cancelSearch() {
	m.editor.Restore(m.searchOrigin)
	m.search.Clear()
}

func (m *Model) saveAs(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" {
		m.setStatus("Save aborted")
		return nil
	}
	return m.cmdExecutor.ExecuteSave(path)
}

// showHelpPager hands the terminal to the help pager until it exits
func (m *Model) showHelpPager() tea.Cmd {
	content := NewHelpRenderer().RenderHelpContent(m.inputHandler.Keys())
	m.state.InPagerMode = m.program != nil

	helpOps := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: helpOps.ShowHelpInPager(content)}
	}
}
