package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Edit actions
type InsertCharAction struct {
	Char rune
}

func (a InsertCharAction) Type() string { return "insert_char" }

// InsertTextAction carries pasted text
type InsertTextAction struct {
	Text string
}

func (a InsertTextAction) Type() string { return "insert_text" }

type InsertNewlineAction struct{}

func (a InsertNewlineAction) Type() string { return "insert_newline" }

type BackspaceAction struct{}

func (a BackspaceAction) Type() string { return "backspace" }

type DeleteForwardAction struct{}

func (a DeleteForwardAction) Type() string { return "delete_forward" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
	Mode Mode
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct {
	Mode Mode
}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Search actions
type BeginSearchAction struct{}

func (a BeginSearchAction) Type() string { return "begin_search" }

type SearchNavigateAction struct {
	Direction string // "next" or "prev"
}

func (a SearchNavigateAction) Type() string { return "search_navigate" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type QuitAction struct {
	Force bool // skip the unsaved changes check
}

func (a QuitAction) Type() string { return "quit" }
