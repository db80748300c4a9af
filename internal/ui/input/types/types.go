package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeSearchCycle
	ModeSaveAs
	ModeQuitConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeSearchCycle:
		return "search-cycle"
	case ModeSaveAs:
		return "save-as"
	case ModeQuitConfirm:
		return "quit-confirm"
	}
	return "unknown"
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Dirty() bool
	Untitled() bool
	ConfirmQuit() bool
	SearchMatchCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// Prompter is implemented by modes that show a prompt on the message bar
type Prompter interface {
	Prompt() string
}
