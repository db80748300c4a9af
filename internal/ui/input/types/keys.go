package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the editor key bindings
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Save      key.Binding
	Find      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "move left")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "move right")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "start of line")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "end of line")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Newline:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Find:      key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "find")),
		Help:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.Find, k.Help}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End, k.PageUp, k.PageDown},
		{k.Newline, k.Backspace, k.Delete},
		{k.Save, k.Find, k.Help, k.Quit},
	}
}
