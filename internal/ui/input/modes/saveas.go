package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"scribe/internal/ui/input/types"
)

type SaveAsMode struct {
	TextInputMode
}

func NewSaveAsMode(ti *textinput.Model) *SaveAsMode {
	return &SaveAsMode{
		TextInputMode: NewTextInputMode(types.ModeSaveAs, "save-as", "Save as (ESC to cancel): ", ti),
	}
}
