package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/ui/input/types"
)

// TextInputMode is a base for modes that accept text input.
// Leaving the mode blurs the inputs but keeps what was typed.
type TextInputMode struct {
	mode   types.Mode
	name   string
	inputs []*textinput.Model
}

func NewTextInputMode(mode types.Mode, name string, inputs ...*textinput.Model) TextInputMode {
	return TextInputMode{
		mode:   mode,
		name:   name,
		inputs: inputs,
	}
}

func (m TextInputMode) Name() string {
	return m.name
}

func (m TextInputMode) Exit(ctx types.Context) []types.Action {
	for _, ti := range m.inputs {
		ti.Blur()
	}
	return nil
}

// handleCommon covers the keys every text mode shares
func (m TextInputMode) handleCommon(msg tea.KeyMsg) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeBrowse}}, true
	}
	return nil, false
}

// focusOnly focuses input i and blurs the rest
func (m TextInputMode) focusOnly(i int) {
	for j, ti := range m.inputs {
		if j == i {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}
