package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/contact"
	"cinematch/internal/ui/input/types"
)

// ContactMode edits the contact form fields
type ContactMode struct {
	TextInputMode
}

// NewContactMode takes one input per contact.Fields entry, in the same order
func NewContactMode(inputs ...*textinput.Model) *ContactMode {
	return &ContactMode{
		TextInputMode: NewTextInputMode(types.ModeContact, "contact", inputs...),
	}
}

func (m *ContactMode) Enter(ctx types.Context) []types.Action {
	m.focusOnly(int(ctx.ContactField()))
	return nil
}

func (m *ContactMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "ctrl+s":
		return m.submit(ctx)
	case "enter":
		if ctx.ContactField() == contact.FieldMessage {
			return m.submit(ctx)
		}
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	}
	return m.handleCommon(msg)
}

func (m *ContactMode) submit(ctx types.Context) ([]types.Action, bool) {
	if ctx.ContactBusy() {
		return nil, true
	}
	return []types.Action{types.SubmitContactAction{}}, true
}
