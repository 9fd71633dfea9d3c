package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/contact"
	"cinematch/internal/ui/input/modes"
	"cinematch/internal/ui/input/types"
)

// Handler routes keys to the handler of the current mode and owns the text inputs
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	search      *textinput.Model
	fields      []*textinput.Model // indexed by contact.Field
}

func New() *Handler {
	search := textinput.New()
	search.Placeholder = "Type a movie title..."
	search.Prompt = ""
	search.CharLimit = 120

	h := &Handler{
		currentMode: types.ModeBrowse,
		search:      &search,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	for _, f := range contact.Fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.String()
		if f == contact.FieldMessage {
			ti.CharLimit = 1000
		} else {
			ti.CharLimit = 120
		}
		h.fields = append(h.fields, &ti)
	}

	// Register all mode handlers
	h.modes[types.ModeBrowse] = modes.NewBrowseMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.search)
	h.modes[types.ModeContact] = modes.NewContactMode(h.fields...)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// Keys the mode did not claim go to the focused text input
	if !consumed && h.isTextMode(h.currentMode) {
		switch h.currentMode {
		case types.ModeSearch:
			before := h.search.Value()
			*h.search, cmd = h.search.Update(msg)
			if h.search.Value() != before {
				allActions = append(allActions, types.UpdateTextAction{Text: h.search.Value()})
			}
		case types.ModeContact:
			field := ctx.ContactField()
			ti := h.fields[field]
			before := ti.Value()
			*ti, cmd = ti.Update(msg)
			if ti.Value() != before {
				allActions = append(allActions, types.UpdateFieldAction{Field: field, Text: ti.Value()})
			}
		}
	}

	return allActions, cmd
}

// SetMode switches mode from outside the key path, e.g. when a nav bar
// section is selected. It returns the actions of the exit and enter hooks.
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	switch mode {
	case types.ModeSearch, types.ModeContact:
		return true
	default:
		return false
	}
}

// Update handles non-keyboard messages for the focused text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch h.currentMode {
	case types.ModeSearch:
		*h.search, cmd = h.search.Update(msg)
	case types.ModeContact:
		for _, ti := range h.fields {
			if ti.Focused() {
				*ti, cmd = ti.Update(msg)
			}
		}
	}
	return cmd
}

// SetQuery replaces the movie input text and moves the cursor to the end
func (h *Handler) SetQuery(text string) {
	h.search.SetValue(text)
	h.search.CursorEnd()
}

// Search returns the movie input
func (h *Handler) Search() *textinput.Model {
	return h.search
}

// Field returns the input of a contact field
func (h *Handler) Field(f contact.Field) *textinput.Model {
	return h.fields[f]
}

// FocusField focuses the input of f when the contact form is being edited
func (h *Handler) FocusField(f contact.Field) {
	for i, ti := range h.fields {
		if contact.Field(i) == f && h.currentMode == types.ModeContact {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

// SyncContact copies the form values into the inputs, e.g. after a reset cleared them
func (h *Handler) SyncContact(form *contact.Form) {
	for i, ti := range h.fields {
		ti.SetValue(form.Value(contact.Field(i)))
	}
}
