package input

import (
	"cinematch/internal/contact"
	"cinematch/internal/domain"
	"cinematch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// Section returns the active nav bar section
func (c *ModelContext) Section() domain.Section {
	return c.State.Section
}

// SuggestionsOpen reports whether the dropdown is visible
func (c *ModelContext) SuggestionsOpen() bool {
	return c.State.Suggestions.Open()
}

// SuggestionCount returns the number of suggestions
func (c *ModelContext) SuggestionCount() int {
	if !c.State.Suggestions.Open() {
		return 0
	}
	return len(c.State.Suggestions.Items())
}

// FocusIndex returns the focused suggestion or -1
func (c *ModelContext) FocusIndex() int {
	return c.State.Suggestions.Focus().Index()
}

// CardCount returns the number of recommendation cards shown
func (c *ModelContext) CardCount() int {
	return len(c.State.Cards)
}

// ContactField returns the contact field being edited
func (c *ModelContext) ContactField() contact.Field {
	return c.State.ContactField
}

// ContactBusy reports whether a submission is waiting for its reply or reset
func (c *ModelContext) ContactBusy() bool {
	return c.State.Contact.Status() != contact.StatusIdle
}
