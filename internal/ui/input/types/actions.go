package types

import (
	"cinematch/internal/contact"
	"cinematch/internal/domain"
)

// Suggestion list actions
type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type CommitSuggestionAction struct{}

func (a CommitSuggestionAction) Type() string { return "commit_suggestion" }

type PickSuggestionAction struct {
	Index int // zero-based
}

func (a PickSuggestionAction) Type() string { return "pick_suggestion" }

type CloseSuggestionsAction struct{}

func (a CloseSuggestionsAction) Type() string { return "close_suggestions" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

// Section actions
type SwitchSectionAction struct {
	Section domain.Section
}

func (a SwitchSectionAction) Type() string { return "switch_section" }

type CycleSectionAction struct {
	Delta int
}

func (a CycleSectionAction) Type() string { return "cycle_section" }

// Slider actions
type SlideAction struct {
	Direction string // "next" or "prev"
}

func (a SlideAction) Type() string { return "slide" }

type OpenWatchAction struct{}

func (a OpenWatchAction) Type() string { return "open_watch" }

type ShowCardInfoAction struct{}

func (a ShowCardInfoAction) Type() string { return "show_card_info" }

// Contact form actions
type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type UpdateFieldAction struct {
	Field contact.Field
	Text  string
}

func (a UpdateFieldAction) Type() string { return "update_field" }

type SubmitContactAction struct{}

func (a SubmitContactAction) Type() string { return "submit_contact" }

// Command actions
type ReloadCatalogAction struct{}

func (a ReloadCatalogAction) Type() string { return "reload_catalog" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
