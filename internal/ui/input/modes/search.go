package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/ui/input/types"
)

// pickKeys select a suggestion by its 1-based number
var pickKeys = map[string]int{
	"alt+1": 0, "alt+2": 1, "alt+3": 2, "alt+4": 3,
	"alt+5": 4, "alt+6": 5, "alt+7": 6, "alt+8": 7,
}

// SearchMode drives the movie input and its suggestion list
type SearchMode struct {
	TextInputMode
	input *textinput.Model
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
		input:         ti,
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.focusOnly(0)
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc":
		// First esc hides the dropdown, the second leaves the input
		if ctx.SuggestionsOpen() {
			return []types.Action{types.CloseSuggestionsAction{}}, true
		}
	case "up", "ctrl+p":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "ctrl+n":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "tab":
		return []types.Action{types.CycleSectionAction{Delta: 1}}, true
	case "shift+tab":
		return []types.Action{types.CycleSectionAction{Delta: -1}}, true
	case "enter":
		if ctx.SuggestionsOpen() && ctx.FocusIndex() > -1 {
			return []types.Action{types.CommitSuggestionAction{}}, true
		}
		return []types.Action{types.SubmitTextAction{Text: m.input.Value(), Mode: types.ModeSearch}}, true
	}

	if i, ok := pickKeys[msg.String()]; ok {
		if i < ctx.SuggestionCount() {
			return []types.Action{types.PickSuggestionAction{Index: i}}, true
		}
		return nil, true
	}

	return m.handleCommon(msg)
}
