package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"cinematch/internal/domain"
	"cinematch/internal/ui/input/types"
)

// BrowseMode handles keys when no input is focused
type BrowseMode struct{}

func NewBrowseMode() *BrowseMode {
	return &BrowseMode{}
}

func (m *BrowseMode) Name() string {
	return "browse"
}

func (m *BrowseMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BrowseMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyTab:
		return []types.Action{types.CycleSectionAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CycleSectionAction{Delta: -1}}, true

	case tea.KeyLeft:
		return m.slide(ctx, "prev")

	case tea.KeyRight:
		return m.slide(ctx, "next")

	case tea.KeyEnter:
		switch ctx.Section() {
		case domain.SectionSearch:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		case domain.SectionContact:
			return []types.Action{types.ChangeModeAction{Mode: types.ModeContact}}, true
		case domain.SectionHelp:
			return []types.Action{types.ToggleHelpAction{}}, true
		case domain.SectionRecommendations:
			if ctx.CardCount() > 0 {
				return []types.Action{types.ShowCardInfoAction{}}, true
			}
		}
		return nil, true
	}

	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.Runes[0] - '1')
		return []types.Action{types.SwitchSectionAction{Section: domain.Sections[idx]}}, true

	case "/", "s":
		return []types.Action{types.SwitchSectionAction{Section: domain.SectionSearch}}, true

	case "c":
		return []types.Action{types.SwitchSectionAction{Section: domain.SectionContact}}, true

	case "h":
		return m.slide(ctx, "prev")

	case "l":
		return m.slide(ctx, "next")

	case "o":
		if ctx.CardCount() > 0 {
			return []types.Action{types.OpenWatchAction{}}, true
		}
		return nil, true

	case "i":
		if ctx.CardCount() > 0 {
			return []types.Action{types.ShowCardInfoAction{}}, true
		}
		return nil, true

	case "r":
		return []types.Action{types.ReloadCatalogAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}

func (m *BrowseMode) slide(ctx types.Context, direction string) ([]types.Action, bool) {
	if ctx.CardCount() == 0 {
		return nil, true
	}
	return []types.Action{types.SlideAction{Direction: direction}}, true
}
