package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinematch/internal/suggest"
)

// SuggestionRenderer draws the autosuggest dropdown
type SuggestionRenderer struct {
	styles *Styles
}

// NewSuggestionRenderer creates a new suggestion renderer
func NewSuggestionRenderer(styles *Styles) *SuggestionRenderer {
	return &SuggestionRenderer{
		styles: styles,
	}
}

// RenderList renders the suggestions with the matched part highlighted.
// Exactly the item at focus is drawn active; focus -1 draws none.
func (s *SuggestionRenderer) RenderList(items []suggest.Suggestion, focus int, width int) string {
	if len(items) == 0 {
		return ""
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, s.renderItem(i, item, i == focus, width))
	}
	return s.styles.SuggestionsBox.Render(strings.Join(lines, "\n"))
}

func (s *SuggestionRenderer) renderItem(i int, item suggest.Suggestion, active bool, width int) string {
	prefix, match, suffix := item.Parts()

	normal := lipgloss.NewStyle()
	highlight := s.styles.Highlight
	if active {
		normal = normal.Inherit(s.styles.HighlightBg)
		highlight = highlight.Inherit(s.styles.HighlightBg)
	}

	number := s.styles.Dim.Render(fmt.Sprintf("%d ", i+1))
	line := number + normal.Render(prefix) + highlight.Render(match) + normal.Render(suffix)

	if active && width > 0 {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += normal.Render(strings.Repeat(" ", pad))
		}
	}
	return line
}
