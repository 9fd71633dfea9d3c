package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinematch/internal/poster"
)

// CardRenderer handles rendering of recommendation cards
type CardRenderer struct {
	styles *Styles
}

// NewCardRenderer creates a new card renderer
func NewCardRenderer(styles *Styles) *CardRenderer {
	return &CardRenderer{
		styles: styles,
	}
}

// RenderCard renders one card: poster, title and similarity
func (c *CardRenderer) RenderCard(card poster.Card) string {
	var b strings.Builder

	if card.Placeholder {
		b.WriteString(c.renderPlaceholder(card.Title))
	} else {
		b.WriteString(c.styles.Poster.Render(truncate("▣ "+posterName(card.Image), cardInnerWidth)))
	}
	b.WriteString("\n\n")
	b.WriteString(c.styles.CardTitle.Render(truncate(card.Title, cardInnerWidth)))
	b.WriteString("\n")
	b.WriteString(c.styles.Similarity.Render(card.SimilarityLabel()))

	return c.styles.Card.Render(b.String())
}

// renderPlaceholder draws the stand-in poster: the title on a dark block
func (c *CardRenderer) renderPlaceholder(title string) string {
	label := title
	if label == "" {
		label = "Movie"
	}
	block := lipgloss.Place(cardInnerWidth, 3, lipgloss.Center, lipgloss.Center,
		truncate(label, cardInnerWidth-2),
		lipgloss.WithWhitespaceBackground(lipgloss.Color("236")))
	return c.styles.Placeholder.Render(block)
}

// RenderStrip renders cards[start:end] side by side with the slider gap
func (c *CardRenderer) RenderStrip(cards []poster.Card, start, end int) string {
	if start >= end {
		return ""
	}
	parts := make([]string, 0, 2*(end-start))
	for i := start; i < end; i++ {
		if i > start {
			parts = append(parts, "  ")
		}
		parts = append(parts, c.RenderCard(cards[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// MeasureCard returns the rendered width of a card
func (c *CardRenderer) MeasureCard() int {
	return lipgloss.Width(c.styles.Card.Render(""))
}

// posterName keeps the last path segment of a poster URL
func posterName(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 && i < len(url)-1 {
		return url[i+1:]
	}
	return url
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
