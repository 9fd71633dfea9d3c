package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderAlert renders a blocking alert centered over a dimmed copy of the main content
func (pr *PopupRenderer) RenderAlert(mainContent, message string, height, width int) string {
	body := message + "\n\n" + pr.styles.Dim.Render("press any key")
	popup := pr.styles.AlertBox.Render(body)

	if width <= 0 || height <= 0 {
		return popup
	}

	base := strings.Split(desaturateANSI(mainContent), "\n")
	overlay := strings.Split(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup), "\n")

	// Overlay lines that carry popup text replace the base line
	popupTop := (height - lipgloss.Height(popup)) / 2
	popupBottom := popupTop + lipgloss.Height(popup)
	for len(base) < height {
		base = append(base, "")
	}
	for i := popupTop; i < popupBottom && i < len(overlay) && i < len(base); i++ {
		if i >= 0 {
			base[i] = overlay[i]
		}
	}
	return strings.Join(base[:height], "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(s, "\n")
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	for i, line := range lines {
		lines[i] = gray.Render(ansiRE.ReplaceAllString(line, ""))
	}
	return strings.Join(lines, "\n")
}
