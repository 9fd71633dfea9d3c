package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinematch/internal/contact"
)

// ContactField is one rendered form input
type ContactField struct {
	Label   string
	View    string // textinput view
	Focused bool
}

// ContactRenderer draws the contact form
type ContactRenderer struct {
	styles *Styles
}

// NewContactRenderer creates a new contact renderer
func NewContactRenderer(styles *Styles) *ContactRenderer {
	return &ContactRenderer{styles: styles}
}

// RenderForm renders the fields and the submit button
func (r *ContactRenderer) RenderForm(fields []ContactField, status contact.Status, width int) string {
	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	if inputWidth > 60 {
		inputWidth = 60
	}

	var b strings.Builder
	b.WriteString(r.styles.SectionHeading.Render("Get in touch"))
	b.WriteString("\n")
	for _, f := range fields {
		b.WriteString(r.styles.FieldLabel.Render(f.Label))
		b.WriteString("\n")
		style := r.styles.Input
		if f.Focused {
			style = r.styles.InputFocused
		}
		b.WriteString(style.Width(inputWidth).Render(f.View))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.RenderButton(status))
	return b.String()
}

// RenderButton renders the submit button for a status
func (r *ContactRenderer) RenderButton(status contact.Status) string {
	var style lipgloss.Style
	switch status {
	case contact.StatusSending:
		style = r.styles.ButtonSending
	case contact.StatusSent:
		style = r.styles.ButtonSent
	case contact.StatusError:
		style = r.styles.ButtonError
	default:
		style = r.styles.ButtonIdle
	}
	return style.Render(status.Label())
}
