package views

import (
	"github.com/charmbracelet/lipgloss"
)

// cardInnerWidth is the text width inside a card
const cardInnerWidth = 20

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Highlight      lipgloss.Style
	HighlightBg    lipgloss.Style
	NavActive      lipgloss.Style
	NavInactive    lipgloss.Style
	Card           lipgloss.Style
	CardTitle      lipgloss.Style
	Poster         lipgloss.Style
	Placeholder    lipgloss.Style
	Similarity     lipgloss.Style
	Error          lipgloss.Style
	Warning        lipgloss.Style
	Loading        lipgloss.Style
	Input          lipgloss.Style
	InputFocused   lipgloss.Style
	FieldLabel     lipgloss.Style
	ButtonIdle     lipgloss.Style
	ButtonSending  lipgloss.Style
	ButtonSent     lipgloss.Style
	ButtonError    lipgloss.Style
	AlertBox       lipgloss.Style
	SuggestionsBox lipgloss.Style
	SectionHeading lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		NavActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1),
		NavInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(cardInnerWidth + 2),
		CardTitle:      lipgloss.NewStyle().Bold(true),
		Poster:         lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Placeholder:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Background(lipgloss.Color("236")),
		Similarity:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Warning:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Loading:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Input:          lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("241")).Padding(0, 1),
		InputFocused:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("160")).Padding(0, 1),
		FieldLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		ButtonIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 2),
		ButtonSending:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("241")).Padding(0, 2),
		ButtonSent:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("28")).Padding(0, 2),
		ButtonError:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("124")).Padding(0, 2),
		AlertBox:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("203")).Padding(1, 3),
		SuggestionsBox: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, true, true).BorderForeground(lipgloss.Color("241")),
		SectionHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1),
	}
}
