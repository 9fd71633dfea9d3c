package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"cinematch/internal/contact"
	"cinematch/internal/domain"
	"cinematch/internal/poster"
	"cinematch/internal/suggest"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Section   domain.Section
	InputMode string

	// Search
	SearchInput    string // textinput view
	SearchFocused  bool
	Suggestions    []suggest.Suggestion
	SuggestionsOn  bool
	FocusIndex     int
	CatalogLoading bool
	CatalogSize    int
	CatalogSample  bool

	// Recommendations
	Movie        string
	LoadingMovie string
	Spinner      string
	Cards        []poster.Card
	WindowStart  int
	WindowEnd    int
	Fallback     bool
	ErrorText    string

	// Contact
	ContactFields []ContactField
	ContactStatus contact.Status

	Alert         string
	StatusMessage string
	HelpModel     help.Model
	KeyBindings   []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	suggestions *SuggestionRenderer
	cards       *CardRenderer
	contact     *ContactRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		suggestions: NewSuggestionRenderer(styles),
		cards:       NewCardRenderer(styles),
		contact:     NewContactRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// CardWidth returns the rendered width of one card
func (r *Renderer) CardWidth() int {
	return r.cards.MeasureCard()
}

// ContentWidth returns the usable width inside the main container
func (r *Renderer) ContentWidth(termWidth int) int {
	return termWidth - r.styles.Main.GetHorizontalFrameSize()
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	width := r.ContentWidth(state.Width)

	content.WriteString(r.renderTitleLine(state, width))
	content.WriteString("\n")
	content.WriteString(r.renderNavBar(state.Section))
	content.WriteString("\n\n")

	switch state.Section {
	case domain.SectionSearch:
		content.WriteString(r.renderSearch(state, width))
		// Results stay visible under the input
		if body := r.renderRecommendations(state); body != "" {
			content.WriteString("\n\n")
			content.WriteString(body)
		}
	case domain.SectionRecommendations:
		body := r.renderRecommendations(state)
		if body == "" {
			body = r.styles.Dim.Render("Search for a movie to see recommendations.")
		}
		content.WriteString(body)
	case domain.SectionContact:
		content.WriteString(r.contact.RenderForm(state.ContactFields, state.ContactStatus, width))
	case domain.SectionHelp:
		content.WriteString(r.renderHelpSummary())
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	// Push the key help to the bottom
	helpText := r.styles.Help.Render(state.HelpModel.ShortHelpView(state.KeyBindings))
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - r.styles.Main.GetVerticalFrameSize()
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	finalContent := mainStyle.Render(content.String())

	if state.Alert != "" {
		return r.popupRender.RenderAlert(finalContent, state.Alert, state.Height, state.Width)
	}
	return finalContent
}

// renderTitleLine renders the logo with the catalog indicator right-aligned
func (r *Renderer) renderTitleLine(state ViewState, width int) string {
	logo := r.styles.Title.Render("cinematch")

	var right string
	switch {
	case state.CatalogLoading:
		right = r.styles.Dim.Render("loading movies...")
	case state.CatalogSample:
		right = r.styles.Warning.Render(fmt.Sprintf("%d sample movies", state.CatalogSize))
	case state.CatalogSize > 0:
		right = r.styles.Dim.Render(fmt.Sprintf("%d movies", state.CatalogSize))
	}
	if right == "" {
		return logo
	}

	if width <= 0 {
		width = 76
	}
	padding := width - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderNavBar renders the section tabs
func (r *Renderer) renderNavBar(active domain.Section) string {
	tabs := make([]string, 0, len(domain.Sections))
	for i, s := range domain.Sections {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == active {
			tabs = append(tabs, r.styles.NavActive.Render(label))
		} else {
			tabs = append(tabs, r.styles.NavInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSearch renders the movie input and its dropdown
func (r *Renderer) renderSearch(state ViewState, width int) string {
	inputWidth := width - 4
	if inputWidth > 60 {
		inputWidth = 60
	}
	if inputWidth < 20 {
		inputWidth = 20
	}

	style := r.styles.Input
	if state.SearchFocused {
		style = r.styles.InputFocused
	}
	out := style.Width(inputWidth).Render(state.SearchInput)

	if state.SuggestionsOn {
		out += "\n" + r.suggestions.RenderList(state.Suggestions, state.FocusIndex, inputWidth+2)
	}
	return out
}

// renderRecommendations renders the loading line, the error text or the card strip
func (r *Renderer) renderRecommendations(state ViewState) string {
	if state.LoadingMovie != "" {
		return r.styles.Loading.Render(fmt.Sprintf("%s Finding recommendations for %q...", state.Spinner, state.LoadingMovie))
	}
	if state.ErrorText != "" {
		return r.styles.Error.Render(state.ErrorText)
	}
	if len(state.Cards) == 0 {
		return ""
	}

	var b strings.Builder
	heading := fmt.Sprintf("Because you like %s", state.Movie)
	if state.Fallback {
		heading += r.styles.Warning.Render("  (sample data)")
	}
	b.WriteString(r.styles.SectionHeading.Render(heading))
	b.WriteString("\n")

	if state.WindowStart > 0 {
		b.WriteString(r.styles.Dim.Render("‹ "))
	}
	b.WriteString(r.cards.RenderStrip(state.Cards, state.WindowStart, state.WindowEnd))
	if state.WindowEnd < len(state.Cards) {
		b.WriteString(r.styles.Dim.Render(" ›"))
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d-%d of %d", state.WindowStart+1, state.WindowEnd, len(state.Cards))))
	return b.String()
}

// renderHelpSummary is the inline help section; the full text opens in the pager
func (r *Renderer) renderHelpSummary() string {
	var b strings.Builder
	b.WriteString(r.styles.SectionHeading.Render("Help"))
	b.WriteString("\n")
	b.WriteString("Type a movie title in Search, pick a suggestion and press Enter\n")
	b.WriteString("to get similar movies. Browse the cards with ←/→.\n\n")
	b.WriteString(r.styles.Dim.Render("Press Enter or ? for the full key reference."))
	return b.String()
}
