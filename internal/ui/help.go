package ui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/noborus/ov/oviewer"

	"cinematch/internal/poster"
)

// HelpRenderer builds the texts shown in the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	name    string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"Navigation", []helpEntry{
		{"tab/shift+tab", "Next/previous section"},
		{"1-4", "Jump to Search, Recommendations, Contact, Help"},
		{"esc", "Leave the input and return to browsing"},
	}},
	{"Search", []helpEntry{
		{"/, s", "Focus the movie input"},
		{"↑/↓", "Move through suggestions"},
		{"alt+1..8", "Pick a suggestion by number"},
		{"enter", "Pick the highlighted suggestion or get recommendations"},
		{"esc", "Close the suggestion list"},
	}},
	{"Recommendations", []helpEntry{
		{"←/→, h/l", "Slide the cards"},
		{"enter, i", "Show details of the first visible card"},
		{"o", "Search where to watch the first visible card"},
	}},
	{"Contact", []helpEntry{
		{"c", "Open the contact form"},
		{"tab/↓, shift+tab/↑", "Next/previous field"},
		{"enter", "Next field, sends on the message field"},
		{"ctrl+s", "Send the message"},
	}},
	{"Other", []helpEntry{
		{"r", "Reload the movie catalog"},
		{"?", "Show this help"},
		{"q, ctrl+c", "Quit"},
	}},
}

// RenderHelpContent generates the help text with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	var help strings.Builder

	help.WriteString(r.title.Render("cinematch Help"))
	help.WriteString("\n")

	for _, s := range helpSections {
		help.WriteString(r.section.Render(s.name))
		help.WriteString("\n")
		width := 0
		for _, e := range s.entries {
			if w := lipgloss.Width(e.keys); w > width {
				width = w
			}
		}
		for _, e := range s.entries {
			pad := strings.Repeat(" ", width-lipgloss.Width(e.keys))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", r.key.Render(e.keys), pad, r.desc.Render(e.desc)))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.note.Render("  Sample movies are shown while the backend is unreachable."))
	return help.String()
}

// RenderCardInfo generates the detail page of one card
func (r *HelpRenderer) RenderCardInfo(card poster.Card, movie string) string {
	var b strings.Builder
	b.WriteString(r.title.Render(card.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render("Similarity"), r.desc.Render(card.SimilarityLabel())))
	if movie != "" {
		b.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render("Because of"), r.desc.Render(movie)))
	}
	if card.Placeholder {
		b.WriteString(fmt.Sprintf("  %s      %s\n", r.key.Render("Poster"), r.note.Render("not available")))
	} else {
		b.WriteString(fmt.Sprintf("  %s      %s\n", r.key.Render("Poster"), r.desc.Render(card.Image)))
	}
	b.WriteString(fmt.Sprintf("  %s       %s\n", r.key.Render("Watch"), r.desc.Render(WatchURL(card.Title))))
	return b.String()
}

// WatchURL returns the search link for where to watch a movie
func WatchURL(title string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape("Watch "+title+" online")
}

// HelpOps handles pager operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowInPager shows content using the ov pager
func (h *HelpOps) ShowInPager(content string) error {
	if h.program == nil {
		return errors.New("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return errors.Wrap(err, "create pager")
	}

	// Keep our screen intact on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// vimKeys adds vim-style movement on top of the pager defaults
var vimKeys = map[string][]string{
	"down":           {"j"},
	"up":             {"k"},
	"page_half_down": {"ctrl+d"},
	"page_half_up":   {"ctrl+u"},
}

// configureVimKeyBindings binds vimKeys, taking each key away from any other action first
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	for action, keys := range vimKeys {
		for _, k := range keys {
			for other, bound := range config.Keybind {
				config.Keybind[other] = removeKey(bound, k)
			}
			config.Keybind[action] = append(config.Keybind[action], k)
		}
	}
}

func removeKey(keys []string, key string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
