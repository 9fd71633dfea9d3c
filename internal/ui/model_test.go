package ui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinematch/internal/backend"
	"cinematch/internal/config"
	"cinematch/internal/contact"
	"cinematch/internal/domain"
	"cinematch/internal/eventbus"
	"cinematch/internal/loader"
	"cinematch/internal/ui/commands"
	inputtypes "cinematch/internal/ui/input/types"
	"cinematch/internal/ui/state"
)

const recommendBody = `{"success": true, "recommendations": [
	{"title": "Batman Begins", "poster_path": "", "similarity_score": 0.91},
	{"title": "Inception", "poster_path": "", "similarity_score": 0.88},
	{"title": "Memento", "poster_path": "", "similarity_score": 0.85},
	{"title": "The Prestige", "poster_path": "", "similarity_score": 0.81},
	{"title": "Heat", "poster_path": "", "similarity_score": 0.77}
]}`

// fakeBackend serves the three endpoints and counts contact posts
func fakeBackend(t *testing.T) (string, *int) {
	t.Helper()
	contacts := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/movies", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"movies": ["The Dark Knight", "Heat", "Inception", "Darkman"]}`)
	})
	mux.HandleFunc("/recommend", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, recommendBody)
	})
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		contacts++
		_, _ = io.WriteString(w, `{"success": true}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv.URL, &contacts
}

func newTestModel(t *testing.T, url string) *Model {
	t.Helper()
	client, err := backend.New(backend.Options{BaseURL: url, Timeout: time.Second, BreakerFailures: 100})
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.UI.ContactReset = config.Duration{Duration: 10 * time.Millisecond}
	m := NewModel(nil, cfg, loader.New(client, nil), nil)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	return m
}

// drain runs cmd and collects the messages the model reacts to. Commands
// that do not finish quickly (cursor blinks) are abandoned.
func drain(cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		ch := make(chan tea.Msg, 1)
		go func() { ch <- c() }()
		select {
		case msg := <-ch:
			switch msg := msg.(type) {
			case tea.BatchMsg:
				for _, sub := range msg {
					run(sub)
				}
			case EventMsg, commands.ContactResetMsg:
				out = append(out, msg)
			}
		case <-time.After(300 * time.Millisecond):
		}
	}
	run(cmd)
	return out
}

// settle feeds the results of cmd back into the model until nothing is left
func settle(m *Model, cmd tea.Cmd) {
	for _, msg := range drain(cmd) {
		_, next := m.Update(msg)
		settle(m, next)
	}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestStartsInSearch(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	assert.Equal(t, domain.SectionSearch, m.State().Section)
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())
	assert.True(t, m.inputHandler.Search().Focused())
}

func TestCatalogLoadAndSuggestions(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	settle(m, m.cmdExecutor.ExecuteLoadCatalog())
	require.Equal(t, 4, m.State().Catalog.Len())
	assert.False(t, m.State().CatalogLoading)
	assert.Equal(t, "Loaded 4 movies", m.State().StatusMessage)

	typeText(m, "dark")
	assert.Equal(t, "dark", m.State().Query)
	require.True(t, m.State().Suggestions.Open())

	items := m.State().Suggestions.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "The Dark Knight", items[0].Text)
	assert.Equal(t, 4, items[0].MatchStart)
	assert.Equal(t, -1, m.State().Suggestions.Focus().Index())

	// down focuses the first entry, enter commits it
	press(m, key(tea.KeyDown))
	assert.Equal(t, 0, m.State().Suggestions.Focus().Index())
	press(m, key(tea.KeyEnter))

	assert.Equal(t, "The Dark Knight", m.State().Query)
	assert.Equal(t, "The Dark Knight", m.inputHandler.Search().Value())
	assert.False(t, m.State().Suggestions.Open())
	assert.False(t, m.State().Loading())
}

func TestTypingBeforeCatalogArrives(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	load := m.cmdExecutor.ExecuteLoadCatalog()
	typeText(m, "dark")
	require.True(t, m.State().Suggestions.Open())
	assert.Len(t, m.State().Suggestions.Items(), 1)

	settle(m, load)
	require.True(t, m.State().Suggestions.Open())
	items := m.State().Suggestions.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Darkman", items[1].Text)
}

func TestFallbackNoticeReachesStatusLine(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	m.Update(EventMsg{Event: eventbus.FallbackUsedEvent{Endpoint: "/recommend"}})
	assert.Equal(t, "Backend unavailable (/recommend), using sample data", m.State().StatusMessage)
	assert.Contains(t, m.View(), "using sample data")
}

func TestPickSuggestionByNumber(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)
	settle(m, m.cmdExecutor.ExecuteLoadCatalog())

	typeText(m, "dark")
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true})

	assert.Equal(t, "Darkman", m.State().Query)
	assert.False(t, m.State().Suggestions.Open())
}

func TestEscClosesListThenLeavesInput(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)
	settle(m, m.cmdExecutor.ExecuteLoadCatalog())

	typeText(m, "dark")
	require.True(t, m.State().Suggestions.Open())

	press(m, key(tea.KeyEsc))
	assert.False(t, m.State().Suggestions.Open())
	assert.Equal(t, inputtypes.ModeSearch, m.inputHandler.CurrentMode())

	press(m, key(tea.KeyEsc))
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())
	assert.Equal(t, domain.SectionSearch, m.State().Section)
	assert.Equal(t, "dark", m.inputHandler.Search().Value())
}

func TestRecommendFlow(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	typeText(m, "The Dark Knight")
	cmd := press(m, key(tea.KeyEnter))
	assert.Equal(t, "The Dark Knight", m.State().LoadingMovie)
	assert.Contains(t, m.View(), `Finding recommendations for "The Dark Knight"...`)

	settle(m, cmd)
	st := m.State()
	assert.False(t, st.Loading())
	assert.Equal(t, "The Dark Knight", st.Movie)
	require.Len(t, st.Cards, 5)
	assert.False(t, st.Fallback)
	for _, c := range st.Cards {
		assert.True(t, c.Placeholder, c.Title)
	}

	view := m.View()
	assert.Contains(t, view, "Because you like The Dark Knight")
	assert.Contains(t, view, "Similarity: 91.0%")
}

func TestEmptyQueryShowsError(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	typeText(m, "   ")
	cmd := press(m, key(tea.KeyEnter))
	settle(m, cmd)

	assert.Equal(t, state.MsgEmptyQuery, m.State().ErrorText)
	assert.False(t, m.State().Loading())
	assert.Contains(t, m.View(), state.MsgEmptyQuery)
}

func TestBackendDownShowsSampleCards(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	m := newTestModel(t, url)

	settle(m, m.cmdExecutor.ExecuteLoadCatalog())
	assert.True(t, m.State().Catalog.IsFallback())
	assert.Equal(t, 19, m.State().Catalog.Len())

	typeText(m, "Heat")
	settle(m, press(m, key(tea.KeyEnter)))
	assert.True(t, m.State().Fallback)
	assert.Len(t, m.State().Cards, 5)
	assert.Contains(t, m.View(), "sample data")
}

func TestSlideCards(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	typeText(m, "Heat")
	settle(m, press(m, key(tea.KeyEnter)))
	require.Len(t, m.State().Cards, 5)

	// leave the input so arrows slide the strip
	press(m, key(tea.KeyTab))
	require.Equal(t, domain.SectionRecommendations, m.State().Section)
	require.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())

	press(m, key(tea.KeyRight))
	assert.Equal(t, 1, m.State().Slider.Offset())
	card, ok := m.State().CurrentCard()
	require.True(t, ok)
	assert.Equal(t, "Inception", card.Title)

	press(m, key(tea.KeyLeft))
	press(m, key(tea.KeyLeft))
	assert.Equal(t, 0, m.State().Slider.Offset())
}

func TestSectionKeys(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	press(m, key(tea.KeyShiftTab))
	assert.Equal(t, domain.SectionHelp, m.State().Section)
	assert.Equal(t, inputtypes.ModeBrowse, m.inputHandler.CurrentMode())

	typeText(m, "3")
	assert.Equal(t, domain.SectionContact, m.State().Section)
	assert.Equal(t, inputtypes.ModeContact, m.inputHandler.CurrentMode())
	assert.True(t, m.inputHandler.Field(contact.FieldName).Focused())

	press(m, key(tea.KeyEsc))
	typeText(m, "/")
	assert.Equal(t, domain.SectionSearch, m.State().Section)
	assert.True(t, m.inputHandler.Search().Focused())
}

func TestContactValidationAlert(t *testing.T) {
	url, contacts := fakeBackend(t)
	m := newTestModel(t, url)

	typeText(m, "c")
	press(m, key(tea.KeyEsc))
	typeText(m, "c")
	require.Equal(t, inputtypes.ModeContact, m.inputHandler.CurrentMode())

	settle(m, press(m, key(tea.KeyCtrlS)))
	assert.Equal(t, contact.MsgMissingFields, m.State().Contact.Alert())
	assert.Equal(t, contact.StatusIdle, m.State().Contact.Status())
	assert.Equal(t, 0, *contacts)
	assert.Contains(t, m.View(), contact.MsgMissingFields)

	// any key dismisses the alert and does nothing else
	typeText(m, "x")
	assert.Empty(t, m.State().Contact.Alert())
	assert.Empty(t, m.State().Contact.Value(contact.FieldName))
}

func TestContactSendAndReset(t *testing.T) {
	url, contacts := fakeBackend(t)
	m := newTestModel(t, url)

	// leave the movie input first so "3" is a section key
	press(m, key(tea.KeyEsc))
	typeText(m, "3")
	typeText(m, "Ann")
	press(m, key(tea.KeyTab))
	typeText(m, "ann@example.com")
	press(m, key(tea.KeyEnter))
	assert.Equal(t, contact.FieldMessage, m.State().ContactField)
	typeText(m, "Great picks")

	cmd := press(m, key(tea.KeyEnter))
	assert.Equal(t, contact.StatusSending, m.State().Contact.Status())

	settle(m, cmd)
	assert.Equal(t, 1, *contacts)
	assert.Equal(t, contact.StatusIdle, m.State().Contact.Status())
	assert.Empty(t, m.State().Contact.Value(contact.FieldName))
	assert.Empty(t, m.inputHandler.Field(contact.FieldMessage).Value())
}

func TestQuitCancelsRequests(t *testing.T) {
	url, _ := fakeBackend(t)
	m := newTestModel(t, url)

	typeText(m, "Heat")
	press(m, key(tea.KeyEnter))
	press(m, key(tea.KeyEsc))

	cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Error(t, m.root.Err())
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t,
		"https://www.google.com/search?q=Watch+The+Dark+Knight+online",
		WatchURL("The Dark Knight"))
}
