package state

import (
	"context"

	"cinematch/internal/catalog"
	"cinematch/internal/contact"
	"cinematch/internal/domain"
	"cinematch/internal/poster"
	"cinematch/internal/slider"
	"cinematch/internal/suggest"
)

// Messages shown in the recommendations area
const (
	MsgEmptyQuery = "Please enter a movie title"
	MsgNoResults  = "No recommendations found. Please try another movie."
)

// request tracks the latest in-flight request of one kind
type request struct {
	generation uint64
	ctx        context.Context
	cancel     context.CancelFunc
}

// begin cancels the previous request and starts a new generation
func (r *request) begin(parent context.Context) (context.Context, uint64) {
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	r.generation++
	r.ctx = ctx
	r.cancel = cancel
	return ctx, r.generation
}

// finish releases the context of generation gen if it is still the latest
func (r *request) finish(gen uint64) bool {
	if gen != r.generation {
		return false
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
		r.ctx = nil
	}
	return true
}

// running returns the context of generation gen while it is still running
func (r *request) running(gen uint64) (context.Context, bool) {
	if gen != r.generation || r.ctx == nil {
		return nil, false
	}
	return r.ctx, true
}

func (r *request) stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
		r.ctx = nil
	}
}

// AppState contains all the application state
type AppState struct {
	// Catalog data
	Catalog        *catalog.Catalog
	CatalogLoading bool

	// Search state
	Query       string
	Suggestions *suggest.List

	// Recommendation state
	Movie        string        // movie the current cards were requested for
	LoadingMovie string        // movie of the request in flight
	Cards        []poster.Card // cards currently displayed
	Fallback     bool          // cards are sample data
	ErrorText    string        // shown instead of cards
	Slider       *slider.Slider

	// Contact state
	Contact      *contact.Form
	ContactField contact.Field

	// UI state
	Section       domain.Section
	StatusMessage string

	catalogReq   request
	recommendReq request

	// query was matched against the sample titles while the catalog was empty
	sampleQuery bool
}

// NewAppState creates a new application state
func NewAppState(engine suggest.Engine, cardWidth int) *AppState {
	return &AppState{
		Catalog:     catalog.New(nil, domain.SourceRemote),
		Suggestions: suggest.NewList(engine),
		Slider:      slider.New(cardWidth),
		Contact:     contact.NewForm(),
		Section:     domain.SectionSearch,
	}
}

// Catalog requests

// BeginCatalogLoad starts a catalog load, canceling any load in flight
func (s *AppState) BeginCatalogLoad(parent context.Context) (context.Context, uint64) {
	s.CatalogLoading = true
	return s.catalogReq.begin(parent)
}

// CatalogGeneration returns the generation of the latest catalog load
func (s *AppState) CatalogGeneration() uint64 {
	return s.catalogReq.generation
}

// ApplyCatalog installs a loaded catalog if gen is the latest load.
// An open list, or a query typed before any catalog arrived, is
// recomputed against the new titles.
func (s *AppState) ApplyCatalog(gen uint64, c *catalog.Catalog) bool {
	if !s.catalogReq.finish(gen) {
		return false
	}
	s.Catalog = c
	s.CatalogLoading = false
	if s.Suggestions.Open() || s.sampleQuery {
		s.sampleQuery = false
		s.Suggestions.Update(s.Query, s.Catalog.View())
	}
	return true
}

// Search

// SetQuery updates the query and recomputes the suggestions. Until a
// catalog has arrived the sample titles are searched instead.
func (s *AppState) SetQuery(query string) {
	s.Query = query
	titles := s.Catalog.View()
	s.sampleQuery = s.Catalog.Len() == 0
	if s.sampleQuery {
		titles = catalog.Fallback().View()
	}
	s.Suggestions.Update(query, titles)
}

// CommitSuggestion replaces the query with a chosen suggestion
func (s *AppState) CommitSuggestion(text string) {
	s.Query = text
	s.CloseSuggestions()
}

// CloseSuggestions hides the list; a catalog arriving later leaves it closed
func (s *AppState) CloseSuggestions() {
	s.sampleQuery = false
	s.Suggestions.Close()
}

// Recommendation requests

// BeginRecommend starts a recommendation request for movie, canceling any
// request in flight. The current cards stay visible until the result arrives.
func (s *AppState) BeginRecommend(parent context.Context, movie string) (context.Context, uint64) {
	s.LoadingMovie = movie
	s.ErrorText = ""
	return s.recommendReq.begin(parent)
}

// RecommendGeneration returns the generation of the latest recommendation request
func (s *AppState) RecommendGeneration() uint64 {
	return s.recommendReq.generation
}

// Loading reports whether a recommendation request is in flight
func (s *AppState) Loading() bool {
	return s.LoadingMovie != ""
}

// ApplyRecommendations shows the cards of request gen. Results of any older
// request are dropped and false is returned.
func (s *AppState) ApplyRecommendations(gen uint64, movie string, recs []domain.Recommendation, fallback bool) bool {
	if gen != s.recommendReq.generation {
		return false
	}
	s.LoadingMovie = ""
	s.Movie = movie
	s.Fallback = fallback
	s.Cards = poster.Cards(recs)
	s.Slider.SetCards(len(s.Cards))
	if len(s.Cards) == 0 {
		s.ErrorText = MsgNoResults
	}
	return true
}

// ApplyPosterFailures swaps the posters of the failed card indexes for
// placeholders if gen is still current
func (s *AppState) ApplyPosterFailures(gen uint64, failed []int) bool {
	if !s.recommendReq.finish(gen) {
		return false
	}
	for _, i := range failed {
		if i >= 0 && i < len(s.Cards) && !s.Cards[i].Placeholder {
			s.Cards[i].Fail()
		}
	}
	return true
}

// RecommendContext returns the context of request gen while it is still running
func (s *AppState) RecommendContext(gen uint64) (context.Context, bool) {
	return s.recommendReq.running(gen)
}

// FinishRecommend releases the context of request gen when no probing follows
func (s *AppState) FinishRecommend(gen uint64) {
	s.recommendReq.finish(gen)
}

// RejectEmptyQuery records the empty-query error without starting a request
func (s *AppState) RejectEmptyQuery() {
	s.ErrorText = MsgEmptyQuery
	s.Cards = nil
	s.Slider.SetCards(0)
}

// CurrentCard returns the first visible card
func (s *AppState) CurrentCard() (poster.Card, bool) {
	i := s.Slider.Offset()
	if i < 0 || i >= len(s.Cards) {
		return poster.Card{}, false
	}
	return s.Cards[i], true
}

// Navigation

// SwitchSection moves to section and closes the suggestion list
func (s *AppState) SwitchSection(section domain.Section) {
	s.Section = section
	s.CloseSuggestions()
}

// CycleSection moves delta steps through the nav bar, wrapping around
func (s *AppState) CycleSection(delta int) {
	n := len(domain.Sections)
	idx := (int(s.Section) + delta) % n
	if idx < 0 {
		idx += n
	}
	s.SwitchSection(domain.Sections[idx])
}

// CancelAll aborts every request in flight
func (s *AppState) CancelAll() {
	s.catalogReq.stop()
	s.recommendReq.stop()
}
