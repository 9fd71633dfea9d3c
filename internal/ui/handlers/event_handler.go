package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"cinematch/internal/catalog"
	"cinematch/internal/domain"
	"cinematch/internal/eventbus"
	"cinematch/internal/logger"
	"cinematch/internal/ui/commands"
	"cinematch/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state    *state.AppState
	executor *commands.Executor
	log      *log.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, executor *commands.Executor) *EventHandler {
	return &EventHandler{
		state:    appState,
		executor: executor,
		log:      logger.New("ui"),
	}
}

// HandleEvent processes domain events and returns any necessary commands.
// Results of superseded requests are dropped here.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.CatalogLoadedEvent:
		if !h.state.ApplyCatalog(e.Generation, catalog.New(e.Titles, e.Source)) {
			h.log.Debug("dropping stale catalog", "generation", e.Generation)
			return nil
		}
		if e.Source == domain.SourceFallback {
			h.state.StatusMessage = "Backend unavailable, using sample movies"
		} else {
			h.state.StatusMessage = fmt.Sprintf("Loaded %d movies", len(e.Titles))
		}

	case eventbus.RecommendationsReadyEvent:
		if !h.state.ApplyRecommendations(e.Generation, e.Movie, e.Recommendations, e.Fallback) {
			h.log.Debug("dropping stale recommendations", "movie", e.Movie, "generation", e.Generation)
			return nil
		}
		if e.Fallback {
			h.state.StatusMessage = "Backend unavailable, showing sample recommendations"
		} else {
			h.state.StatusMessage = fmt.Sprintf("%d recommendations for %q", len(e.Recommendations), e.Movie)
		}
		return h.executor.ExecuteProbePosters(e.Generation)

	case eventbus.PostersProbedEvent:
		if !h.state.ApplyPosterFailures(e.Generation, e.Failed) {
			h.log.Debug("dropping stale poster probe", "generation", e.Generation)
		}

	case eventbus.ContactCompletedEvent:
		token := h.state.Contact.Complete(e.Success, e.Error)
		return h.executor.ExecuteContactReset(token)

	case eventbus.FallbackUsedEvent:
		h.log.Debug("fallback in use", "endpoint", e.Endpoint)
		h.state.StatusMessage = fmt.Sprintf("Backend unavailable (%s), using sample data", e.Endpoint)

	case eventbus.ErrorEvent:
		h.state.StatusMessage = fmt.Sprintf("Error: %s", e.Message)
	}

	return nil
}
