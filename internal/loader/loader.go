// Package loader turns backend calls into awaitable operations with the
// client's fallback policy applied: a failed or empty catalog becomes the
// sample catalog, failed or empty recommendations become the sample cards.
package loader

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"cinematch/internal/backend"
	"cinematch/internal/catalog"
	"cinematch/internal/domain"
	"cinematch/internal/eventbus"
	"cinematch/internal/logger"
)

// API is the subset of the backend client the loader needs
type API interface {
	Movies(ctx context.Context) ([]string, error)
	Recommend(ctx context.Context, movie string) ([]domain.Recommendation, error)
	Contact(ctx context.Context, msg domain.ContactMessage) (backend.ContactResult, error)
}

// CatalogResult is the outcome of LoadCatalog
type CatalogResult struct {
	Catalog *catalog.Catalog
	Cause   error // set when the fallback was used
}

// RecommendResult is the outcome of Recommend
type RecommendResult struct {
	Movie           string
	Recommendations []domain.Recommendation
	Fallback        bool
	Cause           error
}

// ContactResult is the outcome of SendContact
type ContactResult struct {
	Success bool
	Error   string // user-facing text when Success is false
	Cause   error  // transport or decode failure, if any
}

// Loader applies fallbacks on top of an API
type Loader struct {
	api API
	bus eventbus.EventBus
	log *log.Logger
}

// New creates a loader. bus may be nil.
func New(api API, bus eventbus.EventBus) *Loader {
	return &Loader{api: api, bus: bus, log: logger.New("loader")}
}

// LoadCatalog fetches the titles, using the sample catalog on any failure or
// empty reply. A canceled context is returned as an error so a superseded
// load does not replace anything.
func (l *Loader) LoadCatalog(ctx context.Context) (CatalogResult, error) {
	titles, err := l.api.Movies(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return CatalogResult{}, errors.Wrap(ctxErr, "catalog load superseded")
		}
		l.log.Warn("using sample movies data", "err", err)
		l.publish(eventbus.FallbackUsedEvent{Endpoint: "/movies", Cause: err})
		return CatalogResult{Catalog: catalog.Fallback(), Cause: err}, nil
	}

	l.log.Debug("movies data loaded", "count", len(titles))
	return CatalogResult{Catalog: catalog.New(titles, domain.SourceRemote)}, nil
}

// Recommend fetches recommendations for movie, using the sample cards on
// failure, {success:false} or an empty list.
func (l *Loader) Recommend(ctx context.Context, movie string) (RecommendResult, error) {
	recs, err := l.api.Recommend(ctx, movie)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return RecommendResult{}, errors.Wrap(ctxErr, "recommendation request superseded")
		}
		l.log.Warn("using sample recommendations", "movie", movie, "err", err)
		l.publish(eventbus.FallbackUsedEvent{Endpoint: "/recommend", Cause: err})
		return RecommendResult{
			Movie:           movie,
			Recommendations: catalog.FallbackRecommendations(),
			Fallback:        true,
			Cause:           err,
		}, nil
	}

	l.log.Debug("recommendations loaded", "movie", movie, "count", len(recs))
	return RecommendResult{Movie: movie, Recommendations: recs}, nil
}

// SendContact submits the form. Failures are folded into the result; nothing is retried.
func (l *Loader) SendContact(ctx context.Context, msg domain.ContactMessage) ContactResult {
	res, err := l.api.Contact(ctx, msg)
	if err != nil {
		l.log.Error("contact form submission failed", "err", err)
		l.publish(eventbus.ErrorEvent{Message: "contact form submission failed", Err: err})
		return ContactResult{Success: false, Cause: err}
	}
	if !res.Success {
		l.log.Warn("contact form rejected", "error", res.Error)
	}
	return ContactResult{Success: res.Success, Error: res.Error}
}

func (l *Loader) publish(e eventbus.DomainEvent) {
	if l.bus != nil {
		l.bus.Publish(e)
	}
}
