package poster

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"cinematch/internal/domain"
)

// maxConcurrentProbes bounds parallel HEAD requests for one card set
const maxConcurrentProbes = 4

// Card is a recommendation with its resolved image
type Card struct {
	domain.Recommendation
	Image       string // poster URL or placeholder data URI
	Placeholder bool
}

// ErrNoPoster is returned by Probe when the record has no poster path
var ErrNoPoster = errors.New("no poster path")

// Prober checks whether posters can be loaded
type Prober struct {
	client *http.Client
	log    *log.Logger
}

// NewProber creates a prober using client, or a client with a short timeout when nil
func NewProber(client *http.Client, logger *log.Logger) *Prober {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Prober{client: client, log: logger}
}

// Probe issues a HEAD request for url. Any transport error or non-2xx
// status is a load failure.
func (p *Prober) Probe(ctx context.Context, url string) error {
	if url == "" {
		return ErrNoPoster
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return errors.Wrap(err, "build poster request")
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "poster request")
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Newf("poster returned status %d", resp.StatusCode)
	}
	return nil
}

// Resolve probes every poster concurrently and returns one card per record,
// in order. Records whose poster fails get a placeholder image.
func (p *Prober) Resolve(ctx context.Context, recs []domain.Recommendation) []Card {
	cards := Cards(recs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for i := range cards {
		if cards[i].Placeholder {
			continue
		}
		g.Go(func() error {
			if err := p.Probe(gctx, cards[i].PosterPath); err != nil {
				if p.log != nil {
					p.log.Warn("failed to load poster", "title", cards[i].Title, "err", err)
				}
				cards[i].Fail()
			}
			// Probe failures are per card; never cancel the siblings
			return nil
		})
	}
	_ = g.Wait()

	return cards
}

// Cards builds cards without probing; records without a poster path get a placeholder straight away
func Cards(recs []domain.Recommendation) []Card {
	cards := make([]Card, len(recs))
	for i, rec := range recs {
		cards[i] = Card{Recommendation: rec, Image: rec.PosterPath}
		if rec.PosterPath == "" {
			cards[i].Fail()
		}
	}
	return cards
}

// Fail swaps the card image for the placeholder
func (c *Card) Fail() {
	c.Image = Placeholder(c.Title)
	c.Placeholder = true
}

// FailedIndexes returns the positions of every placeholder card
func FailedIndexes(cards []Card) []int {
	var failed []int
	for i, c := range cards {
		if c.Placeholder {
			failed = append(failed, i)
		}
	}
	return failed
}
