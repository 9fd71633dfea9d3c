// Package backend is the HTTP client for the recommender service.
//
// Every call goes through a client-side rate limiter and a circuit breaker
// shared by all endpoints, so a dead backend fails fast and callers can fall
// back to sample data without waiting on timeouts each time.
package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"cinematch/internal/domain"
)

// maxBodyBytes caps how much of a response is read
const maxBodyBytes = 4 << 20

// Options configures a Client
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	BreakerFailures   uint32
	BreakerCooldown   time.Duration
	HTTPClient        *http.Client
	Logger            *log.Logger
}

// Client talks to /movies, /recommend and /contact
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *log.Logger
}

// New creates a client. BaseURL must be an absolute http(s) URL.
func New(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend url %q", opts.BaseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.WithHint(
			errors.Newf("invalid backend url %q", opts.BaseURL),
			"use an absolute URL such as http://127.0.0.1:5000",
		)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Client{
		base:    base,
		http:    httpClient,
		limiter: rate.NewLimiter(limit, burst),
		log:     logger,
	}
	c.breaker = newBreaker(opts.BreakerFailures, opts.BreakerCooldown, logger)
	return c, nil
}

// newBreaker trips after failures consecutive errors and probes again after cooldown
func newBreaker(failures uint32, cooldown time.Duration, logger *log.Logger) *gobreaker.CircuitBreaker[[]byte] {
	if failures == 0 {
		failures = 3
	}
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "backend",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up is not the backend's fault
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
}

// BaseURL returns the backend root
func (c *Client) BaseURL() string {
	return c.base.String()
}

// BreakerState reports the breaker state for display and logs
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// Movies fetches the title catalog. Non-string entries are skipped;
// an empty list is ErrEmpty.
func (c *Client) Movies(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, "/movies", nil)
	if err != nil {
		return nil, err
	}

	var resp moviesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode /movies"), ErrDecode)
	}

	titles := make([]string, 0, len(resp.Movies))
	for _, m := range resp.Movies {
		if s, ok := m.(string); ok {
			titles = append(titles, s)
		}
	}
	if len(titles) == 0 {
		return nil, errors.Wrap(ErrEmpty, "/movies")
	}
	return titles, nil
}

// Recommend asks for movies similar to movie
func (c *Client) Recommend(ctx context.Context, movie string) ([]domain.Recommendation, error) {
	body, err := c.do(ctx, http.MethodPost, "/recommend", recommendRequest{Movie: movie})
	if err != nil {
		return nil, err
	}

	var resp recommendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode /recommend"), ErrDecode)
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "no error given"
		}
		return nil, errors.Wrapf(ErrUnsuccessful, "/recommend: %s", msg)
	}
	if len(resp.Recommendations) == 0 {
		return nil, errors.Wrap(ErrEmpty, "/recommend")
	}
	return resp.Recommendations, nil
}

// Contact submits the contact form. A well-formed {success:false} reply is
// returned as a result, not an error.
func (c *Client) Contact(ctx context.Context, msg domain.ContactMessage) (ContactResult, error) {
	body, err := c.do(ctx, http.MethodPost, "/contact", msg)
	if err != nil {
		return ContactResult{}, err
	}

	var resp ContactResult
	if err := json.Unmarshal(body, &resp); err != nil {
		return ContactResult{}, errors.Mark(errors.Wrap(err, "decode /contact"), ErrDecode)
	}
	return resp, nil
}

// do performs one request through the limiter and breaker and returns the body of a 2xx reply
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.roundTrip(ctx, method, path, payload)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Mark(errors.Wrapf(err, "%s %s", method, path), ErrBreakerOpen)
	}
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s body", path)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reqBody)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", path)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", path)
	}

	c.log.Debug("backend request", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "took", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Mark(errors.Newf("%s %s: status %d", method, path, resp.StatusCode), ErrStatus)
	}
	return data, nil
}
