package backend

import (
	"github.com/cockroachdb/errors"

	"cinematch/internal/domain"
)

// Error classes returned by the client. Match them with errors.Is.
var (
	ErrStatus       = errors.New("backend returned a non-2xx status")
	ErrDecode       = errors.New("backend returned a malformed body")
	ErrEmpty        = errors.New("backend returned no results")
	ErrUnsuccessful = errors.New("backend reported failure")
	ErrBreakerOpen  = errors.New("backend circuit breaker is open")
)

// moviesResponse is the body of GET /movies. Entries are decoded loosely so
// a stray non-string entry does not reject the whole catalog.
type moviesResponse struct {
	Movies []any `json:"movies"`
}

// recommendRequest is the body of POST /recommend
type recommendRequest struct {
	Movie string `json:"movie"`
}

// recommendResponse is the body returned by POST /recommend
type recommendResponse struct {
	Success         bool                    `json:"success"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Error           string                  `json:"error,omitempty"`
}

// ContactResult is the body returned by POST /contact
type ContactResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
