package loader

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinematch/internal/backend"
	"cinematch/internal/catalog"
	"cinematch/internal/domain"
	"cinematch/internal/suggest"
)

func clientFor(t *testing.T, url string) *backend.Client {
	t.Helper()
	c, err := backend.New(backend.Options{BaseURL: url, Timeout: time.Second, BreakerFailures: 100})
	require.NoError(t, err)
	return c
}

func serve(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestEmptyMoviesFallsBackToSampleCatalog(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"movies": []}`)
	})
	l := New(clientFor(t, url), nil)

	res, err := l.LoadCatalog(context.Background())
	require.NoError(t, err)
	require.Error(t, res.Cause)
	assert.True(t, res.Catalog.IsFallback())
	assert.Equal(t, 19, res.Catalog.Len())

	// suggestions now come from the sample titles
	got := suggest.Suggest("dark", res.Catalog.View())
	require.Len(t, got, 1)
	assert.Equal(t, "The Dark Knight", got[0].Text)
	assert.Equal(t, 4, got[0].MatchStart)
}

func TestRemoteCatalog(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"movies": ["Heat", "Alien"]}`)
	})
	l := New(clientFor(t, url), nil)

	res, err := l.LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.NoError(t, res.Cause)
	assert.False(t, res.Catalog.IsFallback())
	assert.Equal(t, []string{"Heat", "Alien"}, res.Catalog.Titles())
}

func TestNonJSONMoviesFallsBack(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "not json")
	})
	res, err := New(clientFor(t, url), nil).LoadCatalog(context.Background())
	require.NoError(t, err)
	assert.True(t, errors.Is(res.Cause, backend.ErrDecode))
	assert.True(t, res.Catalog.IsFallback())
}

func TestRecommendNetworkFailureGivesFiveSampleCards(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // nothing listens any more

	res, err := New(clientFor(t, url), nil).Recommend(context.Background(), "Avatar")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	require.Error(t, res.Cause)
	assert.Equal(t, catalog.SampleRecommendations, res.Recommendations)
	assert.Len(t, res.Recommendations, 5)
}

func TestRecommendUnsuccessfulFallsBack(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success": false, "error": "boom"}`)
	})
	res, err := New(clientFor(t, url), nil).Recommend(context.Background(), "Avatar")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.True(t, errors.Is(res.Cause, backend.ErrUnsuccessful))
}

func TestRecommendSuccess(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success": true, "recommendations": [{"title": "Heat", "poster_path": "", "similarity_score": 0.5}]}`)
	})
	res, err := New(clientFor(t, url), nil).Recommend(context.Background(), "Ronin")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, []domain.Recommendation{{Title: "Heat", SimilarityScore: 0.5}}, res.Recommendations)
}

func TestSupersededRecommendReturnsError(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(clientFor(t, url), nil).Recommend(ctx, "Avatar")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSendContact(t *testing.T) {
	url := serve(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success": false, "error": "mailer down"}`)
	})
	res := New(clientFor(t, url), nil).SendContact(context.Background(), domain.ContactMessage{Name: "a", Email: "b", Message: "c"})
	assert.False(t, res.Success)
	assert.Equal(t, "mailer down", res.Error)
	assert.NoError(t, res.Cause)
}

func TestSendContactTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	res := New(clientFor(t, url), nil).SendContact(context.Background(), domain.ContactMessage{Name: "a", Email: "b", Message: "c"})
	assert.False(t, res.Success)
	assert.Empty(t, res.Error)
	assert.Error(t, res.Cause)
}
