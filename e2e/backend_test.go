//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeBackend serves the movie API on a local port
type FakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	movies   []string
	contacts []map[string]string
}

// BackendOption customizes a FakeBackend
type BackendOption func(*FakeBackend)

// WithMovies replaces the served catalog
func WithMovies(titles ...string) BackendOption {
	return func(b *FakeBackend) {
		b.movies = titles
	}
}

// NewFakeBackend starts a backend that is closed when the test ends
func NewFakeBackend(t *testing.T, opts ...BackendOption) *FakeBackend {
	t.Helper()
	b := &FakeBackend{
		movies: []string{"The Dark Knight", "Heat", "Inception", "Darkman", "Memento"},
	}
	for _, opt := range opts {
		opt(b)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/movies", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"movies": b.movies})
	})
	mux.HandleFunc("/recommend", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"recommendations": []map[string]any{
				{"title": "Batman Begins", "poster_path": "", "similarity_score": 0.91},
				{"title": "The Prestige", "poster_path": "", "similarity_score": 0.87},
				{"title": "Insomnia", "poster_path": "", "similarity_score": 0.80},
				{"title": "Following", "poster_path": "", "similarity_score": 0.74},
				{"title": "Tenet", "poster_path": "", "similarity_score": 0.71},
				{"title": "Dunkirk", "poster_path": "", "similarity_score": 0.69},
				{"title": "Interstellar", "poster_path": "", "similarity_score": 0.66},
				{"title": "Memento", "poster_path": "", "similarity_score": 0.62},
			},
		})
	})
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		var msg map[string]string
		_ = json.NewDecoder(r.Body).Decode(&msg)
		b.mu.Lock()
		b.contacts = append(b.contacts, msg)
		b.mu.Unlock()
		writeJSON(w, map[string]any{"success": true})
	})

	b.Server = httptest.NewServer(mux)
	t.Cleanup(b.Close)
	return b
}

// Contacts returns the contact messages received so far
func (b *FakeBackend) Contacts() []map[string]string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]string(nil), b.contacts...)
}

// DeadBackendURL returns the address of a server that is already closed
func DeadBackendURL() string {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
