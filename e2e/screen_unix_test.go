//go:build e2e && unix

package main

import (
	"io"
	"sync"
	"time"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

// screen keeps the last ringSize bytes the app wrote to its terminal
type screen struct {
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func newScreen() *screen {
	return &screen{buf: make([]byte, ringSize)}
}

// Write appends p, overwriting the oldest bytes once the ring is full
func (s *screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range p {
		s.buf[s.head] = c
		s.head = (s.head + 1) % ringSize
		if s.head == 0 {
			s.full = true
		}
	}
	return len(p), nil
}

// record copies r into the screen until it fails, e.g. when the PTY closes
func (s *screen) record(r io.Reader) {
	_, _ = io.Copy(s, r)
}

func (s *screen) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.full {
		return string(s.buf[:s.head])
	}
	out := make([]byte, 0, ringSize)
	out = append(out, s.buf[s.head:]...)
	out = append(out, s.buf[:s.head]...)
	return string(out)
}

func (s *screen) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(s.String()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}
