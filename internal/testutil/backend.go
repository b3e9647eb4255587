// Package testutil provides shared test fixtures, most importantly a fake
// of the platform REST backend.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// Backend is a configurable fake REST backend. Routes are registered with
// Handle/HandleJSON; every request is recorded so tests can assert which
// probes were (or were not) issued.
type Backend struct {
	mu       sync.Mutex
	requests []string
	mux      *http.ServeMux
	srv      *httptest.Server
}

// NewBackend starts a fake backend that is shut down when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{mux: http.NewServeMux()}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, r.Method+" "+r.URL.Path)
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the backend's base URL.
func (b *Backend) URL() string {
	return b.srv.URL
}

// Handle registers a handler for the given pattern.
func (b *Backend) Handle(pattern string, h http.HandlerFunc) {
	b.mux.HandleFunc(pattern, h)
}

// HandleJSON registers a handler that always answers with the given status
// and JSON body.
func (b *Backend) HandleJSON(pattern string, status int, body string) {
	b.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// HandleHangup registers a handler that drops the connection without
// writing a response, producing a transport-level error at the client.
func (b *Backend) HandleHangup(pattern string) {
	b.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			panic("testutil: response writer does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			panic(err)
		}
		_ = conn.Close()
	})
}

// Count returns how many requests matched the given "METHOD /path" line.
func (b *Backend) Count(line string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for _, r := range b.requests {
		if r == line {
			n++
		}
	}
	return n
}

// Requests returns a copy of the recorded request lines in order.
func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}
