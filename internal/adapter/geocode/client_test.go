package geocode

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewHTTPClient(srv.URL, "key-1", time.Second, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "k", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "k", time.Second, testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestForwardReturnsFirstResult(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("api_key"); got != "key-1" {
			t.Errorf("expected api key in query, got %q", got)
		}
		if got := r.URL.Query().Get("q"); got != "12 Rose St, Riverside" {
			t.Errorf("unexpected query %q", got)
		}
		w.Write([]byte(`{"results":[{"lat":13.74,"lon":100.52},{"lat":0,"lon":0}]}`))
	}))

	coords, err := client.Forward(context.Background(), "12 Rose St, Riverside")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Latitude != 13.74 || coords.Longitude != 100.52 {
		t.Fatalf("unexpected coordinates: %+v", coords)
	}
}

func TestForwardNoResults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	if _, err := client.Forward(context.Background(), "nowhere"); !errors.Is(err, ErrNoResults) {
		t.Fatalf("expected ErrNoResults, got %v", err)
	}
}

func TestForwardProviderFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	if _, err := client.Forward(context.Background(), "anywhere"); err == nil {
		t.Fatal("expected error on provider failure")
	}
}

func TestAutocompleteCollectsFormatted(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/autocomplete" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"formatted":"12 Rose St"},{"formatted":"12 Rosewood Ave"}]}`))
	}))

	suggestions, err := client.Autocomplete(context.Background(), "12 Rose")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"12 Rose St", "12 Rosewood Ave"}
	if len(suggestions) != len(want) {
		t.Fatalf("unexpected suggestions: %v", suggestions)
	}
	for i, s := range want {
		if suggestions[i] != s {
			t.Fatalf("expected %q at %d, got %q", s, i, suggestions[i])
		}
	}
}

func TestAutocompleteEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	suggestions, err := client.Autocomplete(context.Background(), "zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected no suggestions, got %v", suggestions)
	}
}
