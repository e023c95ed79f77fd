package academia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/usecase"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
	})
	return client, server
}

func TestFetchMatchPageReducesToText(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(samplePage))
	}))

	text, err := client.FetchMatchPage(context.Background(), "São Paulo", "Grêmio")
	if err != nil {
		t.Fatalf("FetchMatchPage: %v", err)
	}

	wantPath := "/stats/previsao/sao-paulo-vs-gremio/futebol/brasil/campeonato-brasileiro-serie-a"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}
	if !strings.Contains(text, "Corinthians vs Sport") {
		t.Errorf("expected reduced text, got:\n%s", text)
	}
}

func TestFetchDailyListingPath(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte("<html><body><p>JOGOS DISPONÍVEIS</p></body></html>"))
	}))
	client.now = func() time.Time {
		return time.Date(2025, time.April, 19, 10, 0, 0, 0, time.UTC)
	}

	if _, err := client.FetchDailyListing(context.Background()); err != nil {
		t.Fatalf("FetchDailyListing: %v", err)
	}

	wantPath := "/stats/jogos-do-dia/2025-04-19/futebol/brasil/campeonato-brasileiro-serie-a"
	if gotPath != wantPath {
		t.Errorf("path = %q, want %q", gotPath, wantPath)
	}
}

func TestFetchRetriesTransientStatus(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(samplePage))
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		MaxRetries: 2,
	})

	if _, err := client.FetchMatchPage(context.Background(), "Corinthians", "Sport"); err != nil {
		t.Fatalf("FetchMatchPage: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("calls = %d, want 2", got)
	}
}

func TestFetchDoesNotRetryClientError(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.FetchMatchPage(context.Background(), "Corinthians", "Sport")
	if err == nil {
		t.Fatal("expected error for 404 page")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1", got)
	}
}

func TestFetchBreakerOpensAfterRepeatedFailures(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		HTTPClient:      server.Client(),
		BaseURL:         server.URL,
		BreakerFailures: 2,
		BreakerCooldown: time.Minute,
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.FetchMatchPage(ctx, "Corinthians", "Sport"); err == nil {
			t.Fatal("expected failure from upstream")
		}
	}

	_, err := client.FetchMatchPage(ctx, "Corinthians", "Sport")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Errorf("err = %v, want ErrDependencyUnavailable", err)
	}
}
