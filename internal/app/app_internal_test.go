package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/config"
)

func TestApp_ShutdownDrainsInFlightRequests(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	a := New(cfg, &Provider{}, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	a.server.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		if r.Context().Err() != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- a.server.Serve(ln) }()

	status := make(chan int, 1)
	go func() {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://"+ln.Addr().String()+"/api/events", http.NoBody)
		if err != nil {
			status <- 0
			return
		}
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			status <- 0
			return
		}
		res.Body.Close()
		status <- res.StatusCode
	}()

	<-started
	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- a.Shutdown() }()

	// Let Shutdown close the listener before the handler finishes.
	time.Sleep(50 * time.Millisecond)
	close(release)

	if got := <-status; got != http.StatusOK {
		t.Errorf("in-flight request status = %d, want: %d", got, http.StatusOK)
	}

	if err := <-shutdownErr; err != nil {
		t.Errorf("a.Shutdown() = %v, want: nil", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		t.Errorf("a.server.Serve() = %v, want: %v", err, http.ErrServerClosed)
	}
}
