// Package preview serves the build output locally and rebuilds it whenever
// the pages tree changes.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.home.luguber.info/inful/mdpages/internal/build"
	"git.home.luguber.info/inful/mdpages/internal/config"
	"git.home.luguber.info/inful/mdpages/internal/logfields"
)

// debounceWindow coalesces editor save bursts into a single rebuild.
const debounceWindow = 250 * time.Millisecond

// buildStatus tracks the current build state for error display.
type buildStatus struct {
	mu           sync.RWMutex
	lastError    error
	hasGoodBuild bool
}

func (bs *buildStatus) setError(err error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = err
}

func (bs *buildStatus) setSuccess() {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	bs.lastError = nil
	bs.hasGoodBuild = true
}

func (bs *buildStatus) snapshot() (err error, hasGoodBuild bool) {
	bs.mu.RLock()
	defer bs.mu.RUnlock()
	return bs.lastError, bs.hasGoodBuild
}

// metrics holds the preview server's Prometheus collectors.
type metrics struct {
	registry *prometheus.Registry
	rebuilds *prometheus.CounterVec
	requests prometheus.Counter
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		rebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mdpages_rebuilds_total",
			Help: "Preview rebuilds by outcome.",
		}, []string{"status"}),
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mdpages_http_requests_total",
			Help: "HTTP requests served by the preview server.",
		}),
	}
	m.registry.MustRegister(m.rebuilds, m.requests)
	return m
}

// Serve builds once, then watches opts.PagesDir and serves opts.OutputDir on
// the given port until ctx is cancelled.
func Serve(ctx context.Context, opts *config.Options, port int) error {
	status := &buildStatus{}
	m := newMetrics()

	rebuild := func() {
		if _, err := build.Run(opts, opts.OutputDir); err != nil {
			slog.Error("Rebuild failed", logfields.Error(err))
			status.setError(err)
			m.rebuilds.WithLabelValues("failed").Inc()
			return
		}
		status.setSuccess()
		m.rebuilds.WithLabelValues("ok").Inc()
	}
	rebuild()
	if err, good := status.snapshot(); !good {
		slog.Warn("Initial build failed; serving after next successful rebuild", logfields.Error(err))
	}

	watcher, err := newRecursiveWatcher(opts.PagesDir)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	server := startHTTPServer(opts, status, m, port)
	defer func() { _ = server.Close() }()

	return watchLoop(ctx, watcher, rebuild)
}

// newRecursiveWatcher watches root and all its subdirectories. fsnotify is
// not recursive, so directories created later are added in the watch loop.
func newRecursiveWatcher(root string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch pages dir %s: %w", root, err)
	}
	return watcher, nil
}

// watchLoop debounces filesystem events into rebuilds until ctx is done.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, rebuild func()) error {
	var debounce *time.Timer
	trigger := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if shouldIgnoreEvent(event.Name) {
				continue
			}
			if event.Op.Has(fsnotify.Create) {
				// New directories must be watched for subsequent events.
				_ = watcher.Add(event.Name)
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceWindow, func() {
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-trigger:
			slog.Info("Pages changed, rebuilding")
			rebuild()
		}
	}
}

// startHTTPServer serves the output dir plus /metrics and /healthz.
func startHTTPServer(opts *config.Options, status *buildStatus, m *metrics, port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err, good := status.snapshot(); err != nil || !good {
			http.Error(w, "last build failed", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/", http.FileServer(http.Dir(opts.OutputDir)))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requests.Inc()
		mux.ServeHTTP(w, r)
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		slog.Info("Preview server listening", logfields.Port(port), logfields.Output(opts.OutputDir))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Preview server stopped", logfields.Error(err))
		}
	}()
	return server
}

// shouldIgnoreEvent filters editor droppings and hidden files out of the
// rebuild trigger path.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasPrefix(base, "."), strings.HasPrefix(base, "#"):
		return true
	case strings.HasSuffix(base, ".swp"), strings.HasSuffix(base, "~"):
		return true
	}
	return false
}
