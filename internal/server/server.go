package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reelfeed/internal/config"
	"reelfeed/internal/library"
	"reelfeed/internal/logging"
)

// Server serves the feed UI and API for one media root. A flock on the lock
// file enforces a single instance per configuration.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	lib        *library.Library
	instanceID string

	lockPath string
	lock     *flock.Flock

	httpServer *http.Server

	listenerMu sync.Mutex
	listener   net.Listener

	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// New constructs a server around an existing library.
func New(cfg *config.Config, lib *library.Library, logger *slog.Logger) (*Server, error) {
	if cfg == nil || lib == nil {
		return nil, errors.New("server requires config and library")
	}
	if logger == nil {
		logger = logging.NopLogger()
	}

	s := &Server{
		cfg:        cfg,
		logger:     logging.WithComponent(logger, "server"),
		lib:        lib,
		instanceID: uuid.NewString(),
		lockPath:   cfg.LockFilePath(),
		lock:       flock.New(cfg.LockFilePath()),
		shutdownCh: make(chan struct{}),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/api/feed", s.handleFeed)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/folders", s.handleFolders)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/reindex", s.handleReindex)
	mux.HandleFunc("/v/", s.handleStream)
	mux.HandleFunc("/file/", s.handleFile)
	mux.HandleFunc("/shutdown", s.handleShutdown)

	s.httpServer = &http.Server{
		Handler:           s.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler exposes the routed HTTP handler, mainly for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the bound listen address once Run has started listening.
func (s *Server) Addr() string {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// InstanceID identifies this server process in status responses.
func (s *Server) InstanceID() string {
	return s.instanceID
}

// Run ensures the index, binds the configured address, and serves until the
// context is canceled or a shutdown request arrives.
func (s *Server) Run(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.lockPath), 0o755); err != nil {
		return fmt.Errorf("ensure lock directory: %w", err)
	}
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", s.lockPath, err)
	}
	if !ok {
		return fmt.Errorf("another reelfeed server already holds %s", s.lockPath)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release serve lock", logging.Error(err))
		}
	}()

	if err := s.lib.Ensure(ctx); err != nil {
		return err
	}

	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Paths.Bind, err)
	}
	s.listenerMu.Lock()
	s.listener = listener
	s.listenerMu.Unlock()

	s.logger.Info("feed server listening",
		logging.String("address", listener.Addr().String()),
		logging.String("root", s.cfg.Paths.Root),
		logging.Int("items", s.lib.Snapshot().Len()),
		logging.String("instance_id", s.instanceID),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case <-s.shutdownCh:
		s.logger.Info("shutdown requested over http")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return <-errCh
}

// requestShutdown initiates a graceful stop; safe to call more than once.
func (s *Server) requestShutdown() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)
	})
}
