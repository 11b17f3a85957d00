package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"reelfeed/internal/config"
	"reelfeed/internal/logging"
)

// Library owns the live index snapshot, rebuilding it from the scanner and
// persisting it through the cache store. Snapshot reads are cheap; rebuilds
// swap the snapshot atomically.
type Library struct {
	scanner *Scanner
	store   *Store
	logger  *slog.Logger

	mu  sync.RWMutex
	idx *Index
}

// New wires a library around the configured root and an opened cache store.
// The store may be nil, in which case snapshots are not persisted.
func New(cfg *config.Config, store *Store, logger *slog.Logger) *Library {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Library{
		scanner: NewScanner(cfg, logger),
		store:   store,
		logger:  logging.WithComponent(logger, "library"),
	}
}

// Ensure makes a snapshot available: a cached index for the same root is
// reused, anything else triggers a full rescan.
func (l *Library) Ensure(ctx context.Context) error {
	l.mu.RLock()
	ready := l.idx != nil
	l.mu.RUnlock()
	if ready {
		return nil
	}

	if l.store != nil {
		cached, err := l.store.Load(ctx)
		switch {
		case err == nil && cached.Root == l.scanner.root:
			l.logger.Info("using cached index",
				logging.Int("items", cached.Len()),
				logging.String("built_at", cached.BuiltAt.String()),
			)
			l.swap(cached)
			return nil
		case err == nil:
			l.logger.Info("cached index is for a different root; rebuilding",
				logging.String("cached_root", cached.Root),
				logging.String("root", l.scanner.root),
			)
		case errors.Is(err, ErrNoIndex):
			// First run.
		default:
			l.logger.Warn("index cache unreadable; rebuilding", logging.Error(err))
		}
	}

	return l.Rebuild(ctx)
}

// Rebuild rescans the media root and replaces the live snapshot.
func (l *Library) Rebuild(ctx context.Context) error {
	idx, err := l.scanner.Scan(ctx)
	if err != nil {
		return err
	}
	if l.store != nil {
		if err := l.store.Save(ctx, idx); err != nil {
			return fmt.Errorf("persist index: %w", err)
		}
	}
	l.swap(idx)
	return nil
}

// Snapshot returns the current index, which may be nil before Ensure runs.
func (l *Library) Snapshot() *Index {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.idx
}

func (l *Library) swap(idx *Index) {
	l.mu.Lock()
	l.idx = idx
	l.mu.Unlock()
}
