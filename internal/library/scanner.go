package library

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"reelfeed/internal/config"
	"reelfeed/internal/logging"
	"reelfeed/internal/media"
)

// Scanner walks the media root and produces index snapshots.
type Scanner struct {
	root       string
	extensions []string
	logger     *slog.Logger
}

// NewScanner builds a scanner for the configured media root.
func NewScanner(cfg *config.Config, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Scanner{
		root:       cfg.Paths.Root,
		extensions: cfg.Server.VideoExtensions,
		logger:     logging.WithComponent(logger, "scanner"),
	}
}

// Scan walks the root recursively and returns a finalized index. Unreadable
// subtrees are skipped rather than failing the whole scan; a missing root is
// an error.
func (s *Scanner) Scan(ctx context.Context) (*Index, error) {
	started := time.Now()
	idx := &Index{Root: s.root, BuiltAt: started.UTC()}

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == s.root {
				return walkErr
			}
			s.logger.Warn("skipping unreadable entry", logging.String("path", path), logging.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !media.HasExtension(d.Name(), s.extensions) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			s.logger.Warn("skipping unstatable file", logging.String("path", path), logging.Error(err))
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return fmt.Errorf("relativize %q: %w", path, err)
		}
		relPath := media.NormalizeRelPath(filepath.ToSlash(rel))

		idx.Items = append(idx.Items, media.Item{
			ID:       media.ComputeID(relPath, info.ModTime(), info.Size()),
			RelPath:  relPath,
			Filename: d.Name(),
			Folder:   media.FolderOf(relPath),
			ModTime:  info.ModTime(),
			Size:     info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan media root %q: %w", s.root, err)
	}

	idx.finalize()
	s.logger.Info("scan complete",
		logging.Int("items", len(idx.Items)),
		logging.Int("folders", len(idx.Folders)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return idx, nil
}
