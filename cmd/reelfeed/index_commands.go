package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reelfeed/internal/library"
	"reelfeed/internal/logging"
	"reelfeed/internal/media"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Media index maintenance",
	}

	indexCmd.AddCommand(newIndexRebuildCommand(ctx))
	indexCmd.AddCommand(newIndexStatsCommand(ctx))
	indexCmd.AddCommand(newIndexListCommand(ctx))

	return indexCmd
}

func newIndexRebuildCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild",
		Short: "Rescan the media root and replace the cached index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := library.OpenStore(cfg)
			if err != nil {
				return fmt.Errorf("open index store: %w", err)
			}
			defer store.Close()

			lib := library.New(cfg, store, logging.NopLogger())
			started := time.Now()
			if err := lib.Rebuild(cmd.Context()); err != nil {
				return err
			}

			idx := lib.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d videos in %d folders under %s (%s)\n",
				idx.Len(), len(idx.Folders), idx.Root, time.Since(started).Round(time.Millisecond))
			return nil
		},
	}
}

func newIndexStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cached index statistics per folder",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadCachedIndex(cmd, ctx)
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(idx.Folders))
			var bytes int64
			for _, it := range idx.Items {
				counts[it.Folder]++
				bytes += it.Size
			}

			if asJSON {
				type folderStat struct {
					Folder string `json:"folder"`
					Videos int    `json:"videos"`
				}
				stats := make([]folderStat, 0, len(idx.Folders))
				for _, folder := range idx.Folders {
					stats = append(stats, folderStat{Folder: folder, Videos: counts[folder]})
				}
				return writeJSON(cmd, map[string]any{
					"root":       idx.Root,
					"built_at":   idx.BuiltAt,
					"videos":     idx.Len(),
					"total_size": bytes,
					"folders":    stats,
				})
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)
			fmt.Fprintln(stdout, renderSectionHeader("Index", colorize))
			fmt.Fprintln(stdout, renderDetailLine("Root", idx.Root))
			fmt.Fprintln(stdout, renderDetailLine("Built", formatWhen(idx.BuiltAt)))
			fmt.Fprintln(stdout, renderDetailLine("Videos", strconv.Itoa(idx.Len())))
			fmt.Fprintln(stdout, renderDetailLine("Total size", formatSize(bytes)))
			fmt.Fprintln(stdout)

			rows := make([][]string, 0, len(idx.Folders))
			for _, folder := range idx.Folders {
				rows = append(rows, []string{folderLabel(folder), strconv.Itoa(counts[folder])})
			}
			fmt.Fprintln(stdout, renderTable([]string{"Folder", "Videos"}, rows, 1))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit statistics as JSON")
	return cmd
}

func newIndexListCommand(ctx *commandContext) *cobra.Command {
	var folderFilter string
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List indexed videos, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := loadCachedIndex(cmd, ctx)
			if err != nil {
				return err
			}

			items := selectItems(idx.Items, strings.TrimSpace(folderFilter), limit)

			if asJSON {
				type listed struct {
					ID       string    `json:"id"`
					RelPath  string    `json:"relpath"`
					Size     int64     `json:"size"`
					Modified time.Time `json:"modified"`
				}
				out := make([]listed, 0, len(items))
				for _, it := range items {
					out = append(out, listed{ID: it.ID, RelPath: it.RelPath, Size: it.Size, Modified: it.ModTime})
				}
				return writeJSON(cmd, out)
			}

			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No indexed videos match")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{
					it.ID,
					it.Filename,
					folderLabel(it.Folder),
					formatWhen(it.ModTime),
					formatSize(it.Size),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"ID", "Filename", "Folder", "Modified", "Size"}, rows, 4))
			return nil
		},
	}

	cmd.Flags().StringVar(&folderFilter, "folder", "", "Restrict to one folder and its subfolders")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of rows (0 shows everything)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit items as JSON")
	return cmd
}

// loadCachedIndex reads the persisted snapshot without touching the media
// root; maintenance commands inspect what a server would serve.
func loadCachedIndex(cmd *cobra.Command, ctx *commandContext) (*library.Index, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}

	store, err := library.OpenStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open index store: %w", err)
	}
	defer store.Close()

	idx, err := store.Load(cmd.Context())
	if errors.Is(err, library.ErrNoIndex) {
		return nil, errors.New("no cached index; run `reelfeed index rebuild` first")
	}
	if err != nil {
		return nil, err
	}
	return idx, nil
}

func selectItems(items []media.Item, folder string, limit int) []media.Item {
	// Items arrive newest-first from the store.
	out := items
	if folder != "" {
		folder = strings.Trim(folder, "/")
		out = nil
		for _, it := range items {
			if it.Folder == folder || strings.HasPrefix(it.Folder, folder+"/") {
				out = append(out, it)
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
