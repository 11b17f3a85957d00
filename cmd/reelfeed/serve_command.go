package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reelfeed/internal/library"
	"reelfeed/internal/logging"
	"reelfeed/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var rebuild bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Index the media root and serve the video feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			store, err := library.OpenStore(cfg)
			if err != nil {
				logger.Error("open index store", logging.Error(err))
				return err
			}
			defer store.Close()

			lib := library.New(cfg, store, logger)
			if rebuild {
				if err := lib.Rebuild(signalCtx); err != nil {
					logger.Error("rebuild index", logging.Error(err))
					return err
				}
			}

			srv, err := server.New(cfg, lib, logger)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}

			logger.Info("reelfeed starting",
				logging.String("bind", cfg.Paths.Bind),
				logging.String("root", cfg.Paths.Root),
				logging.Int("pid", os.Getpid()),
			)
			return srv.Run(signalCtx)
		},
	}

	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Discard the cached index and rescan before serving")
	return cmd
}
