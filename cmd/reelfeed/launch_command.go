package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reelfeed/internal/launcher"
)

func newLaunchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Replace this process with the legacy Python application",
		Long: "Launch changes into the configured application directory and execs the\n" +
			"environment manager (conda run -n <env> python app.py ...). On success the\n" +
			"reelfeed process is replaced and never returns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			launch := launcher.FromConfig(cfg)
			if dryRun {
				stdout := cmd.OutOrStdout()
				fmt.Fprintf(stdout, "workdir: %s\n", launch.AppDir)
				fmt.Fprintf(stdout, "argv: %s\n", strings.Join(launch.Argv(), " "))
				return nil
			}

			// Only reached when the exec fails; success never returns.
			return launch.Run()
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the launch invocation without executing it")
	return cmd
}
