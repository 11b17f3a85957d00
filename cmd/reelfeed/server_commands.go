package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reelfeed/internal/client"
)

func newServerCommands(ctx *commandContext) []*cobra.Command {
	var statusJSON bool
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show status of the running server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				status, err := cl.Status(cmd.Context())
				if err != nil {
					return err
				}

				if statusJSON {
					return writeJSON(cmd, status)
				}

				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)
				fmt.Fprintln(stdout, renderSectionHeader("Server Status", colorize))
				fmt.Fprintln(stdout, renderDetailLine("Address", cl.BaseURL()))
				fmt.Fprintln(stdout, renderDetailLine("Instance", status.InstanceID))
				fmt.Fprintln(stdout, renderDetailLine("PID", strconv.Itoa(status.PID)))
				fmt.Fprintln(stdout, renderDetailLine("Root", status.Root))
				fmt.Fprintln(stdout, renderDetailLine("Videos", strconv.Itoa(status.Items)))
				fmt.Fprintln(stdout, renderDetailLine("Indexed", status.BuiltAt))
				return nil
			})
		},
	}
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Emit status as JSON")

	stopCmd := &cobra.Command{
		Use:   "stop",
		Short: "Ask the running server to shut down",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				msg, err := cl.Stop(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}

	reindexCmd := &cobra.Command{
		Use:   "reindex",
		Short: "Ask the running server to rescan its media root",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(cl *client.Client) error {
				msg, err := cl.Reindex(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msg)
				return nil
			})
		},
	}

	return []*cobra.Command{statusCmd, stopCmd, reindexCmd}
}
