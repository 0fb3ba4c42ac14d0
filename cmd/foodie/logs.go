package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/foodie/internal/logtail"
)

func newLogsCmd(opts *globalOptions) *cobra.Command {
	var (
		lines int
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log entries",
		Long: `Show the tail of the foodie log file (log_dir in config.toml).

Examples:
  foodie logs          # Last 50 entries
  foodie logs -n 0     # Every entry
  foodie logs --raw    # Original JSON lines`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			path := cfg.LogPath()
			entries, err := logtail.Read(path, lines)
			if err != nil {
				return fmt.Errorf("read log %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintf(out, "No log entries in %s\n", path)
				return err
			}
			for _, line := range entries {
				if !raw {
					line = logtail.Format(line)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of entries to show (0 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the JSON lines as written")
	return cmd
}
