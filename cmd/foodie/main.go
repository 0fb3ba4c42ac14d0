package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/foodie/internal/app"
	"github.com/five82/foodie/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "foodie: %v\n", err)
		return 1
	}
	return 0
}

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	demo       bool
	verbose    bool
}

func (o *globalOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	var (
		pollSeconds int
		prefsPath   string
	)

	cmd := &cobra.Command{
		Use:   "foodie",
		Short: "Manage your recipes from the terminal",
		Long: `foodie is a terminal recipe manager.

Without a subcommand it opens the interactive cookbook. Recipes live in a
local SQLite file or on a foodie server (backend = "remote" in config.toml).

Examples:
  foodie                        # Open the cookbook
  foodie --demo                 # Try it with sample recipes
  foodie serve                  # Share the local cookbook over HTTP
  foodie list --label dinner    # Print dinner recipes
  foodie logs -n 100            # Show recent log entries`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appOpts := app.Options{
				ConfigPath: opts.configPath,
				PrefsPath:  prefsPath,
				Demo:       opts.demo,
				Verbose:    opts.verbose,
			}
			if pollSeconds > 0 {
				appOpts.PollEvery = time.Duration(pollSeconds) * time.Second
			}
			return app.Run(cmd.Context(), appOpts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "override config path (optional)")
	cmd.PersistentFlags().BoolVar(&opts.demo, "demo", false, "use an in-memory sample cookbook")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().IntVar(&pollSeconds, "poll", 0, "refresh interval in seconds (optional, defaults to 2s)")
	cmd.Flags().StringVar(&prefsPath, "prefs", "", "override preferences path (optional)")

	cmd.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newLogsCmd(opts),
	)
	return cmd
}
