package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/foodie/internal/app"
	"github.com/five82/foodie/internal/config"
	"github.com/five82/foodie/internal/logging"
	"github.com/five82/foodie/internal/server"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cookbook over HTTP",
		Long: `Serve the local cookbook over HTTP so other foodie instances can use it
with backend = "remote".

Examples:
  foodie serve                      # Listen on api_bind from config.toml
  foodie serve --addr 0.0.0.0:7488  # Listen on every interface
  foodie serve --demo               # Serve sample recipes from memory`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Backend == config.BackendRemote && !opts.demo {
				return errors.New(`serve needs backend = "local"`)
			}
			if addr == "" {
				addr = cfg.APIBind
			}

			logger, err := logging.New(logging.Options{Verbose: opts.verbose})
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			book, closeBook, err := app.OpenBook(cmd.Context(), cfg, opts.demo)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeBook(); err != nil {
					logger.Warn("close cookbook failed", zap.Error(err))
				}
			}()

			return server.New(book, logger).Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to api_bind)")
	return cmd
}
