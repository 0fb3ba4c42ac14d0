package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/foodie/internal/config"
	"github.com/five82/foodie/internal/logging"
	"github.com/five82/foodie/internal/prefs"
	"github.com/five82/foodie/internal/state"
	"github.com/five82/foodie/internal/ui"
)

// Options configure the foodie application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/foodie/prefs.toml
	PollEvery  time.Duration // zero uses default
	Demo       bool          // use the in-memory sample cookbook
	Verbose    bool
}

// Run boots the foodie TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	// The terminal belongs to the UI, so logs go to a file
	logger, err := logging.New(logging.Options{Path: cfg.LogPath(), Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	book, closeBook, err := OpenBook(ctx, cfg, opts.Demo)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBook(); err != nil {
			logger.Warn("close cookbook failed", zap.Error(err))
		}
	}()

	logger.Info("foodie starting",
		zap.String("backend", cfg.Backend),
		zap.String("source", book.Describe()),
		zap.Bool("demo", opts.Demo),
	)

	store := &state.Store{}

	interval := opts.PollEvery
	if interval <= 0 {
		interval = defaultPollInterval
	}

	// Do initial refresh to populate store before UI starts
	_ = refresh(ctx, store, book, logger)

	// Start background poller
	StartPoller(ctx, store, book, interval, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Book:      book,
		Store:     store,
		Logger:    logger,
		PollTick:  ui.DefaultUIInterval,
		ThemeName: userPrefs.Theme,
		Filter:    userPrefs.Filter,
		PrefsPath: prefsPath,
	}
	err = ui.Run(uiOpts)
	logger.Info("foodie stopped", zap.Error(err))
	return err
}
