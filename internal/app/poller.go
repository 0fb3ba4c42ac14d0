package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/foodie/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the backend keeps failing. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, src state.Source, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	go func() {
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			refresh(ctx, store, src, logger)
			timer.Reset(calculateBackoff(store.Snapshot().ConsecutiveFailures, interval))
		}
	}()
}

// refresh fetches the cookbook once and records the result in store.
func refresh(ctx context.Context, store *state.Store, src state.Source, logger *zap.Logger) error {
	err := store.Refresh(ctx, src)
	if err != nil && ctx.Err() == nil {
		snap := store.Snapshot()
		logger.Warn("cookbook poll failed",
			zap.Int("consecutive_failures", snap.ConsecutiveFailures),
			zap.Error(err),
		)
	}
	return err
}

// calculateBackoff returns the wait before the next poll: base doubled for
// each consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for range failures {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
