// Package maintenance runs periodic background tasks as Go tickers: idle
// session reaping and a periodic status line.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	ReapInterval   time.Duration // Sweep for idle sessions
	SessionIdle    time.Duration // Sessions untouched this long are closed
	StatusInterval time.Duration // Log session and cache counts
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig(sessionIdle time.Duration) Config {
	return Config{
		ReapInterval:   5 * time.Minute,
		SessionIdle:    sessionIdle,
		StatusInterval: 30 * time.Minute,
	}
}

// Sessions is implemented by *view.Registry.
type Sessions interface {
	Reap(idle time.Duration) int
	Len() int
}

// CacheStats is implemented by *cache.Cache.
type CacheStats interface {
	Stats() map[string]interface{}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, sessions Sessions, c CacheStats, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"reap", cfg.ReapInterval,
		"session_idle", cfg.SessionIdle,
		"status", cfg.StatusInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Reap: close sessions nobody has touched for SessionIdle
	if cfg.ReapInterval > 0 && cfg.SessionIdle > 0 {
		t := time.NewTicker(cfg.ReapInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { reapSessions(sessions, cfg.SessionIdle, logger) })
	}

	// Status: one line with live counts
	if cfg.StatusInterval > 0 {
		t := time.NewTicker(cfg.StatusInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { logStatus(sessions, c, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

func reapSessions(sessions Sessions, idle time.Duration, logger *slog.Logger) int {
	n := sessions.Reap(idle)
	if n > 0 {
		logger.Info("Reaped idle sessions", "count", n, "remaining", sessions.Len())
	}
	return n
}

func logStatus(sessions Sessions, c CacheStats, logger *slog.Logger) {
	attrs := []any{"sessions", sessions.Len()}
	if c != nil {
		stats := c.Stats()
		attrs = append(attrs, "cache_active", stats["active_keys"], "cache_expired", stats["expired_keys"])
	}
	logger.Info("Status", attrs...)
}
