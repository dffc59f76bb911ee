// Package listener provides a Postgres LISTEN/NOTIFY consumer that keeps the
// API's cached responses in step with `pitchctl import`. It holds a dedicated
// pgx connection (not from the pool) listening on ingest.NotifyChannel.
//
// Sessions are not touched: a dataset already loaded into a session stays
// as it was loaded. Only responses served from the cache are dropped.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/ingest"
)

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// Invalidator is implemented by *cache.Cache.
type Invalidator interface {
	Delete(key string)
}

// Start opens a dedicated connection and listens for replaced pitch logs.
// It reconnects automatically on connection loss. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, inv Invalidator, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, inv, logger)
		if ctx.Err() != nil {
			logger.Info("Pitch log listener stopped (context cancelled)")
			return
		}

		logger.Error("Pitch log listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, inv Invalidator, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	_, err = conn.Exec(ctx, "LISTEN "+pgx.Identifier{ingest.NotifyChannel}.Sanitize())
	if err != nil {
		return fmt.Errorf("LISTEN %s: %w", ingest.NotifyChannel, err)
	}
	logger.Info("Pitch log listener connected", "channel", ingest.NotifyChannel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		handlePayload(notification.Payload, inv, logger)
	}
}

// handlePayload drops the cached responses derived from the replaced log.
// It reports whether the payload was understood.
func handlePayload(payload string, inv Invalidator, logger *slog.Logger) bool {
	var event ingest.PitchLogEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil || event.PlayerID == "" {
		logger.Warn("Failed to parse pitch log event", "payload", payload, "error", err)
		return false
	}

	inv.Delete(cache.PitchTypesKey(event.Season, event.PlayerID))
	logger.Info("Pitch log replaced",
		"player_id", event.PlayerID,
		"season", event.Season,
		"pitches", event.Pitches)
	return true
}
