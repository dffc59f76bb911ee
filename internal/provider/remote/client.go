// Package remote fetches the roster and per-player season files over HTTP
// from a static data host that uses the same layout as the file source.
//
// Requests are paced by a token bucket limiter. Responses are cached and
// revalidated with If-None-Match once stale.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/pitchzone/internal/cache"
	"github.com/albapepper/pitchzone/internal/pitch"
	"github.com/albapepper/pitchzone/internal/provider"
	"github.com/albapepper/pitchzone/internal/provider/file"
)

// Client is the HTTP source.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	cache      *cache.Cache
	logger     *slog.Logger
}

// NewClient creates an HTTP source with rate limiting. c may be nil.
func NewClient(baseURL string, requestsPerMinute int, c *cache.Cache, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if c == nil {
		c = cache.New(false)
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 600
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 4),
		cache:      c,
		logger:     logger,
	}
}

// Roster implements provider.Source.
func (c *Client) Roster(ctx context.Context) ([]provider.Player, error) {
	body, err := c.get(ctx, "/"+file.RosterFile, cache.TTLRoster)
	if err != nil {
		return nil, err
	}
	var players []provider.Player
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return players, nil
}

// PitchLog implements provider.Source.
func (c *Client) PitchLog(ctx context.Context, playerID string, season int) ([]pitch.Row, error) {
	body, err := c.get(ctx, "/"+file.PitchLogName(playerID, season), cache.TTLPitchLog)
	if err != nil {
		return nil, err
	}
	return provider.ReadTable(bytes.NewReader(body))
}

// SeasonStats implements provider.Source.
func (c *Client) SeasonStats(ctx context.Context, playerID string, season int) (*provider.StatLine, error) {
	body, err := c.get(ctx, "/"+file.StatsName(playerID, season), cache.TTLStats)
	if err != nil {
		return nil, err
	}
	line, err := provider.ReadStatLine(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	line.PlayerID = playerID
	line.Season = season
	return line, nil
}

// get performs a rate-limited, cache-aware GET.
func (c *Client) get(ctx context.Context, path string, ttl time.Duration) ([]byte, error) {
	key := "remote:" + path
	if data, _, ok := c.cache.Get(key); ok {
		return data, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	stale, staleETag, haveStale := c.cache.Peek(key)
	if haveStale && staleETag != "" {
		req.Header.Set("If-None-Match", staleETag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified && haveStale:
		c.cache.SetWithETag(key, stale, staleETag, ttl)
		c.logger.Debug("Revalidated remote file", "path", path)
		return stale, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, provider.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("GET %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		etag = cache.ComputeETag(body)
	}
	c.cache.SetWithETag(key, body, etag, ttl)
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
