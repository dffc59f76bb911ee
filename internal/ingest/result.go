// Package ingest imports a pitch data tree (roster, per-player season logs
// and stat lines) into Postgres for the pgstore source.
package ingest

import (
	"fmt"
	"sync"
)

// Result tracks counts and errors from an import run. Safe for concurrent
// use by the import workers.
type Result struct {
	mu sync.Mutex

	PlayersUpserted   int
	PitchLogsReplaced int
	PitchesCopied     int64
	StatLinesUpserted int
	StatLinesMissing  int
	Errors            []string
}

// AddPitchLog records one replaced season log.
func (r *Result) AddPitchLog(copied int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.PitchLogsReplaced++
	r.PitchesCopied += copied
}

// AddStatLine records one upserted (or missing) stat line.
func (r *Result) AddStatLine(found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if found {
		r.StatLinesUpserted++
	} else {
		r.StatLinesMissing++
	}
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the import.
func (r *Result) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf(
		"players=%d pitch_logs=%d pitches=%d stat_lines=%d stat_lines_missing=%d errors=%d",
		r.PlayersUpserted, r.PitchLogsReplaced, r.PitchesCopied,
		r.StatLinesUpserted, r.StatLinesMissing, len(r.Errors),
	)
}
