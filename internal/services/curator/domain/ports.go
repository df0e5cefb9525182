// Package domain defines curator ports and types
package domain

import (
	"context"
	"time"
)

// RunnerPort is what cmd/internhub-curator drives
type RunnerPort interface {
	// Sweep closes postings whose applications closed before today
	Sweep(ctx context.Context) (SweepResult, error)

	// SeedFile creates the schema when absent and upserts a fixtures file by id
	SeedFile(ctx context.Context, path string) (int, error)

	// Schedule sweeps on the cron schedule until ctx is cancelled
	Schedule(ctx context.Context) error
}

// SweepResult reports one sweep
type SweepResult struct {
	Cutoff  time.Time `json:"cutoff"`
	Closed  int64     `json:"closed"`
	Skipped bool      `json:"skipped"` // another curator held the lease
	TookMS  int64     `json:"took_ms"`
}
