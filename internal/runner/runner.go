// Package runner orchestrates prompt execution: batch resolution, handoff
// to the host runtime, and archival of completed prompts.
package runner

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/promptq/internal/core/prompt"
)

// Result statuses.
const (
	StatusCompleted = "completed" // executed and archived
	StatusFailed    = "failed"    // execution or archival failed; file left pending
	StatusSkipped   = "skipped"   // not attempted after an earlier failure
)

// Result reports the outcome for one prompt in a run.
type Result struct {
	Filename   string `json:"filename"`
	Status     string `json:"status"`
	ArchivedTo string `json:"archived_to,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Runner executes batches of prompts against a Host.
type Runner struct {
	store  *prompt.Store
	host   Host
	logger zerolog.Logger
}

// New creates a runner over the given store and host.
func New(store *prompt.Store, host Host, logger zerolog.Logger) *Runner {
	return &Runner{store: store, host: host, logger: logger}
}

// Run resolves every token, reads every body, and only then begins
// execution. Resolution is all-or-nothing: one bad token aborts the batch
// before any execution or archival side effect.
//
// Sequential mode executes and archives one prompt at a time and stops at
// the first failure, marking the remainder skipped. Parallel mode performs
// a single batched handoff; the host schedules the prompts itself, and
// archival happens only after the whole handoff succeeds.
func (r *Runner) Run(ctx context.Context, tokens []string, parallel bool) ([]Result, error) {
	records, err := r.store.ResolveAll(tokens)
	if err != nil {
		return nil, err
	}

	// Read all bodies up front; a vanished file aborts before execution.
	handoffs := make([]Handoff, 0, len(records))
	for _, rec := range records {
		body, err := r.store.Read(rec)
		if err != nil {
			return nil, err
		}
		handoffs = append(handoffs, Handoff{Path: rec.Path, Body: body})
	}

	if parallel {
		return r.runParallel(ctx, records, handoffs)
	}
	return r.runSequential(ctx, records, handoffs)
}

func (r *Runner) runSequential(ctx context.Context, records []prompt.Record, handoffs []Handoff) ([]Result, error) {
	results := make([]Result, 0, len(records))

	for i, rec := range records {
		r.logger.Info().Str("file", rec.Filename).Msg("executing prompt")

		if err := r.host.Execute(ctx, handoffs[i]); err != nil {
			r.logger.Error().Err(err).Str("file", rec.Filename).Msg("prompt execution failed")
			results = append(results, Result{Filename: rec.Filename, Status: StatusFailed, Error: err.Error()})
			results = append(results, skipRemaining(records[i+1:])...)
			return results, fmt.Errorf("execute %s: %w", rec.Filename, err)
		}

		dest, err := r.store.Archive(rec.Filename)
		if err != nil {
			r.logger.Error().Err(err).Str("file", rec.Filename).Msg("archive failed")
			results = append(results, Result{Filename: rec.Filename, Status: StatusFailed, Error: err.Error()})
			results = append(results, skipRemaining(records[i+1:])...)
			return results, fmt.Errorf("archive %s: %w", rec.Filename, err)
		}

		r.logger.Info().Str("file", rec.Filename).Str("archived_to", dest).Msg("prompt completed")
		results = append(results, Result{Filename: rec.Filename, Status: StatusCompleted, ArchivedTo: dest})
	}

	return results, nil
}

func (r *Runner) runParallel(ctx context.Context, records []prompt.Record, handoffs []Handoff) ([]Result, error) {
	r.logger.Info().Int("count", len(records)).Msg("batched host handoff")

	if err := r.host.ExecuteBatch(ctx, handoffs); err != nil {
		results := make([]Result, 0, len(records))
		for _, rec := range records {
			results = append(results, Result{Filename: rec.Filename, Status: StatusFailed, Error: err.Error()})
		}
		return results, fmt.Errorf("batch handoff: %w", err)
	}

	results := make([]Result, 0, len(records))
	var firstErr error
	for _, rec := range records {
		dest, err := r.store.Archive(rec.Filename)
		if err != nil {
			// Keep archiving the rest; the handoff already succeeded and
			// the other files should not stay pending because of this one.
			r.logger.Error().Err(err).Str("file", rec.Filename).Msg("archive failed")
			results = append(results, Result{Filename: rec.Filename, Status: StatusFailed, Error: err.Error()})
			if firstErr == nil {
				firstErr = fmt.Errorf("archive %s: %w", rec.Filename, err)
			}
			continue
		}
		results = append(results, Result{Filename: rec.Filename, Status: StatusCompleted, ArchivedTo: dest})
	}

	return results, firstErr
}

func skipRemaining(records []prompt.Record) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		results = append(results, Result{Filename: rec.Filename, Status: StatusSkipped})
	}
	return results
}
