package seed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Runner executes plans against a catalog.
type Runner[C any] struct {
	catalog *Catalog[C]
	logger  *slog.Logger
}

// NewRunner creates a runner. A nil logger discards log output.
func NewRunner[C any](catalog *Catalog[C], logger *slog.Logger) *Runner[C] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner[C]{catalog: catalog, logger: logger}
}

// Report summarizes one completed seed run.
type Report struct {
	// RunToken is a UUIDv7 identifying the run; time-sortable, so log lines
	// from overlapping runs order naturally.
	RunToken string `json:"run_token"`

	// Plan is the executed plan's name.
	Plan string `json:"plan"`

	// Steps lists, in execution order, the instances each step created.
	Steps []StepReport `json:"steps"`

	// Created is the total number of root entities persisted. Associated
	// dependencies are not counted; the store may hold more rows.
	Created int `json:"created"`
}

// StepReport records one executed step.
type StepReport struct {
	Entity  string `json:"entity"`
	Created int    `json:"created"`
}

// UnknownEntityError reports a plan step naming an entity the catalog does
// not know.
type UnknownEntityError struct {
	Entity string
	Known  []string
}

// Error implements the error interface.
func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity %q (known: %s)", e.Entity, strings.Join(e.Known, ", "))
}

// StepError reports a persist failure during a seed run.
type StepError struct {
	// Index is the step's zero-based position in the plan.
	Index int

	// Entity is the step's entity name.
	Entity string

	// Instance is the zero-based index of the failing persist call within
	// the step.
	Instance int

	// Err is the persist failure, unmodified.
	Err error
}

// Error implements the error interface.
func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s, instance %d): %v", e.Index, e.Entity, e.Instance, e.Err)
}

// Unwrap returns the underlying persist error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Run executes every step of the plan in order against conn.
//
// The whole plan is resolved against the catalog before any write happens,
// so a typoed entity name fails the run without touching the store. The
// first persist failure aborts the run; rows written by earlier steps (and
// by earlier instances of the failing step) stay written.
func (r *Runner[C]) Run(ctx context.Context, conn C, plan *Plan) (*Report, error) {
	report := &Report{
		RunToken: uuid.Must(uuid.NewV7()).String(),
		Plan:     plan.Name,
	}

	logger := r.logger.With("run_token", report.RunToken, "plan", plan.Name)
	logger.Info("seed run starting", "steps", len(plan.Steps))

	// Resolve all entities up front.
	funcs := make([]SeedFunc[C], len(plan.Steps))
	for i, step := range plan.Steps {
		fn, ok := r.catalog.Lookup(step.Entity)
		if !ok {
			return nil, &UnknownEntityError{Entity: step.Entity, Known: r.catalog.Names()}
		}
		funcs[i] = fn
	}

	for i, step := range plan.Steps {
		for instance := 0; instance < step.Count; instance++ {
			if _, err := funcs[i](ctx, conn, step.Overrides); err != nil {
				logger.Error("seed step failed",
					"step", i,
					"entity", step.Entity,
					"instance", instance,
				)
				return nil, &StepError{
					Index:    i,
					Entity:   step.Entity,
					Instance: instance,
					Err:      err,
				}
			}
		}

		report.Steps = append(report.Steps, StepReport{Entity: step.Entity, Created: step.Count})
		report.Created += step.Count

		logger.Info("seed step completed",
			"step", i,
			"entity", step.Entity,
			"created", step.Count,
		)
	}

	logger.Info("seed run completed", "created", report.Created)
	return report, nil
}
