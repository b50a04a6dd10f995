package runtime

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrStepLimit is returned once a run exceeds its configured step budget.
var ErrStepLimit = errors.New("step limit exceeded")

// Run carries the state of one top-level evaluation. A Run is never shared
// between evaluations, so fresh names and step counts do not leak across runs.
type Run struct {
	ID    string
	Names *NameGenerator

	limit uint64
	steps uint64
}

// NewRun creates evaluation state with the given step budget (0 means unbounded).
func NewRun(stepLimit uint64) *Run {
	return &Run{
		ID:    uuid.NewString(),
		Names: NewNameGenerator(),
		limit: stepLimit,
	}
}

// Step records one reduction step.
func (r *Run) Step() error {
	r.steps++
	if r.limit > 0 && r.steps > r.limit {
		return fmt.Errorf("%w (%d)", ErrStepLimit, r.limit)
	}
	return nil
}

// Steps returns the number of reduction steps taken so far.
func (r *Run) Steps() uint64 {
	return r.steps
}

// Limit returns the configured step budget.
func (r *Run) Limit() uint64 {
	return r.limit
}
