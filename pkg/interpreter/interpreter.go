package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/parser"
	"github.com/egarof00/PLGroup/pkg/printer"
	"github.com/egarof00/PLGroup/pkg/runtime"
)

// Interpreter reduces terms to normal form (or as far as reduction can go).
// It holds configuration only; all per-evaluation state lives in a
// runtime.Run created for each call.
type Interpreter struct {
	logger    *slog.Logger
	stepLimit uint64
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger routes evaluation diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithStepLimit bounds the number of reduction steps per evaluation. Zero
// leaves evaluation unbounded.
func WithStepLimit(limit uint64) Option {
	return func(i *Interpreter) {
		i.stepLimit = limit
	}
}

// New returns an interpreter. Without options it is silent and unbounded.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Evaluate reduces term with a fresh run context.
func (i *Interpreter) Evaluate(term ast.Term) (ast.Term, error) {
	if term == nil {
		return nil, fmt.Errorf("evaluate: nil term")
	}
	run := runtime.NewRun(i.stepLimit)
	result, err := i.evaluate(term, run)
	attrs := []any{"run_id", run.ID, "steps", run.Steps(), "step_limit", run.Limit(), "fresh_names", run.Names.Issued()}
	if err != nil {
		var illFormed *IllFormedOperationError
		switch {
		case errors.As(err, &illFormed):
			i.logger.Warn("ill-formed operation", append(attrs, "op", illFormed.Op, "error", err)...)
		case errors.Is(err, ErrStepLimit):
			i.logger.Warn("evaluation aborted", append(attrs, "error", err)...)
		}
		return nil, err
	}
	if i.logger.Enabled(context.Background(), slog.LevelDebug) {
		attrs = append(attrs, "value", ast.IsValue(result), "free", ast.SortedFreeVars(result))
	}
	i.logger.Debug("evaluation finished", attrs...)
	return result, nil
}

// EvaluateSource parses src and evaluates the resulting term.
func (i *Interpreter) EvaluateSource(src string) (ast.Term, error) {
	term, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return i.Evaluate(term)
}

// EvaluateAndRender parses, evaluates, and renders src.
func (i *Interpreter) EvaluateAndRender(src string) (string, error) {
	result, err := i.EvaluateSource(src)
	if err != nil {
		return "", err
	}
	return printer.Render(result), nil
}
