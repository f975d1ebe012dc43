// Package astar defines options, step events, results and sentinel errors
// for A* search over a gridgraph.Grid.
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by FindPath and Search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrInvalidEndpoints indicates that start or end is unset or Blocked.
	ErrInvalidEndpoints = errors.New("astar: start and end must be set and not blocked")

	// ErrCancelled indicates the caller's context was done before the search finished.
	// The context error is wrapped alongside it.
	ErrCancelled = errors.New("astar: search cancelled")

	// ErrExpansionLimit indicates WithMaxExpansions stopped the search.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is one cell-state transition emitted during a search.
// State is gridgraph.Open, gridgraph.Closed or gridgraph.Path.
type Step struct {
	Pos   gridgraph.Position
	State gridgraph.CellState
}

// StepFunc observes transitions. It runs synchronously on the search
// goroutine and must not mutate the grid.
type StepFunc func(Step)

// Result is the outcome of a search that ran to a terminal state.
//
//   - Found:    true if End was reached.
//   - Path:     Start → … → End inclusive; nil when Found is false.
//   - Cost:     number of unit moves on Path (len(Path)-1).
//   - Expanded: number of frontier entries popped, the goal included.
type Result struct {
	Path     []gridgraph.Position
	Found    bool
	Cost     int
	Expanded int
}

// Option configures FindPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and observers for one search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// OnStep observers, called in registration order for every transition.
	OnStep []StepFunc

	// MarkGrid writes transitions into the grid through Grid.Mark.
	MarkGrid bool

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many pops.
	MaxExpansions int

	// Logger receives debug records about search start and outcome.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no observers
//   - MarkGrid enabled
//   - no expansion limit
//   - a logger that discards output
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MarkGrid: true,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context used for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers an observer. May be given more than once.
// Observers run synchronously in registration order. The start and end
// cells keep their roles and never produce a Step: reaching end is
// reported through Result, not as an Open or Path step.
func WithOnStep(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = append(o.OnStep, fn)
		}
	}
}

// WithMarkGrid controls whether transitions are written into the grid.
// Observers are notified either way.
func WithMarkGrid(mark bool) Option {
	return func(o *Options) {
		o.MarkGrid = mark
	}
}

// WithMaxExpansions caps the number of frontier pops.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Manhattan returns |r1-r2| + |c1-c2|, the admissible and consistent
// heuristic for 4-directional unit-cost grids.
func Manhattan(a, b gridgraph.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
