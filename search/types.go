// Package search defines strategies, options, sentinels, and errors for
// grid exploration.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the search package.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	// It is raised at construction: discovering it mid-search would leave
	// partially built state behind.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrBadEndpoint indicates the start or goal coordinate is out of
	// bounds or lies inside an obstacle.
	ErrBadEndpoint = errors.New("search: endpoint is not traversable")

	// ErrUnreachable indicates path reconstruction was attempted after the
	// frontier emptied without the goal being popped.
	ErrUnreachable = errors.New("search: goal unreachable")
)

// Strategy selects the cost-model branch of the exploration loop.
type Strategy int

const (
	// Uniform orders the frontier by accumulated cost-to-come (Dijkstra).
	Uniform Strategy = iota
	// Weighted gives every entry one constant priority, degenerating the
	// frontier into its coordinate tie-break (approximate breadth-first).
	Weighted
	// Heuristic orders by cost-to-come plus Euclidean distance to goal (A*).
	Heuristic
)

// String returns the lowercase strategy name.
func (s Strategy) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case Weighted:
		return "weighted"
	case Heuristic:
		return "heuristic"
	}

	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps a strategy name (as accepted on CLI and HTTP surfaces)
// to its Strategy value. Returns ErrUnknownStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "uniform":
		return Uniform, nil
	case "weighted":
		return Weighted, nil
	case "heuristic":
		return Heuristic, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// State is the terminal (or pre-run) state of an exploration.
type State int

const (
	// Ready means Run has not been called yet.
	Ready State = iota
	// Found means the goal was popped from the frontier.
	Found
	// Exhausted means the frontier emptied before the goal was popped.
	Exhausted
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	}

	return fmt.Sprintf("state(%d)", int(s))
}

// NoCost is the cost-grid sentinel meaning "never reached". All real
// accumulated costs are ≥ 0.
const NoCost = float64(-1)

// Parent-grid sentinels. Real entries hold the flattened row-major index of
// the cell's expanding predecessor.
const (
	noParent    = int32(-1) // cell has never been pushed to the frontier
	startParent = int32(-2) // cell is the search origin
)

// weightedPriority is the constant every Weighted-mode frontier entry
// shares; its value is irrelevant because ordering is fully delegated to
// the coordinate tie-break.
const weightedPriority = 0.0

// Options holds tunable parameters for an exploration.
type Options struct {
	// OnSettle, if set, is called for each coordinate as it is popped from
	// the frontier and expanded, in pop order.
	OnSettle func(grid.Coord)
}

// Option is a functional option for configuring an Explorer.
type Option func(*Options)

// DefaultOptions returns an Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnSettle: func(grid.Coord) {}}
}

// WithOnSettle registers a callback invoked for every expanded coordinate,
// in pop order. Useful for streaming visualizations and instrumentation.
func WithOnSettle(fn func(grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}
