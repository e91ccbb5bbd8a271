package search

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// Explorer owns the mutable state of one exploration: the cost and parent
// grids, the frontier, and the exploration log. One Explorer serves exactly
// one Run; it must not be shared across goroutines.
type Explorer struct {
	g           *grid.Grid
	start, goal grid.Coord
	strategy    Strategy
	opts        Options

	cost    []float64    // best known cost-to-come per cell, NoCost = unreached
	parent  []int32      // flattened predecessor index per cell, see sentinels
	visited []grid.Coord // exploration log, pop order
	pq      frontier

	res *Result
}

// New builds an Explorer for the given grid, endpoints, and strategy.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. strategy must be one of Uniform, Weighted, Heuristic
//     (ErrUnknownStrategy).
//  3. start and goal must both be traversable (ErrBadEndpoint).
//
// Validation is eager: no per-cell state is allocated until it passes.
func New(g *grid.Grid, start, goal grid.Coord, strategy Strategy, opts ...Option) (*Explorer, error) {
	// 1) Validate the grid.
	if g == nil {
		return nil, ErrNilGrid
	}

	// 2) Validate the strategy before anything else is built.
	switch strategy {
	case Uniform, Weighted, Heuristic:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}

	// 3) Validate both endpoints.
	if !g.Traversable(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrBadEndpoint, start.Row, start.Col)
	}
	if !g.Traversable(goal) {
		return nil, fmt.Errorf("%w: goal (%d,%d)", ErrBadEndpoint, goal.Row, goal.Col)
	}

	// 4) Apply functional options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 5) Allocate the dense grids, initialized to their sentinels.
	n := g.Cells()
	cost := make([]float64, n)
	for i := range cost {
		cost[i] = NoCost
	}
	parent := make([]int32, n)
	for i := range parent {
		parent[i] = noParent
	}

	return &Explorer{
		g:        g,
		start:    start,
		goal:     goal,
		strategy: strategy,
		opts:     o,
		cost:     cost,
		parent:   parent,
		pq:       make(frontier, 0, n/4),
	}, nil
}

// Run executes the exploration to its terminal state and returns the
// Result. Calling Run again returns the same Result; the grids are consumed
// by one search and are not reinitialized.
func (e *Explorer) Run() *Result {
	if e.res != nil {
		return e.res
	}

	// Seed: the start has cost 0, the start sentinel as parent, and one
	// frontier entry. Every later push follows the same discipline: cost
	// and parent are set before the push.
	e.cost[e.g.Index(e.start)] = 0
	e.parent[e.g.Index(e.start)] = startParent
	heap.Init(&e.pq)
	heap.Push(&e.pq, frontierItem{priority: e.priority(e.start, 0), coord: e.start})

	state := Exhausted
	for e.pq.Len() > 0 {
		item := heap.Pop(&e.pq).(frontierItem)
		n := item.coord

		// Goal pop terminates the search; its cost and parent were
		// finalized when it was discovered.
		if n == e.goal {
			state = Found
			break
		}

		e.expand(n)
	}

	e.res = &Result{
		State:   state,
		Visited: e.visited,
		g:       e.g,
		start:   e.start,
		goal:    e.goal,
		cost:    e.cost,
		parent:  e.parent,
	}

	return e.res
}

// expand logs n, then generates its candidate successors. A candidate is
// discovered at most once: the first expansion to reach it fixes its cost
// and parent. There is no decrease-key on rediscovery; with non-negative
// step costs and a monotone frontier, the first discovery from a popped
// cell is never beaten for the orderings used here.
func (e *Explorer) expand(n grid.Coord) {
	e.visited = append(e.visited, n)
	e.opts.OnSettle(n)

	base := e.cost[e.g.Index(n)]
	from := int32(e.g.Index(n))
	for _, m := range grid.Moves() {
		candidate := n.Add(m.Delta)
		if !e.g.Traversable(candidate) {
			continue
		}
		idx := e.g.Index(candidate)
		if e.parent[idx] != noParent {
			continue // already discovered; first discovery wins
		}
		newCost := base + m.Cost
		e.cost[idx] = newCost
		e.parent[idx] = from
		heap.Push(&e.pq, frontierItem{priority: e.priority(candidate, newCost), coord: candidate})
	}
}

// priority computes the frontier ordering value for a candidate with the
// given accumulated cost-to-come, per the configured strategy. The strategy
// is validated in New, so the switch is exhaustive at runtime.
func (e *Explorer) priority(c grid.Coord, accumulated float64) float64 {
	switch e.strategy {
	case Uniform:
		return accumulated
	case Weighted:
		return weightedPriority
	case Heuristic:
		return accumulated + euclidean(c, e.goal)
	}

	panic("search: unvalidated strategy")
}

// euclidean is the straight-line distance between two cells, an admissible
// and consistent heuristic for unit/√2 step costs.
func euclidean(a, b grid.Coord) float64 {
	dr := float64(a.Row - b.Row)
	dc := float64(a.Col - b.Col)

	return math.Sqrt(dr*dr + dc*dc)
}

// frontierItem pairs a priority value with a coordinate.
type frontierItem struct {
	priority float64
	coord    grid.Coord
}

// frontier is a min-heap of frontierItem, ordered by ascending priority,
// ties broken by coordinate (row, then column). Weighted mode's pop order
// is entirely defined by the tie-break.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].coord.Less(f[j].coord)
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap. Called by heap.Push; x must be a frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
