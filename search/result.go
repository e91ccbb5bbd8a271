package search

import "github.com/katalvlaran/gridpath/grid"

// Result is the outcome of one exploration. It retains the cost and parent
// grids for inspection and path reconstruction; it performs no mutation.
type Result struct {
	// State is the terminal state: Found or Exhausted.
	State State
	// Visited lists every popped-and-expanded coordinate in pop order,
	// the exploration log consumed by visualization collaborators. The
	// goal itself is popped but never expanded, so it does not appear.
	Visited []grid.Coord

	g           *grid.Grid
	start, goal grid.Coord
	cost        []float64
	parent      []int32
}

// Cost returns the finalized cost-to-come of c and whether c was ever
// reached during the search. Coordinates outside the grid report (0, false).
func (r *Result) Cost(c grid.Coord) (float64, bool) {
	if c.Row < 0 || c.Row >= r.g.Height || c.Col < 0 || c.Col >= r.g.Width {
		return 0, false
	}
	v := r.cost[r.g.Index(c)]
	if v == NoCost {
		return 0, false
	}

	return v, true
}

// PathCost returns the accumulated cost of the discovered start→goal path,
// or NoCost if the run ended Exhausted.
func (r *Result) PathCost() float64 {
	return r.cost[r.g.Index(r.goal)]
}

// Path reconstructs the discovered path by walking parent links from the
// goal, returning coordinates in goal-to-start order. When start == goal the
// path is the single coordinate start.
// Returns ErrUnreachable after an Exhausted run.
func (r *Result) Path() ([]grid.Coord, error) {
	idx := int32(r.g.Index(r.goal))
	if r.parent[idx] == noParent {
		return nil, ErrUnreachable
	}

	path := []grid.Coord{r.goal}
	for r.parent[idx] != startParent {
		idx = r.parent[idx]
		path = append(path, r.g.Coord(int(idx)))
	}

	return path, nil
}
