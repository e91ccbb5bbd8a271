// Package search implements single-source shortest-path exploration over an
// occupancy grid, with three strategies unified under one priority-driven
// loop: Uniform (Dijkstra), Weighted (approximate breadth-first), and
// Heuristic (A* with a Euclidean remaining-distance estimate).
//
// What:
//
//   - New validates the strategy and both endpoints eagerly, before any
//     search state exists.
//   - Run drives the frontier: pop the lowest-priority cell, stop when the
//     goal is popped, otherwise expand its 8 candidate moves, scoring each
//     newly discovered cell through the strategy's cost model.
//   - Result carries the terminal state (Found or Exhausted), the
//     exploration log in pop order, the per-cell cost-to-come, and
//     reconstructs the goal→start path by backtracking parent links.
//
// Cost model:
//
//   - Uniform:   priority = accumulated cost-to-come (classic Dijkstra).
//   - Heuristic: priority = cost-to-come + Euclidean distance to the goal
//     (admissible and consistent for unit/√2 step costs, so the first pop
//     of the goal is optimal).
//   - Weighted:  priority = a constant. Every frontier entry ties, so
//     ordering falls entirely to the frontier tie-break (row, then column).
//     This approximates breadth-first layering but is not true FIFO: a
//     low-row cell discovered late can pop before a high-row cell
//     discovered early. The tie-break is deliberate and deterministic.
//
// Bookkeeping uses dense sentinel grids sized to the map: a cost grid where
// NoCost marks "never reached", and a parent grid of flattened predecessor
// indices where noParent marks undiscovered cells and the start holds its
// own sentinel. A cell's cost is final once it pops (step costs are
// non-negative, so no later path can beat it) and rediscoveries are
// ignored: first discovery wins, there is no decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         nil grid passed to New.
//   - ErrUnknownStrategy: unrecognized Strategy value (raised at
//     construction, never mid-search).
//   - ErrBadEndpoint:     start or goal is out of bounds or occupied.
//   - ErrUnreachable:     Path called after an Exhausted run.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
package search
