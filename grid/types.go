// Package grid defines core types and sentinel errors for occupancy grids.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Coord identifies a grid cell in search space: row-major, origin top-left.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by the delta d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Less orders coordinates by row, then column. The search frontier uses it
// as the deterministic tie-break between entries of equal priority.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}

	return c.Col < o.Col
}

// Move is one candidate step: a coordinate delta and its traversal cost.
type Move struct {
	Delta Coord
	Cost  float64
}

// moveSet lists the 8 candidate steps in fixed order: the four axis-aligned
// moves at unit cost first, then the four diagonal moves at cost √2.
// Downstream ordering (frontier insertion, exploration logs) depends on this
// order being stable.
var moveSet = [8]Move{
	{Delta: Coord{Row: -1, Col: 0}, Cost: 1},
	{Delta: Coord{Row: 1, Col: 0}, Cost: 1},
	{Delta: Coord{Row: 0, Col: -1}, Cost: 1},
	{Delta: Coord{Row: 0, Col: 1}, Cost: 1},
	{Delta: Coord{Row: -1, Col: -1}, Cost: math.Sqrt2},
	{Delta: Coord{Row: -1, Col: 1}, Cost: math.Sqrt2},
	{Delta: Coord{Row: 1, Col: -1}, Cost: math.Sqrt2},
	{Delta: Coord{Row: 1, Col: 1}, Cost: math.Sqrt2},
}

// Moves returns the fixed, ordered set of candidate steps.
func Moves() [8]Move {
	return moveSet
}

// Grid is an immutable dense occupancy grid in search space.
// occupied is row-major: occupied[row*Width+col] reports an obstacle cell.
type Grid struct {
	Width, Height int
	occupied      []bool
}
