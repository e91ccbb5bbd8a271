// Package grid models a rectangular occupancy map as an immutable grid of
// free and occupied cells, together with the fixed move set used to walk it.
//
// What:
//
//   - Coord identifies a cell in search space (row-major, origin top-left).
//   - Grid answers the single traversability question the search engine
//     needs: is this cell inside the usable map area and free of obstacles?
//   - Moves enumerates the 8 candidate steps (4 axis-aligned at cost 1,
//     4 diagonal at cost √2) in a fixed order.
//
// Why:
//
//   - Robot/agent path planning over rasterized maps.
//   - Decoupling the search engine from the map's display conventions:
//     map images use a bottom-left origin, the search uses a top-left one,
//     and the flip between the two happens in exactly one place here.
//
// Coordinate spaces:
//
//	Search space is row-major with the origin at the top-left; display
//	space (the image buffer) has its origin at the bottom-left. The two are
//	related by DisplayRow (row ↦ height − row). FromImage applies the flip
//	while probing the source image; everything above this package reasons
//	purely in search space.
//
// The outermost one-cell ring of the map is always treated as blocked, so
// Traversable holds only inside [1, height−1) × [1, width−1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// Complexity: construction O(W×H); Traversable, Index, Coord O(1).
package grid
