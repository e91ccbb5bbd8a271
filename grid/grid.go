package grid

import "image"

// From2D constructs a Grid from a non-empty, rectangular 2D slice already in
// search space, where true marks an occupied cell. It deep-copies the input
// to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func From2D(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	occupied := make([]bool, h*w)
	for y, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(occupied[y*w:(y+1)*w], row)
	}

	return &Grid{Width: w, Height: h, occupied: occupied}, nil
}

// FromImage constructs a Grid by probing an obstacle-map image. A pixel is
// occupied exactly when all of its color channels are zero; any other value
// is free space. The image uses a bottom-left origin, so each search-space
// row is read from image row DisplayRow(row); this is the single place the
// display-space flip is applied.
// Row 0 is never probed: it lies on the always-blocked border ring and its
// mirror (image row Height) is outside the buffer.
// Complexity: O(W×H).
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds().Canon()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{Width: w, Height: h, occupied: make([]bool, w*h)}
	for row := 1; row < h; row++ {
		imgY := bounds.Min.Y + g.DisplayRow(row)
		for col := 0; col < w; col++ {
			r, gr, b, _ := img.At(bounds.Min.X+col, imgY).RGBA()
			g.occupied[row*w+col] = r == 0 && gr == 0 && b == 0
		}
	}
	// The unprobed top row sits on the blocked ring; mark it for consistency.
	for col := 0; col < w; col++ {
		g.occupied[col] = true
	}

	return g, nil
}

// DisplayRow converts a search-space row to its display-space (image buffer)
// row: height − row. It is the only coordinate-space conversion in the
// module; callers that draw onto the source image must route through it.
func (g *Grid) DisplayRow(row int) int {
	return g.Height - row
}

// Traversable reports whether c is a valid cell for the search to occupy:
// inside [1, Height−1) × [1, Width−1) (the outermost one-cell ring is always
// blocked) and not occupied. Pure query, O(1).
func (g *Grid) Traversable(c Coord) bool {
	if c.Row < 1 || c.Row >= g.Height-1 || c.Col < 1 || c.Col >= g.Width-1 {
		return false
	}

	return !g.occupied[c.Row*g.Width+c.Col]
}

// Index maps a coordinate to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.Width + c.Col
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Coord(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}

// Cells returns the total number of cells, Width×Height.
func (g *Grid) Cells() int {
	return g.Width * g.Height
}
