package viz_test

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapimg"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/viz"
)

// whiteMap builds an in-memory map: a grid from cells plus a matching white
// pixel buffer.
func whiteMap(t *testing.T, cells [][]bool) *mapimg.MapImage {
	t.Helper()
	g, err := grid.From2D(cells)
	require.NoError(t, err)

	px := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			px.Set(x, y, color.White)
		}
	}

	return &mapimg.MapImage{Grid: g, Pixels: px}
}

func openCells(size int) [][]bool {
	cells := make([][]bool, size)
	for y := range cells {
		cells[y] = make([]bool, size)
	}

	return cells
}

// TestRecord_FrameAccounting records a found run at stride 1 and checks the
// encoded GIF frame-for-frame: one frame per painted cell plus the held
// final frame, with the hold delay on the last one.
func TestRecord_FrameAccounting(t *testing.T) {
	m := whiteMap(t, openCells(8))
	e, err := search.New(m.Grid, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 5, Col: 5}, search.Uniform)
	require.NoError(t, err)
	res := e.Run()
	require.Equal(t, search.Found, res.State)
	path, err := res.Path()
	require.NoError(t, err)

	anim := viz.NewAnimator(m, viz.WithFrameStride(1))
	require.NoError(t, anim.Record(res))

	var buf bytes.Buffer
	require.NoError(t, anim.WriteGIF(&buf))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)

	wantFrames := len(res.Visited) + len(path) + 1
	assert.Len(t, decoded.Image, wantFrames)
	require.Len(t, decoded.Delay, wantFrames)
	assert.Equal(t, viz.DefaultOptions().HoldDelay, decoded.Delay[wantFrames-1])

	// The start cell was painted; in display space row 1 lands near the
	// bottom of the 8-pixel buffer.
	last := decoded.Image[wantFrames-1]
	r, g, b, _ := last.At(1, m.Grid.DisplayRow(1)).RGBA()
	assert.False(t, r == 0xffff && g == 0xffff && b == 0xffff,
		"start cell still white in the final frame")
}

// TestRecord_Exhausted still produces a held frame when no path exists.
func TestRecord_Exhausted(t *testing.T) {
	cells := openCells(7)
	for row := 1; row <= 5; row++ {
		cells[row][3] = true
	}
	m := whiteMap(t, cells)

	e, err := search.New(m.Grid, grid.Coord{Row: 3, Col: 1}, grid.Coord{Row: 3, Col: 5}, search.Uniform)
	require.NoError(t, err)
	res := e.Run()
	require.Equal(t, search.Exhausted, res.State)

	anim := viz.NewAnimator(m)
	require.NoError(t, anim.Record(res))

	var buf bytes.Buffer
	require.NoError(t, anim.WriteGIF(&buf))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	assert.NotEmpty(t, decoded.Image)
}

// TestRecord_Border grows every frame by the configured border width.
func TestRecord_Border(t *testing.T) {
	m := whiteMap(t, openCells(8))
	e, err := search.New(m.Grid, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 3, Col: 3}, search.Heuristic)
	require.NoError(t, err)

	anim := viz.NewAnimator(m, viz.WithBorderWidth(2))
	require.NoError(t, anim.Record(e.Run()))

	var buf bytes.Buffer
	require.NoError(t, anim.WriteGIF(&buf))

	decoded, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.NotEmpty(t, decoded.Image)
	b := decoded.Image[0].Bounds()
	assert.Equal(t, 12, b.Dx(), "8 px canvas plus a 2 px border on each side")
	assert.Equal(t, 12, b.Dy())
}

// TestNewAnimator_PrivateCanvas: painting must not touch the caller's pixels.
func TestNewAnimator_PrivateCanvas(t *testing.T) {
	m := whiteMap(t, openCells(8))
	e, err := search.New(m.Grid, grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 5, Col: 5}, search.Uniform)
	require.NoError(t, err)

	anim := viz.NewAnimator(m)
	require.NoError(t, anim.Record(e.Run()))

	r, g, b, _ := m.Pixels.At(1, m.Grid.DisplayRow(1)).RGBA()
	assert.True(t, r == 0xffff && g == 0xffff && b == 0xffff,
		"source pixels were mutated by Record")
}

// TestWritePathText pins the row,col line format.
func TestWritePathText(t *testing.T) {
	path := []grid.Coord{{Row: 3, Col: 3}, {Row: 2, Col: 2}, {Row: 1, Col: 1}}

	var buf bytes.Buffer
	require.NoError(t, viz.WritePathText(&buf, path))
	assert.Equal(t, "3,3\n2,2\n1,1\n", buf.String())
}
