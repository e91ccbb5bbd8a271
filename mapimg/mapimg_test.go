package mapimg_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapimg"
)

// encodeMap paints an 8×8 white PNG with black pixels at the given image
// coordinates and returns the encoded bytes.
func encodeMap(t *testing.T, obstacles []image.Point) []byte {
	t.Helper()
	const size = 8
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, p := range obstacles {
		img.Set(p.X, p.Y, color.Black)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode error: %v", err)
	}

	return buf.Bytes()
}

// TestDecode_GridAndPixels decodes a synthetic map and checks grid size, the
// display-space flip of one obstacle, and the retained pixel copy.
func TestDecode_GridAndPixels(t *testing.T) {
	// Image row 5 maps to search row 8−5 = 3.
	data := encodeMap(t, []image.Point{{X: 3, Y: 5}})

	m, err := mapimg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if m.Grid.Width != 8 || m.Grid.Height != 8 {
		t.Fatalf("grid size = %dx%d; want 8x8", m.Grid.Width, m.Grid.Height)
	}
	if m.Grid.Traversable(grid.Coord{Row: 3, Col: 3}) {
		t.Error("obstacle pixel at image (3,5) should block search cell (3,3)")
	}
	if !m.Grid.Traversable(grid.Coord{Row: 1, Col: 1}) {
		t.Error("white cell (1,1) should be traversable")
	}

	if m.Pixels == nil {
		t.Fatal("Decode returned nil Pixels")
	}
	if b := m.Pixels.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("pixel bounds = %v; want 8x8", b)
	}
	if r, g, bl, _ := m.Pixels.At(3, 5).RGBA(); r != 0 || g != 0 || bl != 0 {
		t.Error("pixel copy lost the obstacle at image (3,5)")
	}
}

// TestDecode_BadInput rejects non-image bytes with ErrDecode.
func TestDecode_BadInput(t *testing.T) {
	_, err := mapimg.Decode(strings.NewReader("definitely not a png"))
	if !errors.Is(err, mapimg.ErrDecode) {
		t.Errorf("Decode error = %v; want ErrDecode", err)
	}
}

// TestLoad_MissingFile surfaces the underlying open error.
func TestLoad_MissingFile(t *testing.T) {
	if _, err := mapimg.Load("testdata/does-not-exist.png"); err == nil {
		t.Error("Load of a missing file returned nil error")
	}
}
