package mapimg

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoding for image.Decode
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrDecode indicates the input could not be decoded as an image.
var ErrDecode = errors.New("mapimg: unable to decode map image")

// MapImage pairs the decoded occupancy grid with the source pixels.
type MapImage struct {
	// Grid is the occupancy view the search engine consumes.
	Grid *grid.Grid
	// Pixels is an RGBA copy of the source image, retained so renderers
	// can overlay exploration state without re-reading the file.
	Pixels *image.RGBA
}

// Decode reads one map image from r and builds its occupancy grid.
func Decode(r io.Reader) (*MapImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	g, err := grid.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("mapimg: building occupancy grid: %w", err)
	}

	return &MapImage{Grid: g, Pixels: image_utils.ToRGBA(img)}, nil
}

// Load opens and decodes the map image at path.
func Load(path string) (*MapImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapimg: opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
