package viz

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapimg"
	"github.com/katalvlaran/gridpath/search"
)

// Animator replays an exploration onto a working copy of the map pixels and
// accumulates GIF frames. One Animator records one result.
type Animator struct {
	m      *mapimg.MapImage
	opts   Options
	canvas *image.RGBA
	frames []*image.Paletted
	delays []int
	penUps int // painted cells since the last captured frame
}

// NewAnimator builds an Animator over m, drawing on a private copy of the
// map pixels.
func NewAnimator(m *mapimg.MapImage, opts ...Option) *Animator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := m.Pixels
	canvas := image.NewRGBA(src.Bounds())
	draw.Draw(canvas, canvas.Bounds(), src, src.Bounds().Min, draw.Src)

	return &Animator{m: m, opts: o, canvas: canvas}
}

// Record paints the exploration log in pop order and then, when the goal
// was found, the reconstructed path from start to goal, capturing frames
// along the way. After an Exhausted run only the exploration is painted.
func (a *Animator) Record(res *search.Result) error {
	for _, c := range res.Visited {
		a.paint(c, a.opts.VisitedColor)
	}

	path, err := res.Path()
	switch {
	case errors.Is(err, search.ErrUnreachable):
		// Nothing to trace; hold the explored map.
	case err != nil:
		return fmt.Errorf("viz: reconstructing path: %w", err)
	default:
		// Path arrives goal→start; the animation traces it from the
		// start outward.
		for i := len(path) - 1; i >= 0; i-- {
			a.paint(path[i], a.opts.PathColor)
		}
	}

	a.capture(a.opts.HoldDelay)

	return nil
}

// paint colors one search-space cell on the canvas, flipping the row into
// the image buffer's display space, and captures a frame on stride.
func (a *Animator) paint(c grid.Coord, col color.Color) {
	a.canvas.Set(c.Col, a.m.Grid.DisplayRow(c.Row), col)
	a.penUps++
	if a.penUps >= a.opts.FrameStride {
		a.capture(a.opts.Delay)
	}
}

// capture snapshots the canvas (bordered if configured) into a paletted
// frame with the given delay.
func (a *Animator) capture(delay int) {
	var src image.Image = a.canvas
	if a.opts.BorderWidth > 0 {
		src = image_utils.AddImageBorder(src, color.White, a.opts.BorderWidth)
	}

	b := src.Bounds()
	frame := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	draw.Draw(frame, frame.Bounds(), src, b.Min, draw.Src)

	a.frames = append(a.frames, frame)
	a.delays = append(a.delays, delay)
	a.penUps = 0
}

// WriteGIF encodes the accumulated frames as an animated GIF. At least one
// frame exists after Record (the held final frame).
func (a *Animator) WriteGIF(w io.Writer) error {
	if len(a.frames) == 0 {
		a.capture(a.opts.HoldDelay)
	}

	anim := &gif.GIF{Image: a.frames, Delay: a.delays}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("viz: encoding gif: %w", err)
	}

	return nil
}

// WritePathText writes one "row,col" line per coordinate, in the order
// given. Callers wanting start→goal order should reverse a reconstructed
// path first.
func WritePathText(w io.Writer, path []grid.Coord) error {
	bw := bufio.NewWriter(w)
	for _, c := range path {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", c.Row, c.Col); err != nil {
			return fmt.Errorf("viz: writing path: %w", err)
		}
	}

	return bw.Flush()
}
