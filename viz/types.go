// Package viz defines rendering options for exploration animations.
package viz

import "image/color"

// Options holds tunable parameters for an Animator.
type Options struct {
	// VisitedColor paints expanded cells. Default: light gray.
	VisitedColor color.Color
	// PathColor paints the reconstructed path. Default: blue.
	PathColor color.Color
	// FrameStride captures one animation frame per FrameStride painted
	// cells. Values < 1 are treated as 1.
	FrameStride int
	// BorderWidth, if > 0, frames every snapshot with a solid border of
	// that many pixels.
	BorderWidth int
	// Delay is the per-frame delay in hundredths of a second.
	Delay int
	// HoldDelay is the delay applied to the final frame, so the finished
	// exploration stays on screen.
	HoldDelay int
}

// Option is a functional option for configuring an Animator.
type Option func(*Options)

// DefaultOptions returns rendering defaults: gray visited cells, a blue
// path, one frame per 25 painted cells at 20 ms, and a 3 s final hold.
func DefaultOptions() Options {
	return Options{
		VisitedColor: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		PathColor:    color.RGBA{R: 0, G: 0, B: 255, A: 255},
		FrameStride:  25,
		BorderWidth:  0,
		Delay:        2,
		HoldDelay:    300,
	}
}

// WithVisitedColor sets the overlay color for expanded cells.
func WithVisitedColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.VisitedColor = c
		}
	}
}

// WithPathColor sets the overlay color for the reconstructed path.
func WithPathColor(c color.Color) Option {
	return func(o *Options) {
		if c != nil {
			o.PathColor = c
		}
	}
}

// WithFrameStride captures one frame per n painted cells. n < 1 is
// clamped to 1 (a frame for every cell).
func WithFrameStride(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.FrameStride = n
	}
}

// WithBorderWidth frames every snapshot with a border of n pixels.
func WithBorderWidth(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BorderWidth = n
		}
	}
}
