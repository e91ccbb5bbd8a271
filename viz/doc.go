// Package viz renders exploration results onto the source map image and
// encodes the animation as a GIF.
//
// The Animator replays a search.Result the way the exploration ran: each
// expanded cell is painted in pop order, then the reconstructed path is
// painted start→goal, with a frame captured every FrameStride painted
// cells and the final frame held on screen. Painting converts search-space
// rows through Grid.DisplayRow, since the image buffer keeps its
// bottom-left origin.
//
// Options:
//
//   - WithVisitedColor / WithPathColor: overlay colors.
//   - WithFrameStride(n): capture one frame per n painted cells.
//   - WithBorderWidth(n): frame each snapshot with an n-pixel border.
//
// WritePathText exports a path as one "row,col" line per coordinate.
package viz
