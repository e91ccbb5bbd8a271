// Package mapimg decodes obstacle-map images into occupancy grids.
//
// A map image encodes free space as any non-black pixel and obstacles as
// fully black pixels (all color channels zero). Decode produces both the
// search-ready *grid.Grid and an RGBA copy of the source pixels, which
// rendering collaborators draw exploration overlays onto.
//
// Errors:
//
//   - ErrDecode: the reader does not contain a decodable image.
//
// PNG support is registered by default; callers may blank-import additional
// image formats.
package mapimg
