// Package gridpath is a single-source shortest-path toolkit for 2-D
// occupancy grids decoded from map images.
//
// 🚀 What is gridpath?
//
//	A small, deterministic exploration engine that brings together:
//		• Occupancy grids: image → obstacle grid with a fixed display-space flip
//		• Eight-direction movement: unit axis steps, √2 diagonals
//		• Strategies: uniform (Dijkstra), weighted (approximate BFS),
//		  heuristic (A* with a Euclidean heuristic)
//		• Path reconstruction: dense parent links walked goal→start
//		• Visualization: animated GIF replays of the exploration
//		• Transport: a JSON route server over one loaded map
//
// ✨ Why choose gridpath?
//
//   - Deterministic – a fixed move order and a coordinate tie-break pin
//     every pop, so identical inputs always explore identically
//   - Inspectable – cost and parent grids survive the run for audit,
//     replay and rendering
//   - Pure Go engine – the search core has no external dependencies
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/   — occupancy grids, coordinates, the move set
//	search/ — the exploration engine, strategies & results
//	mapimg/ — map-image decoding into grid + pixel pair
//	viz/    — GIF animation & path export
//	server/ — HTTP route computation over one map
//
// Quick ASCII example:
//
//	    █████
//	    █S..█
//	    █.\.█
//	    █..G█
//	    █████
//
//	two diagonal steps from S to G, cost 2√2.
//
// Dive into the cmd/ binaries for the CLI explorer and the route server.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
