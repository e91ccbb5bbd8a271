// Package server exposes grid exploration over HTTP.
//
// Endpoints:
//
//	POST /routes      — compute a route between two cells on the loaded map.
//	GET  /searchSpace — expanded cells of the most recent route, for
//	                    visualization clients.
//	GET  /health      — liveness probe.
//
// Requests and responses are JSON; coordinates are search-space (row, col).
// A Server owns one loaded map for its lifetime; route computations build a
// fresh search per request and are safe for concurrent callers.
package server
