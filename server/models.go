package server

import (
	"encoding/json"
	"net/http"
)

// Point is a search-space cell reference.
type Point struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// RouteRequest asks for a route between two cells under a named strategy.
type RouteRequest struct {
	Start    Point  `json:"start"`
	Goal     Point  `json:"goal"`
	Strategy string `json:"strategy"`
}

// RouteResult reports one computed route.
type RouteResult struct {
	Reachable bool    `json:"reachable"`
	Cost      float64 `json:"cost,omitempty"`
	Expanded  int     `json:"expanded"`
	Path      []Point `json:"path,omitempty"`
}

// SearchSpace lists the cells expanded by the most recent route.
type SearchSpace struct {
	Expanded []Point `json:"expanded"`
}

// errorBody is the uniform error payload.
type errorBody struct {
	Error string `json:"error"`
}

// encodeJSON writes v with the given status code. Encoding happens after
// the header is committed, matching the one-shot response contract of every
// handler here.
func encodeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
