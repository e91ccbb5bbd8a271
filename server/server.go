package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/mapimg"
	"github.com/katalvlaran/gridpath/search"
)

// Server binds HTTP requests to grid exploration over one loaded map.
type Server struct {
	m *mapimg.MapImage

	mu       sync.Mutex
	lastSeen []grid.Coord // expanded cells of the most recent route
}

// New creates a Server over the given map.
func New(m *mapimg.MapImage) *Server {
	return &Server{m: m}
}

// Router returns the configured HTTP router.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/routes", s.computeRoute).Methods(http.MethodPost)
	r.HandleFunc("/searchSpace", s.searchSpace).Methods(http.MethodGet)
	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	return r
}

// computeRoute handles POST /routes.
func (s *Server) computeRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	d := json.NewDecoder(r.Body)
	d.DisallowUnknownFields()
	if err := d.Decode(&req); err != nil {
		encodeJSON(w, http.StatusBadRequest, errorBody{Error: "malformed route request: " + err.Error()})
		return
	}

	strategy, err := search.ParseStrategy(req.Strategy)
	if err != nil {
		encodeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	start := grid.Coord{Row: req.Start.Row, Col: req.Start.Col}
	goal := grid.Coord{Row: req.Goal.Row, Col: req.Goal.Col}
	explorer, err := search.New(s.m.Grid, start, goal, strategy)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, search.ErrBadEndpoint) || errors.Is(err, search.ErrUnknownStrategy) {
			status = http.StatusBadRequest
		}
		encodeJSON(w, status, errorBody{Error: err.Error()})
		return
	}

	res := explorer.Run()

	// A start == goal route expands nothing and leaves Visited nil; store a
	// non-nil slice so searchSpace can tell "computed, zero expansions"
	// apart from "no route yet".
	seen := res.Visited
	if seen == nil {
		seen = []grid.Coord{}
	}
	s.mu.Lock()
	s.lastSeen = seen
	s.mu.Unlock()

	result := RouteResult{Expanded: len(res.Visited)}
	if res.State == search.Found {
		path, pathErr := res.Path()
		if pathErr != nil {
			encodeJSON(w, http.StatusInternalServerError, errorBody{Error: pathErr.Error()})
			return
		}
		result.Reachable = true
		result.Cost = res.PathCost()
		// Emit the path start→goal, the order clients draw it in.
		result.Path = make([]Point, 0, len(path))
		for i := len(path) - 1; i >= 0; i-- {
			result.Path = append(result.Path, Point{Row: path[i].Row, Col: path[i].Col})
		}
	}

	encodeJSON(w, http.StatusOK, result)
}

// searchSpace handles GET /searchSpace. Responds 204 before any route has
// been computed.
func (s *Server) searchSpace(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	seen := s.lastSeen
	s.mu.Unlock()

	if seen == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	body := SearchSpace{Expanded: make([]Point, 0, len(seen))}
	for _, c := range seen {
		body.Expanded = append(body.Expanded, Point{Row: c.Row, Col: c.Col})
	}

	encodeJSON(w, http.StatusOK, body)
}

// health handles GET /health.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	encodeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
