// Package server exposes the grid model and search engine over a thin JSON
// HTTP adapter. It owns no algorithmic logic: handlers validate input,
// delegate to grid/search, and translate sentinel errors into status codes.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/trapgrid/trapgrid/grid"
	"github.com/trapgrid/trapgrid/search"
)

// Server wires the JSON endpoints. Handlers are stateless: every request
// builds its own grid, so no mutex guards shared game state.
type Server struct {
	logger *log.Logger
}

// NewServer returns a Server logging through the given logger
// (log.Default() when nil).
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{logger: logger}
}

// Register attaches the API routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/new-grid", s.HandleNewGrid)
	mux.HandleFunc("/api/find-path", s.HandleFindPath)
	mux.HandleFunc("/api/health", s.HandleHealth)
}

// newGridRequest carries grid-generation parameters; absent fields keep the
// defaults preloaded before decoding.
type newGridRequest struct {
	GridSize  int `json:"grid_size"`
	TrapCount int `json:"trap_count"`
}

// newGridResponse is the classified grid in wire encoding plus the fixed
// endpoints and a unique ID tagging this generated instance.
type newGridResponse struct {
	ID    uuid.UUID  `json:"id"`
	Grid  [][]int    `json:"grid"`
	Start grid.Coord `json:"start"`
	Goal  grid.Coord `json:"goal"`
}

// findPathRequest carries the grid matrix to solve.
type findPathRequest struct {
	Grid [][]int `json:"grid"`
}

// errorResponse is the uniform failure body.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the liveness probe body.
type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HandleNewGrid generates a freshly classified grid.
//
// POST /api/new-grid
// Request:  {"grid_size": int, "trap_count": int}   (both optional)
// Response: {"id": uuid, "grid": [[int]], "start": [x,y], "goal": [x,y]}
// 400 on malformed JSON or a size below the minimum.
func (s *Server) HandleNewGrid(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req := newGridRequest{
		GridSize:  grid.DefaultGridSize,
		TrapCount: grid.DefaultTrapCount,
	}
	if err := decodeBody(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	g, err := grid.New(req.GridSize)
	if err != nil {
		// ErrInvalidSize is the only construction failure; a client error.
		s.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	g.PlaceTraps(req.TrapCount)

	s.sendJSON(w, http.StatusOK, newGridResponse{
		ID:    uuid.New(),
		Grid:  g.Cells(),
		Start: g.Start(),
		Goal:  g.Goal(),
	})
}

// HandleFindPath solves a supplied grid matrix.
//
// POST /api/find-path
// Request:  {"grid": [[int]]}
// Response: {"path": [[x,y]…], "visited": [[x,y]…],
//            "stats": {"explored": n, "pruned": n, "path_length": n}}
// 400 when the grid is missing, empty, non-square, or holds unknown codes.
// An unreachable goal is NOT an error: it yields 200 with an empty path.
func (s *Server) HandleFindPath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req findPathRequest
	if err := decodeBody(r.Body, &req); err != nil {
		s.sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Grid) == 0 {
		s.sendError(w, http.StatusBadRequest, "grid data required")
		return
	}

	g, err := grid.FromCells(req.Grid)
	if err != nil {
		if errors.Is(err, grid.ErrInvalidGrid) {
			s.sendError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	res, err := search.FindPath(g)
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.sendJSON(w, http.StatusOK, res)
}

// HandleHealth reports liveness.
//
// GET /api/health
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.sendError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	s.sendJSON(w, http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "trapgrid API is running",
	})
}

// decodeBody decodes a JSON body into dst; an entirely empty body is not an
// error, it simply keeps dst's preloaded defaults.
func decodeBody(body io.Reader, dst interface{}) error {
	err := json.NewDecoder(body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}

// sendJSON writes v as a JSON response with the given status.
func (s *Server) sendJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Printf("server: encode response: %v", err)
	}
}

// sendError writes the uniform error body.
func (s *Server) sendError(w http.ResponseWriter, status int, msg string) {
	s.sendJSON(w, status, errorResponse{Error: msg})
}
