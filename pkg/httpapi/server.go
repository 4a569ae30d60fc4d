// Package httpapi exposes a single landmark-graph query endpoint over
// go-chi/chi/v5 — a teacher go.mod dependency with no consumer anywhere in
// the retrieved snapshot (no server, router, or handler file exists to
// copy structurally), so the router below follows chi's own idiomatic
// router-group shape rather than a teacher pattern.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	dalmerrors "github.com/dalmcut/dalmcut/pkg/errors"
	"github.com/dalmcut/dalmcut/pkg/factory"
	"github.com/dalmcut/dalmcut/pkg/landmark"
	"github.com/dalmcut/dalmcut/pkg/observability"
	"github.com/dalmcut/dalmcut/pkg/store"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// Server answers landmark-graph queries for a single fixed task over HTTP.
type Server struct {
	factory    *factory.AbstractionCutFactory
	taskHash   string
	configHash string
	store      *store.Store
	router     chi.Router
}

// NewServer builds a Server backed by f, reporting taskHash/configHash in
// query responses (callers compute these however they derive a content
// hash for their task and configuration, so they round-trip into
// landmark.QueryResult unchanged). st is optional: a nil store disables
// per-query history persistence.
func NewServer(f *factory.AbstractionCutFactory, taskHash, configHash string, st *store.Store) *Server {
	s := &Server{factory: f, taskHash: taskHash, configHash: configHash, store: st}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Post("/v1/landmarks", s.handleLandmarks)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// landmarksRequest is the POST /v1/landmarks request body: the finite-domain
// state to query landmarks against.
type landmarksRequest struct {
	State task.State `json:"state"`
}

type landmarkNode struct {
	ID            int   `json:"id"`
	Actions       []int `json:"actions"`
	InitiallyPast bool  `json:"initially_past"`
}

type landmarkEdge struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Kind string `json:"kind"`
}

// landmarksResponse is the POST /v1/landmarks response body.
type landmarksResponse struct {
	QueryID       string         `json:"query_id"`
	TaskHash      string         `json:"task_hash"`
	ConfigHash    string         `json:"config_hash"`
	IsDeadEnd     bool           `json:"is_dead_end"`
	BuildDuration string         `json:"build_duration"`
	Landmarks     []landmarkNode `json:"landmarks"`
	Edges         []landmarkEdge `json:"edges"`
}

func (s *Server) handleLandmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req landmarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	queryID := middleware.GetReqID(ctx)

	observability.LandmarkGraph().OnQueryStart(ctx, s.factory.NumAbstractions())
	start := time.Now()
	graph, err := s.factory.ComputeLandmarkGraph(req.State)
	duration := time.Since(start)
	observability.LandmarkGraph().OnQueryComplete(ctx, numLandmarksOf(graph), duration, err)

	if err != nil {
		status := http.StatusInternalServerError
		if dalmerrors.Is(err, dalmerrors.ErrCodeUnsupportedTaskShape) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	if s.store != nil {
		result := landmark.NewQueryResult(queryID, s.taskHash, s.configHash, factory.StateHash(req.State), s.factory.NumAbstractions(), duration, graph)
		_ = s.store.Save(ctx, result)
	}

	resp := landmarksResponse{
		QueryID:       queryID,
		TaskHash:      s.taskHash,
		ConfigHash:    s.configHash,
		IsDeadEnd:     graph.IsDeadEnd(),
		BuildDuration: duration.String(),
	}
	for id := 0; id < graph.NumLandmarks(); id++ {
		actions := make([]int, 0, len(graph.Actions(id)))
		for op := range graph.Actions(id) {
			actions = append(actions, op)
		}
		resp.Landmarks = append(resp.Landmarks, landmarkNode{
			ID:            id,
			Actions:       actions,
			InitiallyPast: graph.IsTrueInInitial(id),
		})
		for _, dep := range graph.Dependencies(id) {
			kind := "weak"
			if dep.Kind == landmark.Strong {
				kind = "strong"
			}
			resp.Edges = append(resp.Edges, landmarkEdge{From: dep.From, To: id, Kind: kind})
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func numLandmarksOf(g *landmark.Graph) int {
	if g == nil {
		return 0
	}
	return g.NumLandmarks()
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
