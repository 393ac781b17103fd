package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/packpath/packpath/internal/resolver"
	"github.com/packpath/packpath/internal/structure"
	"github.com/packpath/packpath/pkg/catalog"
	"github.com/packpath/packpath/pkg/version"
)

// resolveRequest is the body of POST /api/resolve.
type resolveRequest struct {
	Filename string `json:"filename"`
}

// healthStatus is the body of GET /api/health.
type healthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Catalog string `json:"catalog_version"`
	Packs   int    `json:"packs"`
	Models  int    `json:"models"`
	Rules   int    `json:"rules"`
}

// snapshot fetches the current catalog, answering 503 when the manager
// has no loaded catalog yet.
func (s *Server) snapshot(w http.ResponseWriter) (*catalog.Snapshot, bool) {
	snap, err := s.manager.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "catalog not loaded", "")
		return nil, false
	}
	return snap, true
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if strings.TrimSpace(req.Filename) == "" {
		writeError(w, http.StatusBadRequest, "filename is required", "")
		return
	}

	snap, ok := s.snapshot(w)
	if !ok {
		return
	}

	result, err := resolver.Resolve(req.Filename, snap)
	if err != nil {
		writeResolutionError(w, err)
		return
	}
	writeSuccess(w, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeSuccess(w, healthStatus{
		Status:  "ok",
		Version: version.Version,
		Catalog: snap.Version,
		Packs:   len(snap.Packs),
		Models:  len(snap.Models),
		Rules:   len(snap.Rules),
	})
}

func (s *Server) handleStructure(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeSuccess(w, structure.Generate(snap))
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	writeSuccess(w, structure.FlatPaths(snap))
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.manager.Reload()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}
	writeSuccess(w, healthStatus{
		Status:  "reloaded",
		Version: version.Version,
		Catalog: snap.Version,
		Packs:   len(snap.Packs),
		Models:  len(snap.Models),
		Rules:   len(snap.Rules),
	})
}
