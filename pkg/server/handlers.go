// SPDX-FileCopyrightText: 2025 Chen Linxuan <me@black-desk.cn>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/black-desk/wswatch/pkg/manager"
	"github.com/black-desk/wswatch/pkg/types"
)

type watchRequest struct {
	Path string `json:"path"`
}

type classifyResponse struct {
	Path      string `json:"path"`
	CloudSync bool   `json:"cloud_sync"`
	Strategy  string `json:"strategy"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/watch", s.handleWatch)
	mux.HandleFunc("GET /api/v1/watch", s.handleList)
	mux.HandleFunc("DELETE /api/v1/watch", s.handleUnwatch)
	mux.HandleFunc("GET /api/v1/classify", s.handleClassify)
	mux.Handle("GET /api/v1/events", s.events)

	return mux
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	var req watchRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()

	err := dec.Decode(&req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.Path == "" {
		s.writeError(w, http.StatusBadRequest, ErrPathMissing)
		return
	}

	info, err := s.manager.Watch(req.Path)
	if errors.Is(err, manager.ErrManagerClosed) {
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	if err != nil {
		s.log.Warnw("Failed to start watch session.",
			"path", req.Path,
			"error", err,
		)
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	sessions := s.manager.Sessions()
	if sessions == nil {
		sessions = []*types.SessionInfo{}
	}

	s.writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleUnwatch(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, http.StatusBadRequest, ErrPathMissing)
		return
	}

	err := s.manager.Unwatch(path)
	var notFound *manager.ErrSessionNotFound
	if errors.As(err, &notFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		s.writeError(w, http.StatusBadRequest, ErrPathMissing)
		return
	}

	path, err := filepath.Abs(path)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &classifyResponse{
		Path:      path,
		CloudSync: s.classifier.IsCloudSyncPath(path),
		Strategy:  s.selector.Select(path).Kind.String(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err == nil {
		return
	}

	s.log.Debugw("Failed to write response.", "error", err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, &errorResponse{Error: err.Error()})
}
