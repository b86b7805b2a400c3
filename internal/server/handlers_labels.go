package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/db"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func (s *Server) handleListLabels(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	labels, err := s.db.ListLabels(r.Context(), userID)
	if err != nil {
		log.Printf("failed to list labels: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list labels")
		return
	}
	writeJSON(w, http.StatusOK, labels)
}

func (s *Server) handleCreateLabel(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.CreateLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	label, err := s.db.CreateLabel(r.Context(), userID, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateLabel) {
			labelErr := &ErrLabelConflict{Name: req.Name}
			writeError(w, HTTPStatus(labelErr), labelErr.Error())
			return
		}
		log.Printf("failed to create label: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create label")
		return
	}
	writeJSON(w, http.StatusCreated, label)
}

func (s *Server) handleUpdateLabel(w http.ResponseWriter, r *http.Request) {
	userID, labelID, ok := s.labelScope(w, r)
	if !ok {
		return
	}

	var req types.UpdateLabelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	label, err := s.db.UpdateLabel(r.Context(), userID, labelID, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateLabel) {
			name := ""
			if req.Name != nil {
				name = *req.Name
			}
			labelErr := &ErrLabelConflict{Name: name}
			writeError(w, HTTPStatus(labelErr), labelErr.Error())
			return
		}
		log.Printf("failed to update label: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update label")
		return
	}
	if label == nil {
		writeError(w, http.StatusNotFound, "label not found")
		return
	}
	writeJSON(w, http.StatusOK, label)
}

func (s *Server) handleDeleteLabel(w http.ResponseWriter, r *http.Request) {
	userID, labelID, ok := s.labelScope(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteLabel(r.Context(), userID, labelID)
	if err != nil {
		log.Printf("failed to delete label: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete label")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "label not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "label deleted"})
}

func (s *Server) labelScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	labelID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid label id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, labelID, true
}
