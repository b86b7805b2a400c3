package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/types"
)

type chatRequest struct {
	Message    string              `json:"message"`
	Resume     *types.ResumeRecord `json:"resume,omitempty"`
	DocumentID *uuid.UUID          `json:"document_id,omitempty"`
}

type sectionRequest struct {
	SectionContent string              `json:"section_content"`
	UserQuestion   string              `json:"user_question"`
	Resume         *types.ResumeRecord `json:"resume,omitempty"`
	DocumentID     *uuid.UUID          `json:"document_id,omitempty"`
}

type atsRequest struct {
	Resume         *types.ResumeRecord `json:"resume,omitempty"`
	JobDescription string              `json:"job_description"`
	DocumentID     *uuid.UUID          `json:"document_id,omitempty"`
}

// resolveResume prefers an inline resume; otherwise it loads the referenced
// document from storage. Returns nil when neither is supplied.
func (s *Server) resolveResume(r *http.Request, userID uuid.UUID, inline *types.ResumeRecord, documentID *uuid.UUID) (*types.ResumeRecord, error) {
	if inline != nil || documentID == nil {
		return inline, nil
	}
	doc, err := s.db.GetDocument(r.Context(), userID, *documentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return doc.ResumeRecord(), nil
}

type detectJobRequest struct {
	Text string `json:"text"`
}

// aiScope resolves the authenticated user and checks assistant availability,
// writing the error response itself on failure.
func (s *Server) aiScope(w http.ResponseWriter, r *http.Request) (*assistant.Service, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}
	if s.assistant == nil {
		unavailable := &ErrAssistantUnavailable{}
		writeError(w, HTTPStatus(unavailable), unavailable.Error())
		return nil, uuid.Nil, false
	}
	return s.assistant, userID, true
}

// handleAIStatus reports assistant availability. Unlike the generation
// endpoints, it responds 200 even when no backend is configured.
func (s *Server) handleAIStatus(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.GetUserID(r); err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if s.assistant == nil {
		writeJSON(w, http.StatusOK, assistant.Status{Model: "None"})
		return
	}
	writeJSON(w, http.StatusOK, s.assistant.GetStatus())
}

func (s *Server) handleAIChat(w http.ResponseWriter, r *http.Request) {
	svc, userID, ok := s.aiScope(w, r)
	if !ok {
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	resume, err := s.resolveResume(r, userID, req.Resume, req.DocumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	resp := svc.Chat(r.Context(), req.Message, resume, userID.String())
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAISection(w http.ResponseWriter, r *http.Request) {
	svc, userID, ok := s.aiScope(w, r)
	if !ok {
		return
	}

	var req sectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SectionContent == "" {
		writeError(w, http.StatusBadRequest, "section_content is required")
		return
	}

	resume, err := s.resolveResume(r, userID, req.Resume, req.DocumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	resp := svc.AnalyzeSection(r.Context(), req.SectionContent, req.UserQuestion, resume, userID.String())
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAIATS(w http.ResponseWriter, r *http.Request) {
	svc, userID, ok := s.aiScope(w, r)
	if !ok {
		return
	}

	var req atsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resume, err := s.resolveResume(r, userID, req.Resume, req.DocumentID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	}

	resp := svc.GenerateATSAdvice(r.Context(), resume, req.JobDescription, userID.String())
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAIDetectJob(w http.ResponseWriter, r *http.Request) {
	svc, _, ok := s.aiScope(w, r)
	if !ok {
		return
	}

	var req detectJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := svc.DetectJobDescription(r.Context(), req.Text)
	writeJSON(w, http.StatusOK, result)
}
