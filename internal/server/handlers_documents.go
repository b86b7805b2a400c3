package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// defaultSections seeds a new document that arrives without sections.
func defaultSections() []types.ResumeSection {
	return []types.ResumeSection{
		{ID: "contact", Title: "Contact", Content: types.SectionContent{Text: "YOUR NAME\nemail@example.com | (555) 555-5555 | City, ST"}},
		{ID: "summary", Title: "Summary", Content: types.SectionContent{Text: ""}},
		{ID: "experience", Title: "Experience", Content: types.SectionContent{Text: ""}},
		{ID: "education", Title: "Education", Content: types.SectionContent{Text: ""}},
		{ID: "skills", Title: "Skills", Content: types.SectionContent{Text: ""}},
	}
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	docs, err := s.db.ListDocuments(r.Context(), userID)
	if err != nil {
		log.Printf("failed to list documents: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req types.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sections := req.Sections
	if len(sections) == 0 {
		sections = defaultSections()
	}

	doc, err := s.db.CreateDocument(r.Context(), userID, req.Title, sections, req.Labels)
	if err != nil {
		log.Printf("failed to create document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create document")
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}

	doc, err := s.db.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to get document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get document")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handleUpdateDocument snapshots the current state as a new version before
// applying the update.
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}

	var req types.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	current, err := s.db.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to get document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update document")
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	if _, err := s.db.CreateVersion(r.Context(), current); err != nil {
		log.Printf("failed to snapshot document version: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update document")
		return
	}

	doc, err := s.db.UpdateDocument(r.Context(), userID, documentID, req.Title, req.Sections, req.Labels)
	if err != nil {
		log.Printf("failed to update document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update document")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}
	sectionID := r.PathValue("section_id")

	var req types.UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	doc, err := s.db.UpdateSection(r.Context(), userID, documentID, sectionID, req.Content)
	if err != nil {
		log.Printf("failed to update section: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to update section")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "section not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to delete document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to delete document")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "document deleted"})
}

// documentScope resolves the authenticated user and the document ID path
// parameter, writing the error response itself on failure.
func (s *Server) documentScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	documentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid document id")
		return uuid.Nil, uuid.Nil, false
	}
	return userID, documentID, true
}
