package server

import (
	"log"
	"net/http"
	"strconv"
)

func (s *Server) handleListVersions(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}

	// Ownership check before touching the versions table.
	doc, err := s.db.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to get document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list versions")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	versions, err := s.db.ListVersions(r.Context(), documentID)
	if err != nil {
		log.Printf("failed to list versions: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list versions")
		return
	}
	writeJSON(w, http.StatusOK, versions)
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number < 1 {
		writeError(w, http.StatusBadRequest, "invalid version number")
		return
	}

	doc, err := s.db.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to get document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get version")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	version, err := s.db.GetVersion(r.Context(), documentID, number)
	if err != nil {
		log.Printf("failed to get version: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to get version")
		return
	}
	if version == nil {
		writeError(w, http.StatusNotFound, "version not found")
		return
	}
	writeJSON(w, http.StatusOK, version)
}

// handleRestoreVersion writes a historical snapshot back into the document.
// The pre-restore state is saved as a new version first so the restore itself
// can be undone.
func (s *Server) handleRestoreVersion(w http.ResponseWriter, r *http.Request) {
	userID, documentID, ok := s.documentScope(w, r)
	if !ok {
		return
	}
	number, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || number < 1 {
		writeError(w, http.StatusBadRequest, "invalid version number")
		return
	}

	doc, err := s.db.GetDocument(r.Context(), userID, documentID)
	if err != nil {
		log.Printf("failed to get document: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to restore version")
		return
	}
	if doc == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	version, err := s.db.GetVersion(r.Context(), documentID, number)
	if err != nil {
		log.Printf("failed to get version: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to restore version")
		return
	}
	if version == nil {
		writeError(w, http.StatusNotFound, "version not found")
		return
	}

	if _, err := s.db.CreateVersion(r.Context(), doc); err != nil {
		log.Printf("failed to snapshot document version: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to restore version")
		return
	}

	restored, err := s.db.UpdateDocument(r.Context(), userID, documentID, &version.Title, &version.Sections, nil)
	if err != nil {
		log.Printf("failed to restore version: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to restore version")
		return
	}
	if restored == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, restored)
}
