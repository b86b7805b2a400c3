package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// CreateDocument inserts a new document for the given user and returns the
// stored row.
func (db *DB) CreateDocument(ctx context.Context, userID uuid.UUID, title string, sections []types.ResumeSection, labels []string) (*Document, error) {
	if sections == nil {
		sections = []types.ResumeSection{}
	}
	if labels == nil {
		labels = []string{}
	}

	sectionsJSON, err := json.Marshal(sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}
	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode labels: %w", err)
	}

	var d Document
	var rawSections, rawLabels []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, title, sections, labels)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, title, sections, labels, created_at, updated_at`,
		userID, title, sectionsJSON, labelsJSON,
	).Scan(&d.ID, &d.UserID, &d.Title, &rawSections, &rawLabels, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	if err := decodeDocumentJSON(&d, rawSections, rawLabels); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListDocuments returns all documents owned by a user, most recently updated
// first.
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID) ([]*Document, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, sections, labels, created_at, updated_at
		 FROM documents
		 WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := []*Document{}
	for rows.Next() {
		var d Document
		var rawSections, rawLabels []byte
		if err := rows.Scan(&d.ID, &d.UserID, &d.Title, &rawSections, &rawLabels, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if err := decodeDocumentJSON(&d, rawSections, rawLabels); err != nil {
			return nil, err
		}
		docs = append(docs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents: %w", err)
	}
	return docs, nil
}

// GetDocument retrieves a document by ID scoped to the owning user. Returns
// nil when not found.
func (db *DB) GetDocument(ctx context.Context, userID, documentID uuid.UUID) (*Document, error) {
	var d Document
	var rawSections, rawLabels []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, sections, labels, created_at, updated_at
		 FROM documents
		 WHERE id = $1 AND user_id = $2`,
		documentID, userID,
	).Scan(&d.ID, &d.UserID, &d.Title, &rawSections, &rawLabels, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if err := decodeDocumentJSON(&d, rawSections, rawLabels); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateDocument applies the provided fields to a document and bumps its
// updated_at timestamp. Nil fields are left unchanged. Returns nil when the
// document does not exist.
func (db *DB) UpdateDocument(ctx context.Context, userID, documentID uuid.UUID, title *string, sections *[]types.ResumeSection, labels *[]string) (*Document, error) {
	current, err := db.GetDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	newTitle := current.Title
	if title != nil {
		newTitle = *title
	}
	newSections := current.Sections
	if sections != nil {
		newSections = *sections
	}
	newLabels := current.Labels
	if labels != nil {
		newLabels = *labels
	}
	if newSections == nil {
		newSections = []types.ResumeSection{}
	}
	if newLabels == nil {
		newLabels = []string{}
	}

	sectionsJSON, err := json.Marshal(newSections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}
	labelsJSON, err := json.Marshal(newLabels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode labels: %w", err)
	}

	var d Document
	var rawSections, rawLabels []byte
	err = db.pool.QueryRow(ctx,
		`UPDATE documents
		 SET title = $1, sections = $2, labels = $3, updated_at = NOW()
		 WHERE id = $4 AND user_id = $5
		 RETURNING id, user_id, title, sections, labels, created_at, updated_at`,
		newTitle, sectionsJSON, labelsJSON, documentID, userID,
	).Scan(&d.ID, &d.UserID, &d.Title, &rawSections, &rawLabels, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if err := decodeDocumentJSON(&d, rawSections, rawLabels); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateSection replaces the content of a single section within a document.
// Returns the updated document, or nil when the document or section does not
// exist.
func (db *DB) UpdateSection(ctx context.Context, userID, documentID uuid.UUID, sectionID string, content types.SectionContent) (*Document, error) {
	current, err := db.GetDocument(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	found := false
	for i := range current.Sections {
		if current.Sections[i].ID == sectionID {
			current.Sections[i].Content = content
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	return db.UpdateDocument(ctx, userID, documentID, nil, &current.Sections, nil)
}

// DeleteDocument removes a document. Versions cascade. Returns false when the
// document does not exist.
func (db *DB) DeleteDocument(ctx context.Context, userID, documentID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`,
		documentID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func decodeDocumentJSON(d *Document, rawSections, rawLabels []byte) error {
	if err := json.Unmarshal(rawSections, &d.Sections); err != nil {
		return fmt.Errorf("failed to decode sections: %w", err)
	}
	if err := json.Unmarshal(rawLabels, &d.Labels); err != nil {
		return fmt.Errorf("failed to decode labels: %w", err)
	}
	if d.Sections == nil {
		d.Sections = []types.ResumeSection{}
	}
	if d.Labels == nil {
		d.Labels = []string{}
	}
	return nil
}
