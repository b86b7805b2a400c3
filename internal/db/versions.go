package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// CreateVersion snapshots the current state of a document. Version numbers
// start at 1 and increment per document.
func (db *DB) CreateVersion(ctx context.Context, doc *Document) (*Version, error) {
	count, err := db.CountVersions(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	sectionsJSON, err := json.Marshal(doc.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sections: %w", err)
	}

	var v Version
	var rawSections []byte
	err = db.pool.QueryRow(ctx,
		`INSERT INTO versions (document_id, version_number, title, sections)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, document_id, version_number, title, sections, created_at`,
		doc.ID, count+1, doc.Title, sectionsJSON,
	).Scan(&v.ID, &v.DocumentID, &v.VersionNumber, &v.Title, &rawSections, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create version: %w", err)
	}
	if err := json.Unmarshal(rawSections, &v.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return &v, nil
}

// CountVersions returns the number of stored versions for a document.
func (db *DB) CountVersions(ctx context.Context, documentID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM versions WHERE document_id = $1`,
		documentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count versions: %w", err)
	}
	return count, nil
}

// ListVersions returns all versions of a document, newest first.
func (db *DB) ListVersions(ctx context.Context, documentID uuid.UUID) ([]*Version, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, document_id, version_number, title, sections, created_at
		 FROM versions
		 WHERE document_id = $1
		 ORDER BY version_number DESC`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}
	defer rows.Close()

	versions := []*Version{}
	for rows.Next() {
		var v Version
		var rawSections []byte
		if err := rows.Scan(&v.ID, &v.DocumentID, &v.VersionNumber, &v.Title, &rawSections, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		if err := json.Unmarshal(rawSections, &v.Sections); err != nil {
			return nil, fmt.Errorf("failed to decode sections: %w", err)
		}
		if v.Sections == nil {
			v.Sections = []types.ResumeSection{}
		}
		versions = append(versions, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read versions: %w", err)
	}
	return versions, nil
}

// GetVersion retrieves a specific version of a document by number. Returns
// nil when not found.
func (db *DB) GetVersion(ctx context.Context, documentID uuid.UUID, versionNumber int) (*Version, error) {
	var v Version
	var rawSections []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, document_id, version_number, title, sections, created_at
		 FROM versions
		 WHERE document_id = $1 AND version_number = $2`,
		documentID, versionNumber,
	).Scan(&v.ID, &v.DocumentID, &v.VersionNumber, &v.Title, &rawSections, &v.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	if err := json.Unmarshal(rawSections, &v.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	if v.Sections == nil {
		v.Sections = []types.ResumeSection{}
	}
	return &v, nil
}
