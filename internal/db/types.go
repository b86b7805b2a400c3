package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// User represents a user account row.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
}

// Document represents a resume document row. Sections are stored as JSONB.
type Document struct {
	ID        uuid.UUID             `json:"id"`
	UserID    uuid.UUID             `json:"user_id"`
	Title     string                `json:"title"`
	Sections  []types.ResumeSection `json:"sections"`
	Labels    []string              `json:"labels"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// ResumeRecord projects the document into the read-only view the assistant
// consumes.
func (d *Document) ResumeRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		Title:    d.Title,
		Sections: d.Sections,
	}
}

// Version represents a historical snapshot of a document.
type Version struct {
	ID            uuid.UUID             `json:"id"`
	DocumentID    uuid.UUID             `json:"document_id"`
	VersionNumber int                   `json:"version_number"`
	Title         string                `json:"title"`
	Sections      []types.ResumeSection `json:"sections"`
	CreatedAt     time.Time             `json:"created_at"`
}

// Label represents a user-defined document tag.
type Label struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
