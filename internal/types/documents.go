package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CreateDocumentRequest represents the request to create a new resume document.
// When Sections is empty the server seeds the document with the default template.
type CreateDocumentRequest struct {
	Title    string          `json:"title" validate:"required,min=1"`
	Sections []ResumeSection `json:"sections,omitempty"`
	Labels   []string        `json:"labels,omitempty"`
}

// UpdateDocumentRequest represents a full document update.
// Nil fields are left unchanged; a successful update snapshots a new version.
type UpdateDocumentRequest struct {
	Title    *string          `json:"title,omitempty"`
	Sections *[]ResumeSection `json:"sections,omitempty"`
	Labels   *[]string        `json:"labels,omitempty"`
}

// UpdateSectionRequest represents an update to a single section's content.
type UpdateSectionRequest struct {
	Content SectionContent `json:"content"`
}

// CreateLabelRequest represents the request to create a label.
type CreateLabelRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=64"`
	Color string `json:"color,omitempty"`
}

// UpdateLabelRequest represents a label rename/recolor.
type UpdateLabelRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Validate validates the CreateDocumentRequest using the validator.
func (r *CreateDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateLabelRequest using the validator.
func (r *CreateLabelRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks that supplied fields carry usable values.
func (r *UpdateDocumentRequest) Validate() error {
	if r.Title != nil && *r.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

// Validate checks that supplied fields carry usable values.
func (r *UpdateLabelRequest) Validate() error {
	if r.Name != nil && (*r.Name == "" || len(*r.Name) > 64) {
		return fmt.Errorf("name must be between 1 and 64 characters")
	}
	return nil
}
