// Package types provides type definitions for structured data used throughout the resume-optimizer system.
package types

import "fmt"

// EditAction is the closed set of edit operations the assistant may suggest.
type EditAction string

// Valid edit actions. Anything outside this set is rejected at the parse boundary.
const (
	ActionReplace EditAction = "replace"
	ActionAdd     EditAction = "add"
	ActionRemove  EditAction = "remove"
)

// IsValid reports whether the action is one of the known edit actions.
func (a EditAction) IsValid() bool {
	switch a {
	case ActionReplace, ActionAdd, ActionRemove:
		return true
	}
	return false
}

// ResumeEdit is a single suggested change to a resume section.
// Find is required for replace/remove and may be empty for add.
// Replace is used only for replace, Addition only for add.
type ResumeEdit struct {
	Section  string     `json:"section"`
	Action   EditAction `json:"action"`
	Find     string     `json:"find"`
	Replace  string     `json:"replace"`
	Addition string     `json:"addition"`
	Reason   string     `json:"reason"`
}

// Validate checks the edit against the closed action set.
func (e *ResumeEdit) Validate() error {
	if !e.Action.IsValid() {
		return fmt.Errorf("invalid edit action: %q", e.Action)
	}
	return nil
}

// AssistantResponse is the unit returned to callers for every assistant intent.
// Edits may be empty; a fallback response always has empty edits.
type AssistantResponse struct {
	Message string       `json:"message"`
	Edits   []ResumeEdit `json:"edits"`
}

// Validate checks every edit against the closed action set.
func (r *AssistantResponse) Validate() error {
	for i := range r.Edits {
		if err := r.Edits[i].Validate(); err != nil {
			return fmt.Errorf("edit %d: %w", i, err)
		}
	}
	return nil
}
