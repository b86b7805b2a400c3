package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditActionIsValid(t *testing.T) {
	tests := []struct {
		action EditAction
		want   bool
	}{
		{ActionReplace, true},
		{ActionAdd, true},
		{ActionRemove, true},
		{EditAction("rewrite"), false},
		{EditAction(""), false},
		{EditAction("Replace"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.action.IsValid())
		})
	}
}

func TestResumeEditValidate(t *testing.T) {
	edit := &ResumeEdit{Section: "skills", Action: ActionAdd}
	assert.NoError(t, edit.Validate())

	edit.Action = "merge"
	assert.Error(t, edit.Validate())
}

func TestAssistantResponseValidate(t *testing.T) {
	resp := &AssistantResponse{
		Message: "ok",
		Edits: []ResumeEdit{
			{Section: "skills", Action: ActionAdd},
			{Section: "summary", Action: EditAction("bogus")},
		},
	}

	err := resp.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edit 1")
}

func TestDetectionResultJSONShape(t *testing.T) {
	result := DetectionResult{
		IsJobDescription: true,
		Parsed:           &JobDescription{Title: "Engineer"},
		Advice:           "Tailor experience for: Engineer",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "is_job_description")
	assert.Contains(t, decoded, "parsed")
	assert.Contains(t, decoded, "advice")
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name  string
		req   RegisterRequest
		valid bool
	}{
		{"valid", RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "long-enough"}, true},
		{"short username", RegisterRequest{Username: "al", Email: "alice@example.com", Password: "long-enough"}, false},
		{"bad email", RegisterRequest{Username: "alice", Email: "not-an-email", Password: "long-enough"}, false},
		{"short password", RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "short"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateRequestValidate(t *testing.T) {
	empty := ""
	name := "ok"

	assert.NoError(t, (&UpdateDocumentRequest{}).Validate())
	assert.Error(t, (&UpdateDocumentRequest{Title: &empty}).Validate())

	assert.NoError(t, (&UpdateLabelRequest{Name: &name}).Validate())
	assert.Error(t, (&UpdateLabelRequest{Name: &empty}).Validate())
}
