package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAssistantResponse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name:    "minimal valid",
			content: `{"message": "ok", "edits": []}`,
			valid:   true,
		},
		{
			name:    "full edit",
			content: `{"message": "ok", "edits": [{"section": "skills", "action": "replace", "find": "a", "replace": "b", "reason": "clarity"}]}`,
			valid:   true,
		},
		{
			name:    "missing message",
			content: `{"edits": []}`,
			valid:   false,
		},
		{
			name:    "missing edits",
			content: `{"message": "ok"}`,
			valid:   false,
		},
		{
			name:    "edit missing action",
			content: `{"message": "ok", "edits": [{"section": "skills"}]}`,
			valid:   false,
		},
		{
			name:    "unknown action",
			content: `{"message": "ok", "edits": [{"section": "skills", "action": "rewrite"}]}`,
			valid:   false,
		},
		{
			name:    "extra top-level property",
			content: `{"message": "ok", "edits": [], "score": 1}`,
			valid:   false,
		},
		{
			name:    "extra edit property",
			content: `{"message": "ok", "edits": [{"section": "skills", "action": "add", "priority": "high"}]}`,
			valid:   false,
		},
		{
			name:    "message wrong type",
			content: `{"message": 42, "edits": []}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(AssistantResponseSchema, tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.NotEmpty(t, ve.Errors)
			}
		})
	}
}

func TestValidateJobDescription(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
	}{
		{
			name:    "empty object",
			content: `{}`,
			valid:   true,
		},
		{
			name:    "all fields",
			content: `{"title": "Engineer", "company": "Acme", "skills": ["Go"], "requirements": ["5 years"], "experience": "senior", "location": "Remote"}`,
			valid:   true,
		},
		{
			name:    "unknown field",
			content: `{"title": "Engineer", "salary": "100k"}`,
			valid:   false,
		},
		{
			name:    "skills wrong type",
			content: `{"skills": "Go, SQL"}`,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(JobDescriptionSchema, tt.content)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	err := Validate("missing.schema.json", `{}`)
	require.Error(t, err)
	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateMalformedDocument(t *testing.T) {
	err := Validate(AssistantResponseSchema, "not json")
	assert.Error(t, err)
}

func TestValidationErrorMessageListsFields(t *testing.T) {
	err := Validate(AssistantResponseSchema, `{"edits": []}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "message")
}

func TestFormatInstructionsMentionActions(t *testing.T) {
	instructions := ResponseFormatInstructions()
	for _, action := range []string{"replace", "add", "remove"} {
		assert.Contains(t, instructions, action)
	}

	jdInstructions := JobDescriptionFormatInstructions()
	for _, field := range []string{"title", "company", "skills", "requirements"} {
		assert.Contains(t, jdInstructions, field)
	}
}
