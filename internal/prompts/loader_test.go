package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKnownKeys(t *testing.T) {
	for _, key := range []string{"chat", "section", "ats", "extract-job-description", "repair"} {
		t.Run(key, func(t *testing.T) {
			prompt, err := Get("assistant.json", key)
			require.NoError(t, err)
			assert.NotEmpty(t, prompt)
		})
	}
}

func TestGetUnknownKey(t *testing.T) {
	_, err := Get("assistant.json", "nonexistent")
	assert.Error(t, err)
}

func TestGetUnknownFile(t *testing.T) {
	_, err := Get("missing.json", "chat")
	assert.Error(t, err)
}

func TestMustGetPanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("assistant.json", "nonexistent")
	})
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     map[string]string
		want     string
	}{
		{
			name:     "single placeholder",
			template: "Hello {{.Name}}",
			data:     map[string]string{"Name": "World"},
			want:     "Hello World",
		},
		{
			name:     "repeated placeholder",
			template: "{{.X}} and {{.X}}",
			data:     map[string]string{"X": "a"},
			want:     "a and a",
		},
		{
			name:     "unknown placeholder left intact",
			template: "{{.Missing}}",
			data:     map[string]string{},
			want:     "{{.Missing}}",
		},
		{
			name:     "empty value",
			template: "[{{.V}}]",
			data:     map[string]string{"V": ""},
			want:     "[]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.data))
		})
	}
}

func TestChatPromptPlaceholders(t *testing.T) {
	prompt := MustGet("assistant.json", "chat")
	for _, placeholder := range []string{"{{.ChatHistory}}", "{{.JobDescriptionContext}}", "{{.FormatInstructions}}", "{{.ResumeContext}}", "{{.UserMessage}}"} {
		assert.Contains(t, prompt, placeholder)
	}
}

func TestRepairPromptPlaceholders(t *testing.T) {
	prompt := MustGet("assistant.json", "repair")
	for _, placeholder := range []string{"{{.OriginalPrompt}}", "{{.MalformedOutput}}", "{{.FormatInstructions}}"} {
		assert.Contains(t, prompt, placeholder)
	}
}
