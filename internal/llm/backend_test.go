package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json untouched",
			input: `{"message": "ok"}`,
			want:  `{"message": "ok"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"message\": \"ok\"}\n```",
			want:  `{"message": "ok"}`,
		},
		{
			name:  "generic fence",
			input: "```\n{\"message\": \"ok\"}\n```",
			want:  `{"message": "ok"}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"message\": \"ok\"}\n```",
			want:  `{"message": "ok"}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n{\"a\": 1}\n```  \n",
			want:  `{"a": 1}`,
		},
		{
			name:  "fence with json on same line",
			input: "```{\"message\": \"ok\"}```",
			want:  `{"message": "ok"}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	creds := CredentialsFromEnv()
	assert.Equal(t, "sk-test", creds.OpenAIKey)
	assert.Equal(t, "gpt-4o-mini", creds.OpenAIModel)
	assert.True(t, creds.HasAny())
}

func TestCredentialsHasAny(t *testing.T) {
	assert.False(t, Credentials{}.HasAny())
	assert.True(t, Credentials{OpenAIKey: "k"}.HasAny())
	assert.True(t, Credentials{GeminiKey: "k"}.HasAny())
}
