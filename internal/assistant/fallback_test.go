package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackKeywordSelection(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"skill keyword", "How do I improve my SKILLS section?", fallbackSkills},
		{"experience keyword", "Review my experience bullets", fallbackExperience},
		{"work keyword", "Tips for my work history", fallbackExperience},
		{"ats keyword", "Is my resume ATS friendly?", fallbackATS},
		{"tracking keyword", "applicant tracking systems", fallbackATS},
		{"help keyword", "Can you help me?", fallbackHelp},
		{"no keyword", "Tell me something", fallbackDefault},
		{"empty message", "", fallbackDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.message)
			assert.Equal(t, tt.want, got.Message)
		})
	}
}

func TestFallbackSkillBeatsExperience(t *testing.T) {
	// Priority order is fixed: skill wins when both keywords appear.
	got := Fallback("skills from my work experience")
	assert.Equal(t, fallbackSkills, got.Message)
}

func TestFallbackEditsAlwaysEmpty(t *testing.T) {
	for _, message := range []string{"skills", "experience", "ats", "help", "other"} {
		got := Fallback(message)
		require.NotNil(t, got.Edits)
		assert.Empty(t, got.Edits)
	}
}
