package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/types"
)

func TestPrintDetectionResultPositive(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDetectionResult(&types.DetectionResult{
		IsJobDescription: true,
		Parsed: &types.JobDescription{
			Title:   "Senior Engineer",
			Company: "Acme Corp",
			Skills:  []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "Terraform", "AWS"},
		},
		Advice: "Include these skills: Go, PostgreSQL",
	})

	output := buf.String()
	assert.Contains(t, output, "DETECTION RESULT")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Acme Corp")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "Include these skills")
}

func TestPrintDetectionResultNegative(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDetectionResult(&types.DetectionResult{IsJobDescription: false})

	assert.Contains(t, buf.String(), "Not recognized as a job description.")
}

func TestPrintDetectionResultNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDetectionResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintStatus(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStatus(assistant.Status{
		Available: true,
		HasAPIKey: true,
		Model:     "OpenAI",
	})

	output := buf.String()
	assert.Contains(t, output, "ASSISTANT STATUS")
	assert.Contains(t, output, "OpenAI")
	assert.Contains(t, output, "Available:        yes")
	assert.Contains(t, output, "Job description:  no")
}

func TestPrintEdits(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEdits(&types.AssistantResponse{
		Message: "Tightened the summary.",
		Edits: []types.ResumeEdit{
			{Section: "summary", Action: types.ActionReplace, Reason: "Lead with impact"},
			{Section: "skills", Action: types.ActionAdd},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "SUGGESTED EDITS")
	assert.Contains(t, output, "[replace] summary")
	assert.Contains(t, output, "Lead with impact")
	assert.Contains(t, output, "[add] skills")
}

func TestPrintEditsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEdits(&types.AssistantResponse{Message: "No changes needed."})

	assert.Empty(t, buf.String())
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDetectionResult(&types.DetectionResult{
		IsJobDescription: true,
		Advice:           strings.Repeat("x", 200),
	})

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth)
	}
}
