package assistant

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// minDetectionLength is the minimum text length considered for detection.
const minDetectionLength = 50

// detectionThreshold is the number of keyword matches required to classify
// text as a job description.
const detectionThreshold = 3

// extractionFailedAdvice is reported when the text was classified as a job
// description but structured extraction failed.
const extractionFailedAdvice = "Job description detected but parsing failed."

// jobKeywords is the fixed keyword set matched case-insensitively against
// candidate text.
var jobKeywords = []string{
	"job description", "position", "role", "responsibilities", "requirements",
	"qualifications", "experience", "skills", "duties", "minimum", "preferred",
	"bachelor", "degree", "years of experience", "salary", "benefits",
}

// Generator produces raw text for a prompt. Satisfied by *llm.Adapter.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Detector classifies text as a job posting and extracts its structure.
type Detector struct {
	gen Generator
}

// NewDetector creates a detector that extracts through the given generator.
func NewDetector(gen Generator) *Detector {
	return &Detector{gen: gen}
}

// Detect decides whether text is a job posting. Texts shorter than 50
// characters or with fewer than 3 keyword matches are rejected. On a positive
// classification the generator is invoked to extract a structured record; an
// extraction failure still reports detection, with a fixed advisory message.
// Detect never returns an error.
func (d *Detector) Detect(ctx context.Context, text string) *types.DetectionResult {
	if len(text) < minDetectionLength {
		return &types.DetectionResult{IsJobDescription: false}
	}

	if countKeywordMatches(text) < detectionThreshold {
		return &types.DetectionResult{IsJobDescription: false}
	}

	parsed, err := d.extract(ctx, text)
	if err != nil {
		log.Printf("job description extraction failed: %v", err)
		return &types.DetectionResult{
			IsJobDescription: true,
			Advice:           extractionFailedAdvice,
		}
	}

	return &types.DetectionResult{
		IsJobDescription: true,
		Parsed:           parsed,
		Advice:           buildAdvice(parsed),
	}
}

// countKeywordMatches counts distinct keywords present in the text.
func countKeywordMatches(text string) int {
	lower := strings.ToLower(text)
	matches := 0
	for _, keyword := range jobKeywords {
		if strings.Contains(lower, keyword) {
			matches++
		}
	}
	return matches
}

// extract runs the extraction prompt and validates the result against the
// job description schema.
func (d *Detector) extract(ctx context.Context, text string) (*types.JobDescription, error) {
	if d.gen == nil {
		return nil, &ExtractionError{Cause: errNoGenerator}
	}

	template := prompts.MustGet("assistant.json", "extract-job-description")
	prompt := prompts.Format(template, map[string]string{
		"FormatInstructions": schemas.JobDescriptionFormatInstructions(),
		"JobText":            text,
	})

	raw, err := d.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, &ExtractionError{Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if err := schemas.Validate(schemas.JobDescriptionSchema, raw); err != nil {
		return nil, &ExtractionError{Cause: err}
	}

	var jd types.JobDescription
	if err := json.Unmarshal([]byte(raw), &jd); err != nil {
		return nil, &ExtractionError{Cause: err}
	}

	return &jd, nil
}

// buildAdvice synthesizes human-readable tailoring advice from an extracted
// job description. Clauses for empty fields are omitted.
func buildAdvice(jd *types.JobDescription) string {
	var parts []string
	if len(jd.Skills) > 0 {
		parts = append(parts, "Include these skills: "+strings.Join(head(jd.Skills, 5), ", "))
	}
	if jd.Title != "" {
		parts = append(parts, "Tailor experience for: "+jd.Title)
	}
	if len(jd.Requirements) > 0 {
		parts = append(parts, "Address requirements: "+strings.Join(head(jd.Requirements, 3), "; "))
	}
	return strings.Join(parts, ". ")
}
