package assistant

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-optimizer/internal/llm"
	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// ParseResponse attempts a strict parse of raw generation output into an
// AssistantResponse. Returns *SchemaViolationError when the output does not
// conform to the response schema or carries an unknown edit action.
func ParseResponse(raw string) (*types.AssistantResponse, error) {
	raw = llm.CleanJSONBlock(raw)

	if err := schemas.Validate(schemas.AssistantResponseSchema, raw); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	var resp types.AssistantResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}
	if err := resp.Validate(); err != nil {
		return nil, &SchemaViolationError{Cause: err}
	}

	if resp.Edits == nil {
		resp.Edits = []types.ResumeEdit{}
	}
	return &resp, nil
}

// Parser parses generation output with a single bounded repair pass.
type Parser struct {
	gen Generator
}

// NewParser creates a parser that issues repair attempts through the given
// generator.
func NewParser(gen Generator) *Parser {
	return &Parser{gen: gen}
}

// ParseWithRepair strict-parses raw output. On a schema violation it issues
// exactly one corrective round-trip supplying the original prompt and the
// malformed output; a second parse failure (or a backend failure during the
// repair call) propagates to the caller, which must fall back.
func (p *Parser) ParseWithRepair(ctx context.Context, originalPrompt, raw string) (*types.AssistantResponse, error) {
	resp, err := ParseResponse(raw)
	if err == nil {
		return resp, nil
	}

	repaired, genErr := p.gen.Generate(ctx, buildRepairPrompt(originalPrompt, raw))
	if genErr != nil {
		return nil, genErr
	}

	return ParseResponse(repaired)
}

// buildRepairPrompt constructs the corrective prompt from the original
// request and the malformed output.
func buildRepairPrompt(originalPrompt, malformed string) string {
	template := prompts.MustGet("assistant.json", "repair")
	return prompts.Format(template, map[string]string{
		"OriginalPrompt":     originalPrompt,
		"MalformedOutput":    malformed,
		"FormatInstructions": schemas.ResponseFormatInstructions(),
	})
}
