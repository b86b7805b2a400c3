package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// stubGenerator replays queued responses and records the prompts it saw.
type stubGenerator struct {
	responses []string
	errs      []error
	prompts   []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	i := len(g.prompts) - 1
	if i < len(g.errs) && g.errs[i] != nil {
		return "", g.errs[i]
	}
	if i < len(g.responses) {
		return g.responses[i], nil
	}
	return "", errors.New("no response queued")
}

func TestParseResponseValid(t *testing.T) {
	raw := `{"message": "Tightened the summary.", "edits": [{"section": "summary", "action": "replace", "find": "old", "replace": "new"}]}`

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "Tightened the summary.", resp.Message)
	require.Len(t, resp.Edits, 1)
	assert.Equal(t, types.ActionReplace, resp.Edits[0].Action)
}

func TestParseResponseStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"message\": \"ok\", \"edits\": []}\n```"

	resp, err := ParseResponse(raw)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
}

func TestParseResponseNormalizesNilEdits(t *testing.T) {
	// Schema requires edits, so the closest legal case is an empty array.
	resp, err := ParseResponse(`{"message": "ok", "edits": []}`)
	require.NoError(t, err)
	require.NotNil(t, resp.Edits)
	assert.Empty(t, resp.Edits)
}

func TestParseResponseRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "here is my advice: use action verbs"},
		{"missing message", `{"edits": []}`},
		{"missing edits", `{"message": "ok"}`},
		{"unknown action", `{"message": "ok", "edits": [{"section": "skills", "action": "rewrite"}]}`},
		{"edit missing section", `{"message": "ok", "edits": [{"action": "add"}]}`},
		{"unexpected top-level field", `{"message": "ok", "edits": [], "confidence": 0.9}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResponse(tt.raw)
			require.Error(t, err)
			var sve *SchemaViolationError
			assert.ErrorAs(t, err, &sve)
		})
	}
}

func TestParseWithRepairFirstAttemptSucceeds(t *testing.T) {
	gen := &stubGenerator{}
	p := NewParser(gen)

	resp, err := p.ParseWithRepair(context.Background(), "prompt", `{"message": "ok", "edits": []}`)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Message)
	assert.Empty(t, gen.prompts, "no repair call expected")
}

func TestParseWithRepairSecondAttemptSucceeds(t *testing.T) {
	gen := &stubGenerator{responses: []string{`{"message": "repaired", "edits": []}`}}
	p := NewParser(gen)

	resp, err := p.ParseWithRepair(context.Background(), "original prompt", "not json at all")
	require.NoError(t, err)
	assert.Equal(t, "repaired", resp.Message)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "original prompt")
	assert.Contains(t, gen.prompts[0], "not json at all")
}

func TestParseWithRepairSecondFailurePropagates(t *testing.T) {
	gen := &stubGenerator{responses: []string{"still not json"}}
	p := NewParser(gen)

	_, err := p.ParseWithRepair(context.Background(), "prompt", "garbage")
	require.Error(t, err)
	var sve *SchemaViolationError
	assert.ErrorAs(t, err, &sve)
	assert.Len(t, gen.prompts, 1, "exactly one repair attempt")
}

func TestParseWithRepairBackendFailurePropagates(t *testing.T) {
	backendErr := errors.New("backend down")
	gen := &stubGenerator{errs: []error{backendErr}}
	p := NewParser(gen)

	_, err := p.ParseWithRepair(context.Background(), "prompt", "garbage")
	assert.ErrorIs(t, err, backendErr)
}
