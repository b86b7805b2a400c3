// Package llm provides generation backend clients and the priority-ordered
// adapter that the assistant calls through.
package llm

import (
	"context"
	"strings"
)

// Backend is an abstraction over a single text-generation provider.
type Backend interface {
	// Generate produces raw text for the given prompt. The context deadline
	// bounds the call; cancellation counts as a backend failure.
	Generate(ctx context.Context, prompt string) (string, error)
	// Name returns the backend's display name for logs and status reporting.
	Name() string
	// Close releases any resources held by the backend.
	Close() error
}

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip potential language identifier on first line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.Contains(firstLine, " ") && !strings.Contains(firstLine, "{") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}
