// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDetectionResult outputs a human-readable summary of a job-description
// detection run.
func (p *Printer) PrintDetectionResult(result *types.DetectionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if !result.IsJobDescription {
		sb.WriteString("Not recognized as a job description.")
		p.printBox("DETECTION RESULT", sb.String())
		return
	}

	sb.WriteString("Classified as a job description.\n")

	if jd := result.Parsed; jd != nil {
		sb.WriteString("\n")
		if jd.Title != "" {
			sb.WriteString(fmt.Sprintf("Title:    %s\n", jd.Title))
		}
		if jd.Company != "" {
			sb.WriteString(fmt.Sprintf("Company:  %s\n", jd.Company))
		}
		if jd.Location != "" {
			sb.WriteString(fmt.Sprintf("Location: %s\n", jd.Location))
		}

		if len(jd.Skills) > 0 {
			sb.WriteString("\nKey Skills:\n")
			count := min(len(jd.Skills), maxItemsToShow)
			for i := 0; i < count; i++ {
				sb.WriteString(fmt.Sprintf("  • %s\n", jd.Skills[i]))
			}
			if len(jd.Skills) > maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.Skills)-maxItemsToShow))
			}
		}

		if len(jd.Requirements) > 0 {
			sb.WriteString("\nRequirements:\n")
			count := min(len(jd.Requirements), 3)
			for i := 0; i < count; i++ {
				req := jd.Requirements[i]
				if len(req) > 50 {
					req = req[:47] + "..."
				}
				sb.WriteString(fmt.Sprintf("  • %s\n", req))
			}
			if len(jd.Requirements) > 3 {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(jd.Requirements)-3))
			}
		}
	}

	if result.Advice != "" {
		sb.WriteString("\nAdvice:\n")
		sb.WriteString("  " + result.Advice + "\n")
	}

	p.printBox("DETECTION RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatus outputs the assistant availability summary.
func (p *Printer) PrintStatus(status assistant.Status) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Available:        %s\n", yesNo(status.Available)))
	sb.WriteString(fmt.Sprintf("API key set:      %s\n", yesNo(status.HasAPIKey)))
	sb.WriteString(fmt.Sprintf("Backend:          %s\n", status.Model))
	sb.WriteString(fmt.Sprintf("Job description:  %s", yesNo(status.CurrentJobDescription)))

	p.printBox("ASSISTANT STATUS", sb.String())
}

// PrintEdits outputs the edit suggestions from an assistant response.
func (p *Printer) PrintEdits(resp *types.AssistantResponse) {
	if resp == nil || len(resp.Edits) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Suggested %d edits:\n\n", len(resp.Edits)))

	count := min(len(resp.Edits), maxItemsToShow)
	for i := 0; i < count; i++ {
		edit := resp.Edits[i]
		sb.WriteString(fmt.Sprintf("• [%s] %s\n", edit.Action, edit.Section))
		if edit.Reason != "" {
			reason := edit.Reason
			if len(reason) > 50 {
				reason = reason[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(resp.Edits) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more edits", len(resp.Edits)-maxItemsToShow))
	}

	p.printBox("SUGGESTED EDITS", sb.String())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
