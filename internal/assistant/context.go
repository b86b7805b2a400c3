package assistant

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// noResumeSentinel is returned when no resume record is supplied.
const noResumeSentinel = "No resume is currently open."

// placeholderMarkers identify unfilled template boilerplate that must not
// leak into prompts.
var placeholderMarkers = []string{"YOUR NAME", "Text (Lead with"}

// BuildResumeContext renders a resume record into plain text for prompt
// injection. Sections with empty or placeholder content are skipped.
func BuildResumeContext(resume *types.ResumeRecord) string {
	if resume == nil {
		return noResumeSentinel
	}

	title := resume.Title
	if title == "" {
		title = "Untitled"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("RESUME: %s\n\n", title))

	for _, section := range resume.Sections {
		content := section.Content.Text
		if strings.TrimSpace(content) == "" {
			continue
		}
		if containsPlaceholder(content) {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n%s\n\n", strings.ToUpper(section.Title), content))
	}

	return sb.String()
}

func containsPlaceholder(content string) bool {
	for _, marker := range placeholderMarkers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}

// FormatJobDescription renders a stored job description into a single
// pipe-delimited summary line: at most 10 skills and 5 requirements plus
// title, company, and location. Returns "" when nil.
func FormatJobDescription(jd *types.JobDescription) string {
	if jd == nil {
		return ""
	}

	var parts []string
	if jd.Title != "" {
		parts = append(parts, "Title: "+jd.Title)
	}
	if jd.Company != "" {
		parts = append(parts, "Company: "+jd.Company)
	}
	if jd.Location != "" {
		parts = append(parts, "Location: "+jd.Location)
	}
	if skills := head(jd.Skills, 10); len(skills) > 0 {
		parts = append(parts, "Key Skills: "+strings.Join(skills, ", "))
	}
	if reqs := head(jd.Requirements, 5); len(reqs) > 0 {
		parts = append(parts, "Requirements: "+strings.Join(reqs, "; "))
	}
	return strings.Join(parts, " | ")
}

// defaultHistoryWindow is the number of recent history entries surfaced into
// any one request's context. Older entries stay in the store.
const defaultHistoryWindow = 6

// BuildHistoryContext renders the most recent maxMessages history entries as
// "Role: text" lines, most-recent-last. Returns "" for empty history.
func BuildHistoryContext(history []HistoryEntry, maxMessages int) string {
	if len(history) == 0 {
		return ""
	}
	if maxMessages > 0 && len(history) > maxMessages {
		history = history[len(history)-maxMessages:]
	}

	lines := make([]string, 0, len(history))
	for _, entry := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", titleRole(entry.Role), entry.Text))
	}
	return strings.Join(lines, "\n")
}

// titleRole capitalizes a role for display ("user" -> "User").
func titleRole(r Role) string {
	s := string(r)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// head returns at most n leading elements of s.
func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
