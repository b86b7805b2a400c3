package assistant

import (
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Canned advice blocks used when every generation backend fails.
const (
	fallbackHelp = "I'd be happy to help you improve your resume! Here are some areas I can assist with:\n\n" +
		"• Skills Section: Make your skills more specific and relevant\n" +
		"• Experience Descriptions: Use strong action verbs and quantify achievements\n" +
		"• ATS Optimization: Ensure your resume passes through Applicant Tracking Systems\n" +
		"• Content Review: Check for clarity, conciseness, and impact\n\n" +
		"What specific area would you like to focus on?"

	fallbackSkills = "For your skills section, consider:\n\n" +
		"• Use Categories: Group skills by type (Languages, Skills, Tools, Frameworks)\n" +
		"• Comma-Separated: List skills within each category with commas\n" +
		"• Be Specific: Instead of 'Python', try 'Python, Django, Flask'\n" +
		"• Match Job Requirements: Align skills with the job description\n" +
		"• Format: Use 'Category: skill1, skill2, skill3' format"

	fallbackExperience = "To improve your experience descriptions:\n\n" +
		"• Use Action Verbs: Start with strong verbs like 'Developed', 'Implemented', 'Led'\n" +
		"• Quantify Achievements: Include numbers, percentages, and metrics\n" +
		"• Focus on Results: Emphasize outcomes and impact\n" +
		"• Use PAR Format: Problem, Action, Result"

	fallbackATS = "For ATS optimization:\n\n" +
		"• Use Standard Section Headers: 'Experience', 'Education', 'Skills'\n" +
		"• Include Keywords: Match job description keywords\n" +
		"• Simple Formatting: Avoid tables, graphics, or complex layouts\n" +
		"• Clear Contact Info: Make sure it's easily readable\n" +
		"• Consistent Formatting: Use standard fonts and bullet points"

	fallbackDefault = "I'm here to help you create a professional resume! I can assist with:\n\n" +
		"• Improving your skills section\n" +
		"• Enhancing experience descriptions\n" +
		"• Optimizing for ATS systems\n" +
		"• Suggesting better action verbs\n" +
		"• Reviewing overall content and structure\n\n" +
		"What would you like to work on?"
)

// Fallback selects a canned advice block by case-insensitive substring match
// on the message, in fixed priority order. Deterministic, no I/O, always
// succeeds; the edits list is always empty.
func Fallback(message string) *types.AssistantResponse {
	lower := strings.ToLower(message)

	var text string
	switch {
	case strings.Contains(lower, "skill"):
		text = fallbackSkills
	case strings.Contains(lower, "experience") || strings.Contains(lower, "work"):
		text = fallbackExperience
	case strings.Contains(lower, "ats") || strings.Contains(lower, "tracking"):
		text = fallbackATS
	case strings.Contains(lower, "help"):
		text = fallbackHelp
	default:
		text = fallbackDefault
	}

	return &types.AssistantResponse{
		Message: text,
		Edits:   []types.ResumeEdit{},
	}
}
