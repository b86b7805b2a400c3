package schemas

// ResponseFormatInstructions returns the canonical natural-language description
// of the AssistantResponse shape. It is embedded in generation prompts so the
// backend is told how to format its own output. The string is a constant so the
// same schema always yields the same instructions.
func ResponseFormatInstructions() string {
	return `Output ONLY a single JSON object with this exact structure:
{
  "message": "your advice and suggestions as a string",
  "edits": [
    {
      "section": "resume section name (e.g., 'Skills', 'Experience')",
      "action": "replace" | "add" | "remove",
      "find": "text to find (required for replace/remove, empty for add)",
      "replace": "replacement text (used only for replace)",
      "addition": "text to insert (used only for add)",
      "reason": "brief explanation of the change (max 225 chars)"
    }
  ]
}
The "edits" array may be empty. Do not output markdown, code fences, or any text outside the JSON object.`
}

// JobDescriptionFormatInstructions returns the canonical description of the
// JobDescription extraction shape.
func JobDescriptionFormatInstructions() string {
	return `Output ONLY a single JSON object with this exact structure:
{
  "title": "job title",
  "company": "company name",
  "skills": ["required skill", ...],
  "requirements": ["job requirement", ...],
  "experience": "experience level",
  "location": "job location"
}
Use empty strings or empty arrays for information not present in the posting. Do not output markdown, code fences, or any text outside the JSON object.`
}
