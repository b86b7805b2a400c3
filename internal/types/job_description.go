package types

// JobDescription is the structured form of a detected job posting.
// All fields are optional in practice; absent fields render as empty.
type JobDescription struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
	Experience   string   `json:"experience"`
	Location     string   `json:"location"`
}

// DetectionResult is the outcome of job-description detection.
// Parsed is nil when the text is not a job description, or when it was
// detected but extraction failed (Advice then carries a fixed notice).
type DetectionResult struct {
	IsJobDescription bool            `json:"is_job_description"`
	Parsed           *JobDescription `json:"parsed,omitempty"`
	Advice           string          `json:"advice,omitempty"`
}
