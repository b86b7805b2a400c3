package types

// SectionContent holds the rich-text payload of a resume section.
// Only the plain-text projection is consumed by the assistant.
type SectionContent struct {
	Text string `json:"text"`
}

// ResumeSection is one titled section of a resume document.
type ResumeSection struct {
	ID      string         `json:"id,omitempty"`
	Title   string         `json:"title"`
	Content SectionContent `json:"content"`
}

// ResumeRecord is the read-only view of a resume document handed to the
// assistant. It is produced and persisted by the document storage layer.
type ResumeRecord struct {
	Title    string          `json:"title"`
	Sections []ResumeSection `json:"sections"`
}
