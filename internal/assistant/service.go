package assistant

import (
	"context"
	"log"

	"github.com/jonathan/resume-optimizer/internal/prompts"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// noJobDescriptionPlaceholder is used by the ATS intent when no explicit job
// description text is supplied.
const noJobDescriptionPlaceholder = "No specific job description provided"

// Status describes the assistant's availability for the status endpoint.
type Status struct {
	Available             bool   `json:"available"`
	HasAPIKey             bool   `json:"has_api_key"`
	Model                 string `json:"model"`
	CurrentJobDescription bool   `json:"current_job_description"`
}

// Service orchestrates the three assistant intents over a generation backend
// adapter, the response parser, the job-description detector, and the session
// store. Every intent terminates in a valid AssistantResponse: failures along
// the pipeline produce the deterministic fallback instead of propagating.
type Service struct {
	gen            Generator
	parser         *Parser
	detector       *Detector
	sessions       *Store
	backendName    string
	hasCredentials bool
}

// NewService creates the assistant service. backendName is the name of the
// highest-priority configured backend, reported by Status.
func NewService(gen Generator, backendName string, hasCredentials bool) *Service {
	return &Service{
		gen:            gen,
		parser:         NewParser(gen),
		detector:       NewDetector(gen),
		sessions:       NewStore(),
		backendName:    backendName,
		hasCredentials: hasCredentials,
	}
}

// Sessions exposes the session store, mainly for tests and status reporting.
func (s *Service) Sessions() *Store {
	return s.sessions
}

// Chat handles a free-form chat message. Job-description detection runs
// before context construction and, on a positive classification, replaces the
// session's stored job description and records a system note. The user
// message is appended to history before the history context is rendered, so
// the prompt sees the current message both in its dedicated slot and as the
// last history line. The double inclusion is intentional.
func (s *Service) Chat(ctx context.Context, message string, resume *types.ResumeRecord, userID string) *types.AssistantResponse {
	sess := s.sessions.Get(userID)

	det := s.detector.Detect(ctx, message)
	if det.IsJobDescription {
		sess.ApplyDetection(det.Parsed, "Job description updated. Key points: "+det.Advice)
	}

	history, jd := sess.AppendUser(message)

	template := prompts.MustGet("assistant.json", "chat")
	prompt := prompts.Format(template, map[string]string{
		"ChatHistory":           BuildHistoryContext(history, defaultHistoryWindow),
		"JobDescriptionContext": FormatJobDescription(jd),
		"FormatInstructions":    schemas.ResponseFormatInstructions(),
		"ResumeContext":         BuildResumeContext(resume),
		"UserMessage":           message,
	})

	return s.generateAndRecord(ctx, sess, prompt, message)
}

// AnalyzeSection analyzes a single resume section. No job-description
// detection runs; generation is focused on the supplied section content.
func (s *Service) AnalyzeSection(ctx context.Context, sectionContent, userQuestion string, resume *types.ResumeRecord, userID string) *types.AssistantResponse {
	sess := s.sessions.Get(userID)
	history, jd := sess.Snapshot()

	template := prompts.MustGet("assistant.json", "section")
	prompt := prompts.Format(template, map[string]string{
		"ChatHistory":           BuildHistoryContext(history, defaultHistoryWindow),
		"JobDescriptionContext": FormatJobDescription(jd),
		"FormatInstructions":    schemas.ResponseFormatInstructions(),
		"ResumeContext":         BuildResumeContext(resume),
		"SectionContent":        sectionContent,
		"UserQuestion":          userQuestion,
	})

	return s.generateAndRecord(ctx, sess, prompt, userQuestion)
}

// GenerateATSAdvice produces ATS optimization advice for a resume against an
// explicit job description text. The session-stored job description and
// history still surface in the prompt as secondary context.
func (s *Service) GenerateATSAdvice(ctx context.Context, resume *types.ResumeRecord, jobDescriptionText, userID string) *types.AssistantResponse {
	sess := s.sessions.Get(userID)
	history, jd := sess.Snapshot()

	if jobDescriptionText == "" {
		jobDescriptionText = noJobDescriptionPlaceholder
	}

	template := prompts.MustGet("assistant.json", "ats")
	prompt := prompts.Format(template, map[string]string{
		"ChatHistory":           BuildHistoryContext(history, defaultHistoryWindow),
		"JobDescriptionContext": FormatJobDescription(jd),
		"FormatInstructions":    schemas.ResponseFormatInstructions(),
		"JobDescription":        jobDescriptionText,
		"ResumeContext":         BuildResumeContext(resume),
	})

	return s.generateAndRecord(ctx, sess, prompt, "ATS optimization")
}

// DetectJobDescription runs detection without any session side effects.
func (s *Service) DetectJobDescription(ctx context.Context, text string) *types.DetectionResult {
	return s.detector.Detect(ctx, text)
}

// GetStatus reports the assistant's availability and whether any session
// currently holds a job description.
func (s *Service) GetStatus() Status {
	return Status{
		Available:             s.gen != nil,
		HasAPIKey:             s.hasCredentials,
		Model:                 s.backendName,
		CurrentJobDescription: s.sessions.AnyJobDescription(),
	}
}

// generateAndRecord runs the generate → parse/repair → record-history tail
// shared by all three intents. fallbackKey selects the canned response when
// the pipeline fails.
func (s *Service) generateAndRecord(ctx context.Context, sess *Session, prompt, fallbackKey string) *types.AssistantResponse {
	raw, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		log.Printf("generation failed, using fallback: %v", err)
		return Fallback(fallbackKey)
	}

	resp, err := s.parser.ParseWithRepair(ctx, prompt, raw)
	if err != nil {
		log.Printf("parse failed after repair, using fallback: %v", err)
		return Fallback(fallbackKey)
	}

	sess.AppendAssistant(resp.Message)
	return resp
}
