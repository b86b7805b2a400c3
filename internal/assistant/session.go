// Package assistant implements the AI response pipeline: prompt construction
// with injected context, structured-output parsing with repair, per-user
// ephemeral session state, and job-description detection.
package assistant

import (
	"sync"

	"github.com/jonathan/resume-optimizer/internal/types"
)

// Role identifies the author of a history entry.
type Role string

// History entry roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// HistoryEntry is one conversational turn in a session's history.
type HistoryEntry struct {
	Role Role
	Text string
}

// anonymousBucket is the shared identity used when no user ID is supplied.
const anonymousBucket = "__anon__"

// Session holds one identity's ephemeral conversational state. History is
// append-only; the stored job description is replaced wholesale, never
// mutated in place. Mutations for the same identity are serialized by the
// session's own mutex so concurrent requests cannot interleave.
type Session struct {
	mu             sync.Mutex
	jobDescription *types.JobDescription
	history        []HistoryEntry
}

// ApplyDetection replaces the session's job description and records a system
// note, as a single atomic step. The replacement happens even when parsing
// failed (parsed is nil): the previous job description no longer applies.
func (s *Session) ApplyDetection(parsed *types.JobDescription, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobDescription = parsed
	s.history = append(s.history, HistoryEntry{Role: RoleSystem, Text: note})
}

// AppendUser appends a user message and returns a snapshot of the history and
// job description as of that append. The snapshot includes the message just
// appended.
func (s *Session) AppendUser(text string) ([]HistoryEntry, *types.JobDescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, HistoryEntry{Role: RoleUser, Text: text})
	return s.snapshotLocked()
}

// AppendAssistant appends an assistant message to the history.
func (s *Session) AppendAssistant(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, HistoryEntry{Role: RoleAssistant, Text: text})
}

// Snapshot returns copies of the history and the current job description.
func (s *Session) Snapshot() ([]HistoryEntry, *types.JobDescription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() ([]HistoryEntry, *types.JobDescription) {
	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return history, s.jobDescription
}

// hasJobDescription reports whether a parsed job description is stored.
func (s *Session) hasJobDescription() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobDescription != nil
}

// Store is a process-wide mapping from user identity to session state.
// Sessions are created lazily on first reference and live for the process
// lifetime; there is no eviction policy, so long-running deployments
// accumulate history without bound. Callers can watch Len for growth.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Get returns the session for the given identity, creating it if absent.
// An empty identity maps to the shared anonymous bucket.
func (st *Store) Get(userID string) *Session {
	if userID == "" {
		userID = anonymousBucket
	}

	st.mu.RLock()
	sess, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return sess
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if sess, ok := st.sessions[userID]; ok {
		return sess
	}
	sess = &Session{}
	st.sessions[userID] = sess
	return sess
}

// Len returns the number of sessions currently held.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// AnyJobDescription reports whether any session holds a parsed job description.
func (st *Store) AnyJobDescription() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	for _, sess := range st.sessions {
		if sess.hasJobDescription() {
			return true
		}
	}
	return false
}
