package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-optimizer/internal/assistant"
	"github.com/jonathan/resume-optimizer/internal/server/middleware"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// scriptedGenerator replays queued generation responses.
type scriptedGenerator struct {
	responses []string
	err       error
	calls     int
}

func (g *scriptedGenerator) Generate(_ context.Context, _ string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	if g.calls <= len(g.responses) {
		return g.responses[g.calls-1], nil
	}
	return "", errors.New("no response queued")
}

func newAIServer(gen assistant.Generator) *Server {
	return &Server{assistant: assistant.NewService(gen, "OpenAI", true)}
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
}

func TestHandleAIStatusAvailable(t *testing.T) {
	s := newAIServer(&scriptedGenerator{})
	rec := httptest.NewRecorder()

	s.handleAIStatus(rec, authedRequest("GET", "/api/ai/status", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var status assistant.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.True(t, status.Available)
	assert.Equal(t, "OpenAI", status.Model)
}

func TestHandleAIStatusNoAssistant(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.handleAIStatus(rec, authedRequest("GET", "/api/ai/status", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var status assistant.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.False(t, status.Available)
	assert.Equal(t, "None", status.Model)
}

func TestHandleAIChatNoAssistant(t *testing.T) {
	s := &Server{}
	rec := httptest.NewRecorder()

	s.handleAIChat(rec, authedRequest("POST", "/api/ai/chat", `{"message": "hi"}`))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleAIChatUnauthenticated(t *testing.T) {
	s := newAIServer(&scriptedGenerator{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/ai/chat", strings.NewReader(`{"message": "hi"}`))

	s.handleAIChat(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleAIChatSuccess(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"message": "Here is advice.", "edits": []}`}}
	s := newAIServer(gen)
	rec := httptest.NewRecorder()

	body := `{"message": "How can I improve?", "resume": {"title": "My Resume", "sections": []}}`
	s.handleAIChat(rec, authedRequest("POST", "/api/ai/chat", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Here is advice.", resp.Message)
	assert.NotNil(t, resp.Edits)
}

func TestHandleAIChatBackendFailureStillResponds(t *testing.T) {
	gen := &scriptedGenerator{err: errors.New("all backends down")}
	s := newAIServer(gen)
	rec := httptest.NewRecorder()

	s.handleAIChat(rec, authedRequest("POST", "/api/ai/chat", `{"message": "help with my skills"}`))

	// Fallback keeps the endpoint at 200 with a canned response.
	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, resp.Edits)
}

func TestHandleAIChatValidation(t *testing.T) {
	s := newAIServer(&scriptedGenerator{})

	t.Run("empty message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleAIChat(rec, authedRequest("POST", "/api/ai/chat", `{"message": ""}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.handleAIChat(rec, authedRequest("POST", "/api/ai/chat", "{not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleAISection(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"message": "Stronger verbs needed.", "edits": []}`}}
	s := newAIServer(gen)
	rec := httptest.NewRecorder()

	body := `{"section_content": "Worked on things.", "user_question": "Is this strong?"}`
	s.handleAISection(rec, authedRequest("POST", "/api/ai/section", body))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Stronger verbs needed.", resp.Message)
}

func TestHandleAISectionRequiresContent(t *testing.T) {
	s := newAIServer(&scriptedGenerator{})
	rec := httptest.NewRecorder()

	s.handleAISection(rec, authedRequest("POST", "/api/ai/section", `{"user_question": "hm?"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAIATS(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"message": "Add keywords.", "edits": []}`}}
	s := newAIServer(gen)
	rec := httptest.NewRecorder()

	s.handleAIATS(rec, authedRequest("POST", "/api/ai/ats", `{"job_description": "Go engineer"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp types.AssistantResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Add keywords.", resp.Message)
}

func TestHandleAIDetectJob(t *testing.T) {
	gen := &scriptedGenerator{responses: []string{`{"title": "Engineer", "skills": ["Go"]}`}}
	s := newAIServer(gen)
	rec := httptest.NewRecorder()

	text := `We are hiring for a role with responsibilities and requirements: 5 years of experience and Go skills.`
	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)

	s.handleAIDetectJob(rec, authedRequest("POST", "/api/ai/detect-job", string(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.DetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.IsJobDescription)
	require.NotNil(t, result.Parsed)
	assert.Equal(t, "Engineer", result.Parsed.Title)
}

func TestHandleAIDetectJobNegative(t *testing.T) {
	s := newAIServer(&scriptedGenerator{})
	rec := httptest.NewRecorder()

	s.handleAIDetectJob(rec, authedRequest("POST", "/api/ai/detect-job", `{"text": "short note"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var result types.DetectionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.IsJobDescription)
}
