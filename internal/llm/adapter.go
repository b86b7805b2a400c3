package llm

import (
	"context"
	"log"
)

// Adapter holds an ordered list of configured backends and tries each in
// priority order on every call. Availability is decided once at construction
// from credential presence; the order never changes afterwards.
type Adapter struct {
	backends []Backend
}

// NewAdapter creates an adapter over the given backends in priority order.
// At least one backend is required.
func NewAdapter(backends ...Backend) (*Adapter, error) {
	if len(backends) == 0 {
		return nil, &ConfigurationError{Message: "no generation backends configured"}
	}
	return &Adapter{backends: backends}, nil
}

// NewAdapterFromCredentials builds the backend list from credential presence:
// OpenAI first, Gemini second. Returns ConfigurationError when neither
// credential is set.
func NewAdapterFromCredentials(ctx context.Context, creds Credentials) (*Adapter, error) {
	var backends []Backend

	if creds.OpenAIKey != "" {
		b, err := NewOpenAIBackend(creds.OpenAIKey, creds.OpenAIModel)
		if err != nil {
			log.Printf("OpenAI backend init failed: %v", err)
		} else {
			backends = append(backends, b)
		}
	}

	if creds.GeminiKey != "" {
		b, err := NewGeminiBackend(ctx, creds.GeminiKey, creds.GeminiModel)
		if err != nil {
			log.Printf("Gemini backend init failed: %v", err)
		} else {
			backends = append(backends, b)
		}
	}

	return NewAdapter(backends...)
}

// Generate tries each configured backend in order, returning the first
// successful raw text. Every per-backend failure is collected; the aggregate
// error is returned only when all backends fail.
func (a *Adapter) Generate(ctx context.Context, prompt string) (string, error) {
	var attempts []*BackendError

	for _, backend := range a.backends {
		text, err := backend.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		attempts = append(attempts, &BackendError{Backend: backend.Name(), Cause: err})
		log.Printf("backend %s failed, trying next: %v", backend.Name(), err)

		// A dead context fails every remaining backend the same way.
		if ctx.Err() != nil {
			break
		}
	}

	return "", &AllBackendsError{Attempts: attempts}
}

// ActiveBackendName returns the name of the highest-priority backend.
func (a *Adapter) ActiveBackendName() string {
	if len(a.backends) == 0 {
		return "None"
	}
	return a.backends[0].Name()
}

// Close releases resources held by all backends.
func (a *Adapter) Close() error {
	var firstErr error
	for _, b := range a.backends {
		if err := b.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
