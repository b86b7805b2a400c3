package llm

import "os"

// Default model names for each provider.
const (
	DefaultOpenAIModel = "gpt-4o"
	DefaultGeminiModel = "gemini-1.5-flash"
)

// Credentials holds API keys and model overrides read from the environment.
type Credentials struct {
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
}

// CredentialsFromEnv reads backend credentials from environment variables.
// Model names fall back to provider defaults when unset.
func CredentialsFromEnv() Credentials {
	return Credentials{
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("OPENAI_MODEL"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("GEMINI_MODEL"),
	}
}

// HasAny reports whether at least one backend credential is present.
func (c Credentials) HasAny() bool {
	return c.OpenAIKey != "" || c.GeminiKey != ""
}
