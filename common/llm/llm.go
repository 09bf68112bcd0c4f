package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Backend name constants.
const (
	BackendOpenAI    = "openai"
	BackendAnthropic = "anthropic"
)

// Mode selects the response shape requested from a backend.
type Mode string

const (
	// ModeText requests conversational free-form text.
	ModeText Mode = "text"
	// ModeJSON constrains output to a single JSON object using the
	// backend's native structured-output feature.
	ModeJSON Mode = "json"
)

// ErrNotConfigured is returned by a backend whose credential is absent.
// The gateway treats it like any other attempt failure and falls through
// to the next backend without delay.
var ErrNotConfigured = errors.New("API key is not configured")

// Message represents a provider-agnostic conversation message.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Request contains everything a backend needs for one completion attempt.
type Request struct {
	System      string
	Messages    []Message
	Mode        Mode
	SchemaName  string   // Optional: name for structured-output schema (ModeJSON)
	Schema      any      // Optional: JSON schema for strict structured output (ModeJSON)
	MaxTokens   int      // 0 = backend default
	Temperature *float64 // nil = model default
}

// Provider is one LLM backend. Implementations are stateless: no conversation
// state is held across calls, and exactly one upstream attempt is made per
// Complete call (no internal retries).
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (string, error)
}

// Config holds backend configuration.
type Config struct {
	Provider string // "openai" or "anthropic"
	APIKey   string
	BaseURL  string // Optional: custom API endpoint
	Model    string
}

// NewProvider creates a Provider for the configured backend. A missing API key
// is not an error here: the returned provider fails each attempt with
// ErrNotConfigured so the gateway can fall through to its next backend.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case BackendOpenAI:
		return newOpenAIProvider(cfg), nil
	case BackendAnthropic:
		return newAnthropicProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}

// GenerateSchema generates a JSON schema for T, used for strict
// structured-output requests.
func GenerateSchema[T any]() any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Temp returns a pointer to a temperature value.
func Temp(t float64) *float64 {
	return &t
}
