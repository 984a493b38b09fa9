// Package llm abstracts the text-generation backends used to narrate
// disclosure records into briefing scripts.
package llm

import (
	"context"
)

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific formats
	AdaptInstructions(rawInstructions string) string
}

// StubProvider returns a fixed response. Used in tests and dry runs where
// no API key is available.
type StubProvider struct {
	Response string
}

func (p *StubProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	return p.Response, nil
}

func (p *StubProvider) AdaptInstructions(raw string) string {
	return raw
}
