package llm

import (
	"context"

	"github.com/rs/zerolog"
)

// Gateway issues a single call to the model provider and converts whatever
// response shape comes back into normalized plain text.
type Gateway struct {
	apiKey string
	client ModelClient
	log    zerolog.Logger
}

// NewGateway wires a model client behind the single-attempt policy. The
// client may be nil when no credential is configured; Generate then fails
// fast without touching the network.
func NewGateway(apiKey string, client ModelClient, log zerolog.Logger) *Gateway {
	return &Gateway{apiKey: apiKey, client: client, log: log}
}

// Generate calls the model exactly once and returns normalized text.
// There is no retry, timeout override, or backoff.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" || g.client == nil {
		return "", ErrMissingAPIKey
	}

	resp, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		g.log.Error().Err(err).Msg("[Gateway] model call failed")
		return "", &ProviderError{Err: err}
	}

	text, err := ExtractText(resp)
	if err != nil {
		g.log.Error().Err(err).Msg("[Gateway] could not read model response")
		return "", err
	}

	return NormalizeText(text), nil
}
