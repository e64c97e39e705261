package llm

import (
	"context"
)

// ModelClient is a client for a hosted generative language model.
// GenerateContent issues a request and returns the provider's raw response;
// callers pull plain text out of it with ExtractText.
type ModelClient interface {
	GenerateContent(ctx context.Context, prompt string) (any, error)
	Close() error
}
