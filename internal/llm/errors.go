package llm

import "errors"

// ErrMissingAPIKey is returned before any network call when the provider
// credential is absent. Callers surface it as an authorization failure.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY missing")

// ProviderError wraps a failure of the outbound model call itself.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "provider call failed: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ExtractionError reports a provider response that none of the known
// extraction strategies could read.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return "failed to read model response: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error { return e.Err }
