package llm

import (
	"encoding/json"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// extractorFunc attempts to pull plain text out of one known response shape.
// Extractors are pure and report whether they handled the value.
type extractorFunc func(resp any) (string, bool)

// extractors is the fixed priority order in which response shapes are tried.
var extractors = []extractorFunc{
	extractTextAccessor,
	extractString,
	extractOutputText,
	extractSegments,
	extractGeminiParts,
}

// ExtractText converts whatever shape the provider returned into plain text.
// Each known shape is tried in order; as a last resort the whole response is
// serialized as JSON. An ExtractionError is returned only when even that fails.
func ExtractText(resp any) (string, error) {
	for _, extract := range extractors {
		if text, ok := extract(resp); ok {
			return text, nil
		}
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	return string(data), nil
}

// extractTextAccessor handles responses exposing a Text() accessor.
func extractTextAccessor(resp any) (string, bool) {
	if v, ok := resp.(interface{ Text() string }); ok {
		return v.Text(), true
	}
	return "", false
}

// extractString handles responses that are already a plain string.
func extractString(resp any) (string, bool) {
	if v, ok := resp.(string); ok {
		return v, true
	}
	return "", false
}

// extractOutputText handles responses with a named output-text field.
func extractOutputText(resp any) (string, bool) {
	m, ok := resp.(map[string]any)
	if !ok {
		return "", false
	}
	if v, ok := m["outputText"].(string); ok {
		return v, true
	}
	return "", false
}

// extractSegments handles responses that are a list of output segments,
// each either a plain string, a map with a "text" field, or a map with
// nested "parts".
func extractSegments(resp any) (string, bool) {
	segments, ok := resp.([]any)
	if !ok {
		return "", false
	}

	var texts []string
	for _, seg := range segments {
		switch v := seg.(type) {
		case string:
			texts = append(texts, v)
		case map[string]any:
			if text, ok := v["text"].(string); ok {
				texts = append(texts, text)
			} else if parts, ok := v["parts"].([]any); ok {
				if nested, ok := extractSegments(parts); ok {
					texts = append(texts, nested)
				}
			}
		}
	}
	if len(texts) == 0 {
		return "", false
	}
	return strings.Join(texts, "\n"), true
}

// extractGeminiParts handles the typed Gemini SDK response by collecting the
// text parts of the first candidate.
func extractGeminiParts(resp any) (string, bool) {
	r, ok := resp.(*genai.GenerateContentResponse)
	if !ok {
		return "", false
	}
	if len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return "", false
	}

	var texts []string
	for _, part := range r.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			texts = append(texts, string(text))
		}
	}
	if len(texts) == 0 {
		return "", false
	}
	return strings.Join(texts, "\n"), true
}
