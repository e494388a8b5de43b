// Package genai wraps the external generative-model provider behind a small
// gateway API. This file implements JSON extraction from raw model output.
//
// Models are instructed to emit only JSON, but frequently wrap the object in
// prose or markdown code fences anyway. ExtractJSON recovers the embedded
// object with a brace-boundary scan: take everything between the first '{'
// and the last '}' and parse it. The scan tolerates leading/trailing text
// without understanding JSON grammar; it is not robust to multiple top-level
// objects or stray braces outside the real object, which is acceptable under
// the controlled instruction template.
package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON locates and parses the JSON object embedded in text.
//
// It returns the object's top-level fields as raw JSON values so the caller
// can decode each against its expected schema. When no '{'/'}' pair exists,
// or the bounded substring is not valid JSON, it returns an error wrapping
// ErrMalformedResponse with the parser diagnostic.
func ExtractJSON(text string) (map[string]json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON object found in model output", ErrMalformedResponse)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return fields, nil
}
