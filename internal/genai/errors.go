// Package genai – gateway error values.
//
// The gateway distinguishes exactly two failure modes, because they drive
// different user-facing messages and retry policies:
//
//   - ErrProviderFailure: the provider was unreachable or returned an error
//     (including timeouts and cancellation). Transient; the caller may retry.
//   - ErrMalformedResponse: the provider replied, but not with parseable
//     JSON. Also retryable by the caller.
//
// Both are returned wrapped (fmt.Errorf with %w) so callers can branch with
// errors.Is while the message keeps the underlying diagnostic.
package genai

import "errors"

var (
	// ErrProviderFailure indicates the external model call itself failed.
	ErrProviderFailure = errors.New("model provider call failed")

	// ErrMalformedResponse indicates the model replied with text that does
	// not contain a parseable JSON object.
	ErrMalformedResponse = errors.New("model response is not valid JSON")
)
