// Package genai – Gemini gateway client.
//
// This file implements the Client that turns a weak prompt into a PTCF
// enhancement payload by calling Gemini through its OpenAI-compatible
// endpoint. The client is constructed once at startup from configuration
// and injected into the service layer; it is safe for concurrent use.
//
// Contract:
//   - compose a single instruction (system prompt + strict JSON directive +
//     the quoted weak prompt + the exact output schema),
//   - invoke the provider with the request's generation parameters,
//   - never leak the provider's raw error past this boundary: transport
//     failures become ErrProviderFailure, unparsable replies become
//     ErrMalformedResponse,
//   - on success return the parsed top-level fields as-is. Schema validation
//     of individual fields is deliberately left to the caller so "valid JSON,
//     wrong shape" is reported as a distinct error class.
package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultBaseURL is Gemini's OpenAI-compatible API endpoint.
const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// DefaultModel is the Gemini model used for prompt enhancement.
const DefaultModel = "gemini-2.5-flash"

// completionAPI is the narrow slice of the provider client used by Enhance.
// It exists so tests can substitute a fake provider.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config holds the provider settings for a Client.
type Config struct {
	// APIKey authenticates against the provider. Required.
	APIKey string
	// BaseURL overrides the provider endpoint; DefaultBaseURL when empty.
	BaseURL string
	// Model names the provider model; DefaultModel when empty.
	Model string
	// Timeout bounds each Enhance call; 30s when zero.
	Timeout time.Duration
}

// Client calls the generative-model provider and normalizes its replies.
// Construct once with New and share across requests.
type Client struct {
	api     completionAPI
	model   string
	timeout time.Duration
}

// New builds a Client from cfg, applying defaults for unset fields.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = cfg.BaseURL

	return &Client{
		api:     openai.NewClientWithConfig(oc),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Enhancement is the normalized result of a successful provider call.
//
// Fields holds the parsed top-level JSON members exactly as the model
// returned them; the caller decodes each against the agreed schema.
type Enhancement struct {
	Fields     map[string]json.RawMessage
	TokensUsed *int
	Model      string
}

// Enhance transforms weakPrompt into a PTCF enhancement payload.
//
// temperature and maxTokens are passed through to the provider together with
// a fixed nucleus-sampling top-p of 0.9. The call is bounded by the client's
// configured timeout; a timed-out or cancelled call is reported as
// ErrProviderFailure, exactly like a natural transport failure.
func (c *Client) Enhance(ctx context.Context, weakPrompt, systemPrompt string, temperature float64, maxTokens int) (*Enhancement, error) {
	tr := otel.Tracer("genai/Client")
	ctx, span := tr.Start(ctx, "Enhance",
		trace.WithAttributes(
			attribute.String("model", c.model),
			attribute.Float64("temperature", temperature),
			attribute.Int("max_tokens", maxTokens),
		),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildInstruction(weakPrompt, systemPrompt),
			},
		},
		Temperature: float32(temperature),
		MaxTokens:   maxTokens,
		TopP:        0.9,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: provider returned no choices", ErrProviderFailure)
	}

	fields, err := ExtractJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	out := &Enhancement{Fields: fields, Model: c.model}
	if n := resp.Usage.CompletionTokens; n > 0 {
		out.TokensUsed = &n
	}
	return out, nil
}

// buildInstruction composes the full provider instruction: the system
// prompt, a strict output-only-JSON directive, the user's weak prompt
// quoted verbatim, and the exact JSON schema the model must produce.
func buildInstruction(weakPrompt, systemPrompt string) string {
	return fmt.Sprintf(`%s

CRITICAL: Output ONLY valid JSON. No explanations, no markdown, no extra text.

User prompt to transform: %q

Return ONLY this exact JSON format with no other text:
{
  "original_prompt": %q,
  "persona": {"role": "specific role", "expertise": "area of expertise", "perspective": "unique perspective"},
  "task": {"objective": "clear objective", "deliverable": "expected output", "constraints": ["constraint1", "constraint2"]},
  "context": {"technical_background": "relevant background", "key_considerations": ["consideration1"], "audience": "target audience"},
  "format": {"output_style": "style description", "structure": ["element1", "element2"], "tone": "tone"},
  "consolidated_prompt": "the final enhanced prompt text here",
  "improvement_summary": "brief explanation of improvements"
}`, systemPrompt, weakPrompt, weakPrompt)
}
