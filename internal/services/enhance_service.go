// Package services – EnhanceService
//
// This file implements EnhanceService, the application-level component that
// owns the prompt-enhancement flow. It validates inputs, resolves the
// optional template to a system prompt, persists the Prompt row before the
// provider call (so a failed enhancement still leaves an auditable
// submission), invokes the model gateway, and maps the returned JSON fields
// onto the structured EnhancedPrompt record.
//
// Failure classes are kept distinct end to end: gateway errors
// (genai.ErrProviderFailure, genai.ErrMalformedResponse) pass through
// unchanged, while a syntactically valid reply missing an agreed field is
// reported as *ResponseShapeError: the JSON was fine, the contract was not.
//
// Observability: public methods are OpenTelemetry-instrumented; spans
// include user identifiers and pagination parameters where applicable.

package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/genai"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Request field constraints and defaults.
const (
	MinPromptRunes = 5
	MaxPromptRunes = 5000

	MinTemperature     = 0.1
	MaxTemperature     = 1.0
	DefaultTemperature = 0.3

	MinMaxTokens     = 256
	MaxMaxTokens     = 4096
	DefaultMaxTokens = 2048
)

// defaultSystemPrompt is used when neither a template nor a custom system
// prompt is supplied.
const defaultSystemPrompt = "You are a prompt engineer specializing in PTCF framework optimization."

// Enhancer is the model-gateway contract consumed by EnhanceService.
// Implementations must be safe for concurrent use and honor the provided
// context for cancellation and timeouts.
type Enhancer interface {
	// Enhance transforms a weak prompt into a PTCF enhancement payload.
	Enhance(ctx context.Context, weakPrompt, systemPrompt string, temperature float64, maxTokens int) (*genai.Enhancement, error)
}

// EnhanceInput is the validated-at-service-level payload for an enhancement
// request. Temperature and MaxTokens are pointers so "absent" (use default)
// is distinguishable from an explicit out-of-range zero.
type EnhanceInput struct {
	PromptText         string
	TemplateID         *string
	Temperature        *float64
	MaxTokens          *int
	CustomSystemPrompt string
}

// EnhanceResult is the composed view returned to the transport layer after
// a successful enhancement.
type EnhanceResult struct {
	ID           string
	OriginalText string
	Enhanced     *domain.EnhancedPrompt
	CreatedAt    time.Time
}

// EnhanceService coordinates the enhancement flow and history retrieval.
type EnhanceService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Gateway is the model gateway used to produce enhancements.
	Gateway Enhancer
}

// NewEnhanceService constructs an EnhanceService.
func NewEnhanceService(db *gorm.DB, gw Enhancer) *EnhanceService {
	return &EnhanceService{DB: db, Gateway: gw}
}

// Enhance runs the full enhancement flow for userID.
//
// Order of operations matters and is part of the contract:
//  1. field validation (*ValidationError on violation),
//  2. template resolution (ErrTemplateNotFound before anything is persisted),
//  3. Prompt row creation, before the provider call,
//  4. gateway invocation with elapsed-time measurement,
//  5. field mapping and EnhancedPrompt creation (only on success).
//
// A gateway failure leaves the Prompt row without an enhancement; it is
// never rolled back.
func (s *EnhanceService) Enhance(ctx context.Context, userID string, in EnhanceInput) (*EnhanceResult, error) {
	tr := otel.Tracer("services/EnhanceService")
	ctx, span := tr.Start(ctx, "Enhance",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	temperature, maxTokens, err := s.validate(&in)
	if err != nil {
		return nil, err
	}

	// Resolve template before creating any rows, so an unknown template id
	// fails without side effects.
	systemPrompt := defaultSystemPrompt
	var templateID *string
	if in.TemplateID != nil && *in.TemplateID != "" {
		t, err := repo.GetTemplate(ctx, s.DB, *in.TemplateID)
		if err != nil {
			if isNotFound(err) {
				return nil, ErrTemplateNotFound
			}
			return nil, err
		}
		systemPrompt = t.SystemPrompt
		templateID = &t.ID
	}
	// An explicit custom system prompt always wins over the template's.
	if p := strings.TrimSpace(in.CustomSystemPrompt); p != "" {
		systemPrompt = p
	}

	prompt := &domain.Prompt{
		UserID:       userID,
		OriginalText: in.PromptText,
		TemplateID:   templateID,
		Temperature:  temperature,
		MaxTokens:    maxTokens,
	}
	if err := repo.CreatePrompt(ctx, s.DB, prompt); err != nil {
		return nil, err
	}

	start := time.Now()
	payload, err := s.Gateway.Enhance(ctx, in.PromptText, systemPrompt, temperature, maxTokens)
	elapsed := time.Since(start)
	if err != nil {
		// The Prompt row stays behind as an audit trail of the attempt.
		return nil, err
	}

	enhanced, err := mapEnhancement(payload)
	if err != nil {
		return nil, err
	}
	enhanced.PromptID = prompt.ID
	enhanced.ProcessingTimeMs = int(elapsed.Milliseconds())

	if err := repo.CreateEnhanced(ctx, s.DB, enhanced); err != nil {
		return nil, err
	}

	return &EnhanceResult{
		ID:           prompt.ID,
		OriginalText: prompt.OriginalText,
		Enhanced:     enhanced,
		CreatedAt:    prompt.CreatedAt,
	}, nil
}

// Get returns a single prompt owned by userID with its enhancement.
func (s *EnhanceService) Get(ctx context.Context, userID, promptID string) (*domain.Prompt, error) {
	p, err := repo.GetPrompt(ctx, s.DB, promptID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return p, nil
}

// History returns a page of the user's prompts, newest first, optionally
// bounded by an inclusive [from, to] creation-time range. It applies
// defaults for invalid page/pageSize and returns the total count.
func (s *EnhanceService) History(ctx context.Context, userID string, from, to *time.Time, page, pageSize int) ([]domain.Prompt, int64, error) {
	tr := otel.Tracer("services/EnhanceService")
	ctx, span := tr.Start(ctx, "History",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	total, err := repo.CountPrompts(ctx, s.DB, userID, from, to)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Prompt{}, 0, nil
	}

	items, err := repo.ListPromptsPage(ctx, s.DB, userID, from, to, offset, pageSize)
	return items, total, err
}

// validate checks field constraints and resolves defaults, returning the
// effective temperature and max-tokens values.
func (s *EnhanceService) validate(in *EnhanceInput) (temperature float64, maxTokens int, err error) {
	var bad []string

	n := utf8.RuneCountInString(in.PromptText)
	if n < MinPromptRunes || n > MaxPromptRunes {
		bad = append(bad, "prompt_text")
	}

	temperature = DefaultTemperature
	if in.Temperature != nil {
		temperature = *in.Temperature
		if temperature < MinTemperature || temperature > MaxTemperature {
			bad = append(bad, "temperature")
		}
	}

	maxTokens = DefaultMaxTokens
	if in.MaxTokens != nil {
		maxTokens = *in.MaxTokens
		if maxTokens < MinMaxTokens || maxTokens > MaxMaxTokens {
			bad = append(bad, "max_tokens")
		}
	}

	if len(bad) > 0 {
		return 0, 0, &ValidationError{Fields: bad}
	}
	return temperature, maxTokens, nil
}

// mapEnhancement decodes the gateway's raw field map onto the structured
// EnhancedPrompt. The first absent or undecodable agreed field aborts with
// *ResponseShapeError naming it.
func mapEnhancement(payload *genai.Enhancement) (*domain.EnhancedPrompt, error) {
	e := &domain.EnhancedPrompt{
		ModelUsed:  payload.Model,
		TokensUsed: payload.TokensUsed,
	}

	if err := decodeField(payload.Fields, "persona", &e.Persona); err != nil {
		return nil, err
	}
	if err := decodeField(payload.Fields, "task", &e.Task); err != nil {
		return nil, err
	}
	if err := decodeField(payload.Fields, "context", &e.Context); err != nil {
		return nil, err
	}
	if err := decodeField(payload.Fields, "format", &e.Format); err != nil {
		return nil, err
	}
	if err := decodeField(payload.Fields, "consolidated_prompt", &e.ConsolidatedPrompt); err != nil {
		return nil, err
	}
	if err := decodeField(payload.Fields, "improvement_summary", &e.ImprovementSummary); err != nil {
		return nil, err
	}
	return e, nil
}

// decodeField unmarshals fields[name] into dst, reporting absence or a type
// mismatch as *ResponseShapeError.
func decodeField(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok {
		return &ResponseShapeError{Field: name}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ResponseShapeError{Field: name}
	}
	return nil
}

// isNotFound reports whether err is the repo layer's not-found sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound)
}
