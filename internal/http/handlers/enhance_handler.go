// Prompt-enhancement HTTP handlers.
//
// This file exposes REST endpoints for prompt resources:
//   - POST /prompts/enhance   (submit a weak prompt for enhancement)
//   - GET  /prompts/{id}      (one prompt with its enhancement)
//   - GET  /prompts/history   (list, paginated, time-filtered, ETag support)
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses (including conditional responses
// and idempotent replays of the enhance operation).
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/genai"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/http/middleware"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/repo"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/services"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/utils"
)

//
// Service contracts (context-aware)
//

// TemplateService defines template catalog reads consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TemplateService interface {
	// List returns active templates, optionally filtered by category.
	List(ctx context.Context, category string) ([]domain.Template, error)
	// Get returns one active template by id.
	Get(ctx context.Context, id string) (*domain.Template, error)
}

// EnhanceService defines the enhancement flow and history retrieval.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type EnhanceService interface {
	// Enhance runs the full validate/persist/invoke/map flow for userID.
	Enhance(ctx context.Context, userID string, in services.EnhanceInput) (*services.EnhanceResult, error)
	// Get returns one prompt owned by userID with its enhancement.
	Get(ctx context.Context, userID, promptID string) (*domain.Prompt, error)
	// History returns a page of the user's prompts and the total count.
	History(ctx context.Context, userID string, from, to *time.Time, page, pageSize int) ([]domain.Prompt, int64, error)
}

// SavedService defines saved-library operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type SavedService interface {
	// Create bookmarks an enhanced prompt into the user's library.
	Create(ctx context.Context, userID string, in services.SavedInput) (*domain.SavedPrompt, error)
	// List returns the user's saved items, most recently accessed first.
	List(ctx context.Context, userID string) ([]domain.SavedPrompt, error)
	// ListFavorites returns only favorited items.
	ListFavorites(ctx context.Context, userID string) ([]domain.SavedPrompt, error)
	// Get returns one saved item and refreshes its last-accessed time.
	Get(ctx context.Context, userID, id string) (*domain.SavedPrompt, error)
	// ToggleFavorite flips the favorite flag and returns the updated item.
	ToggleFavorite(ctx context.Context, userID, id string) (*domain.SavedPrompt, error)
	// Update applies a partial metadata edit.
	Update(ctx context.Context, userID, id string, in services.SavedUpdate) (*domain.SavedPrompt, error)
	// Delete removes a saved item.
	Delete(ctx context.Context, userID, id string) error
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for templates, prompts, and saved items.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	tplSvc   TemplateService
	enhSvc   EnhanceService
	savedSvc SavedService

	// IdemTTL bounds how long a completed enhance call can be replayed via
	// Idempotency-Key. Zero disables recording (replay lookups still run).
	IdemTTL time.Duration
}

// New constructs and returns a Handlers instance bound to the given services.
func New(tplSvc TemplateService, enhSvc EnhanceService, savedSvc SavedService) *Handlers {
	return &Handlers{tplSvc: tplSvc, enhSvc: enhSvc, savedSvc: savedSvc, IdemTTL: 24 * time.Hour}
}

// userID extracts the authenticated user id from Gin context (set by upstream
// middleware). If absent, it falls back to "X-User-ID" header (tests use it),
// and finally to "demo-user". It never touches c.Request if it's nil.
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

// db unwraps the concrete enhance service to reach its GORM handle for
// transport-level concerns (ETag stats, idempotency records). Best effort:
// stubbed services in tests return nil and the features degrade silently.
func (h *Handlers) db() *gorm.DB {
	if svc, ok := h.enhSvc.(*services.EnhanceService); ok {
		return svc.DB
	}
	return nil
}

//
// DTOs
//

// EnhanceRequest is the JSON payload for submitting a weak prompt.
type EnhanceRequest struct {
	// PromptText is the weak prompt to enhance (5–5000 chars).
	PromptText string `json:"prompt_text" binding:"required" example:"write a function to sort a list"`
	// TemplateID optionally selects a preset system prompt.
	TemplateID *string `json:"template_id,omitempty" example:"code-gen"`
	// Temperature overrides the sampling temperature (0.1–1.0, default 0.3).
	Temperature *float64 `json:"temperature,omitempty" example:"0.3"`
	// MaxTokens overrides the completion budget (256–4096, default 2048).
	MaxTokens *int `json:"max_tokens,omitempty" example:"2048"`
	// CustomSystemPrompt replaces the template's system prompt entirely.
	CustomSystemPrompt string `json:"custom_system_prompt,omitempty"`
}

// EnhanceResponse is the composed resource returned on success.
type EnhanceResponse struct {
	ID           string                 `json:"id"`
	OriginalText string                 `json:"original_text"`
	Enhanced     *domain.EnhancedPrompt `json:"enhanced"`
	CreatedAt    time.Time              `json:"created_at"`
}

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// HistoryResponse wraps a page of prompts and pagination information.
type HistoryResponse struct {
	Prompts    []domain.Prompt `json:"prompts"`
	Pagination Pagination      `json:"pagination"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

// parseTimeParam accepts RFC3339 or a bare date (2006-01-02). A bare date
// used as an upper bound is widened to the end of that day so the range
// stays inclusive.
func parseTimeParam(raw string, upperBound bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	if upperBound {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// enhanceView converts a service result into the public resource shape.
func enhanceView(res *services.EnhanceResult) EnhanceResponse {
	return EnhanceResponse{
		ID:           res.ID,
		OriginalText: res.OriginalText,
		Enhanced:     res.Enhanced,
		CreatedAt:    res.CreatedAt,
	}
}

//
// Handlers
//

// EnhancePrompt godoc
// @ID          enhancePrompt
// @Summary     Enhance a weak prompt
// @Description Sends the prompt to the model with a PTCF instruction template and persists the structured result. Supports Idempotency-Key replay.
// @Tags        Prompts
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID        header  string  false "User ID (demo header)"          example(user123)
// @Param       Idempotency-Key  header  string  false "Replay key for safe retries"
// @Param       body             body    handlers.EnhanceRequest  true  "Enhance payload"
//
// @Success     201  {object}  handlers.EnhanceResponse
// @Success     200  {object}  handlers.EnhanceResponse "Idempotent replay"
// @Failure     400  {object}  handlers.ErrorResponse  "Validation, provider, or malformed-response error"
// @Failure     404  {object}  handlers.ErrorResponse  "Template not found"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal or model-contract error"
// @Router      /prompts/enhance [post]
func (h *Handlers) EnhancePrompt(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)

	var req EnhanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	// Idempotent replay: a completed enhance with the same key returns the
	// stored prompt instead of charging another provider call.
	idemKey := middleware.GetIdempotencyKey(c)
	db := h.db()
	if idemKey != "" && db != nil {
		if rec, err := repo.GetIdempotency(ctx, db, uid, idemKey, time.Now().UTC()); err == nil {
			if p, err := h.enhSvc.Get(ctx, uid, rec.PromptID); err == nil {
				middleware.CountEnhance("replay")
				ok(c, http.StatusOK, EnhanceResponse{
					ID:           p.ID,
					OriginalText: p.OriginalText,
					Enhanced:     p.Enhanced,
					CreatedAt:    p.CreatedAt,
				})
				return
			}
		}
	}

	start := time.Now()
	res, err := h.enhSvc.Enhance(ctx, uid, services.EnhanceInput{
		PromptText:         req.PromptText,
		TemplateID:         req.TemplateID,
		Temperature:        req.Temperature,
		MaxTokens:          req.MaxTokens,
		CustomSystemPrompt: req.CustomSystemPrompt,
	})
	if err != nil {
		h.failEnhance(c, err)
		return
	}
	middleware.CountEnhance("success")
	middleware.ObserveEnhanceDuration(time.Since(start))

	if idemKey != "" && db != nil && h.IdemTTL > 0 {
		// Best effort: losing the record only costs a duplicate provider call.
		_, _ = repo.CreateIdempotency(ctx, db, uid, idemKey, res.ID, http.StatusCreated, h.IdemTTL)
	}

	ok(c, http.StatusCreated, enhanceView(res))
}

// failEnhance maps enhancement-flow errors onto the error taxonomy.
func (h *Handlers) failEnhance(c *gin.Context, err error) {
	var vErr *services.ValidationError
	var shapeErr *services.ResponseShapeError

	switch {
	case errors.As(err, &vErr):
		middleware.CountEnhance("validation")
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, vErr.Error())
	case errors.Is(err, services.ErrTemplateNotFound):
		middleware.CountEnhance("validation")
		fail(c, http.StatusNotFound, ErrCodeNotFound, "template not found")
	case errors.Is(err, genai.ErrProviderFailure):
		middleware.CountEnhance("provider_error")
		fail(c, http.StatusBadRequest, ErrCodeEnhanceFailed, err.Error())
	case errors.Is(err, genai.ErrMalformedResponse):
		middleware.CountEnhance("malformed")
		fail(c, http.StatusBadRequest, ErrCodeMalformedResponse, err.Error())
	case errors.As(err, &shapeErr):
		middleware.CountEnhance("contract_drift")
		fail(c, http.StatusInternalServerError, ErrCodeContractDrift, shapeErr.Error())
	default:
		middleware.CountEnhance("internal")
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

// GetPrompt godoc
// @ID          getPrompt
// @Summary     Fetch one prompt
// @Description Returns a prompt owned by the current user, with its enhancement when present.
// @Tags        Prompts
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Prompt ID (UUID)"       format(uuid)
//
// @Success     200  {object}  domain.Prompt
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Prompt not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /prompts/{id} [get]
func (h *Handlers) GetPrompt(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "prompt id must be a UUID")
		return
	}

	p, err := h.enhSvc.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "prompt not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, p)
}

// History godoc
// @ID          promptHistory
// @Summary     List prompt history (paginated)
// @Description Returns a page of the user's prompts, newest first, optionally bounded by from/to. Supports weak ETag via If-None-Match and may return 304.
// @Tags        Prompts
// @Produce     json
//
// @Param       X-User-ID      header  string  false "User ID (demo header)"            example(user123)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       from           query   string  false "Inclusive lower bound (RFC3339 or YYYY-MM-DD)"
// @Param       to             query   string  false "Inclusive upper bound (RFC3339 or YYYY-MM-DD)"
// @Param       page           query   int     false "Page number"    minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.HistoryResponse
// @Header      200  {string} ETag "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /prompts/history [get]
func (h *Handlers) History(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, pageSize := clampPagination(c)

	from, err := parseTimeParam(c.Query("from"), false)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "from must be RFC3339 or YYYY-MM-DD")
		return
	}
	to, err := parseTimeParam(c.Query("to"), true)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "to must be RFC3339 or YYYY-MM-DD")
		return
	}

	// ETag pre-check (best effort).
	if db := h.db(); db != nil {
		count, maxTS, err := repo.PromptsStats(ctx, db, uid)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"prompts:%s:%d:%d"`, uid, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, total, err := h.enhSvc.History(ctx, uid, from, to, page, pageSize)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, HistoryResponse{
		Prompts: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}
