// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Prompt and
// EnhancedPrompt models.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a prompt is not found, functions return gorm.ErrRecordNotFound
//     (also exported in this package as ErrNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreatePrompt(ctx, db, p) -> error
//     Inserts a new Prompt row with UUID primary key and UTC timestamp.
//
//   - GetPrompt(ctx, db, id, userID) -> *domain.Prompt, error
//     Fetches a single owned prompt (Enhanced preloaded) or ErrNotFound.
//
//   - CountPrompts / ListPromptsPage(ctx, db, userID, from, to, ...) ->
//     History queries bounded by an inclusive creation-time range,
//     ordered newest-first.
//
//   - CreateEnhanced(ctx, db, e) -> error
//     Inserts the one-to-one enhancement row for a prompt.
//
// This repository is designed to be wrapped by a higher-level service
// (see services.EnhanceService) which enforces business rules.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
)

// CreatePrompt inserts a new Prompt row. The prompt ID is a randomly
// generated UUID (string), and CreatedAt is set to UTC. The passed struct is
// mutated with the generated ID and timestamp.
func CreatePrompt(ctx context.Context, db *gorm.DB, p *domain.Prompt) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(p).Error
}

// GetPrompt fetches a single prompt by ID and owner (userID), with its
// enhancement preloaded. If the record does not exist or belongs to another
// user, it returns ErrNotFound.
func GetPrompt(ctx context.Context, db *gorm.DB, id, userID string) (*domain.Prompt, error) {
	var p domain.Prompt
	err := db.WithContext(ctx).
		Preload("Enhanced").
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// promptHistoryQuery composes the shared WHERE clause for history queries:
// owner scope plus an optional inclusive creation-time range.
func promptHistoryQuery(ctx context.Context, db *gorm.DB, userID string, from, to *time.Time) *gorm.DB {
	q := db.WithContext(ctx).Model(&domain.Prompt{}).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	return q
}

// CountPrompts returns the total number of prompts owned by userID within
// the optional inclusive [from, to] creation-time range.
func CountPrompts(ctx context.Context, db *gorm.DB, userID string, from, to *time.Time) (int64, error) {
	var total int64
	err := promptHistoryQuery(ctx, db, userID, from, to).Count(&total).Error
	return total, err
}

// ListPromptsPage returns a paginated slice of the user's prompts within the
// optional [from, to] range, newest first and with enhancements preloaded.
// Use CountPrompts to obtain the total for pagination metadata.
//
// The caller is responsible for computing offset and limit (e.g., (page-1)*pageSize).
func ListPromptsPage(ctx context.Context, db *gorm.DB, userID string, from, to *time.Time, offset, limit int) ([]domain.Prompt, error) {
	var out []domain.Prompt
	err := promptHistoryQuery(ctx, db, userID, from, to).
		Preload("Enhanced").
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// CreateEnhanced inserts the enhancement row for a prompt. The enhancement
// ID is a randomly generated UUID and CreatedAt is set to UTC. The prompts
// table enforces the one-to-one link via a unique index on prompt_id.
func CreateEnhanced(ctx context.Context, db *gorm.DB, e *domain.EnhancedPrompt) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(e).Error
}
