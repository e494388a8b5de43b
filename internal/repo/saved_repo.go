// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the SavedPrompt
// model.
//
// The repository follows a "thin" approach: it performs persistence and simple
// query composition, leaving business rules to the services package.
//
// Error semantics:
//   - A duplicate bookmark (same user_id, prompt_id, enhanced_id) relies on
//     the database unique constraint and is returned as a raw DB error. The
//     service layer translates that into a domain error (ErrDuplicateSaved).
//   - Missing rows surface as gorm.ErrRecordNotFound / ErrNotFound.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
)

// CreateSaved inserts a bookmark row. The combination
// (user_id, prompt_id, enhanced_id) must be unique, enforced by the database
// schema; duplicate inserts return the driver's unique-violation error for
// the service layer to translate. The passed struct is mutated with the
// generated ID and timestamps.
func CreateSaved(ctx context.Context, db *gorm.DB, s *domain.SavedPrompt) error {
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.LastAccessed = now
	return db.WithContext(ctx).Create(s).Error
}

// GetSaved fetches a bookmark by ID scoped to its owner, with the underlying
// prompt and enhancement preloaded. Rows belonging to other users are
// reported as ErrNotFound, never as a permission error.
func GetSaved(ctx context.Context, db *gorm.DB, id, userID string) (*domain.SavedPrompt, error) {
	var s domain.SavedPrompt
	err := db.WithContext(ctx).
		Preload("Prompt").
		Preload("Enhanced").
		Where("id = ? AND user_id = ?", id, userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSaved returns the user's bookmarks ordered by most recently accessed.
// When favoritesOnly is true the result is restricted to favorites.
func ListSaved(ctx context.Context, db *gorm.DB, userID string, favoritesOnly bool) ([]domain.SavedPrompt, error) {
	var out []domain.SavedPrompt
	q := db.WithContext(ctx).
		Preload("Prompt").
		Preload("Enhanced").
		Where("user_id = ?", userID).
		Order("last_accessed desc")
	if favoritesOnly {
		q = q.Where("is_favorite = ?", true)
	}
	err := q.Find(&out).Error
	return out, err
}

// UpdateSaved persists changes to a bookmark's mutable fields and touches
// LastAccessed. If no rows are affected (bookmark missing or not owned by
// userID), it returns ErrNotFound.
func UpdateSaved(ctx context.Context, db *gorm.DB, id, userID string, updates map[string]any) error {
	updates["last_accessed"] = time.Now().UTC()
	res := db.WithContext(ctx).
		Model(&domain.SavedPrompt{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// TouchSaved updates only the LastAccessed timestamp of a bookmark.
// Missing/unowned rows are ignored (reads should not fail on the touch).
func TouchSaved(ctx context.Context, db *gorm.DB, id, userID string) error {
	return db.WithContext(ctx).
		Model(&domain.SavedPrompt{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("last_accessed", time.Now().UTC()).Error
}

// DeleteSaved removes a bookmark owned by userID. If no rows are affected,
// it returns ErrNotFound.
func DeleteSaved(ctx context.Context, db *gorm.DB, id, userID string) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.SavedPrompt{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
