// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// primarily for conditional responses (e.g., ETag generation) in the HTTP
// layer. Each function is context-aware and safe to call from services or
// handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
)

// PromptsStats returns aggregate metadata for a user's prompts: the total
// number of rows and the maximum UpdatedAt timestamp among those rows.
//
// It executes two lightweight queries against the prompts table scoped to the
// provided userID. When the user has no prompts, the returned count is 0 and
// maxUpdatedAt is nil.
//
// Return values:
//   - count:        total prompts for userID
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func PromptsStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxUpdatedAt *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Prompt{}).Where("user_id = ?", userID)

	// Count
	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q.Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}

// SavedStats returns aggregate metadata for a user's bookmarks: the total
// number of rows and the maximum LastAccessed timestamp among those rows.
// When the user has no bookmarks, the returned count is 0 and maxAccessed
// is nil.
func SavedStats(ctx context.Context, db *gorm.DB, userID string) (count int64, maxAccessed *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.SavedPrompt{}).Where("user_id = ?", userID)

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	var row struct {
		LastAccessed time.Time
	}
	if err = q.Select("last_accessed").Order("last_accessed DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.LastAccessed, nil
}
