// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Template
// model. Templates are read-only through the API; SeedTemplates exists for
// startup provisioning of the built-in catalog.
//
// Error semantics:
//   - When a template is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ListTemplates returns active templates ordered by category then name.
// When category is non-empty the result is restricted to that category.
func ListTemplates(ctx context.Context, db *gorm.DB, category string) ([]domain.Template, error) {
	var out []domain.Template
	q := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category asc, name asc")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&out).Error
	return out, err
}

// GetTemplate fetches a single active template by its id, or ErrNotFound.
func GetTemplate(ctx context.Context, db *gorm.DB, id string) (*domain.Template, error) {
	var t domain.Template
	err := db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SeedTemplates upserts the given catalog entries by primary key. Existing
// rows keep their current values (administered out-of-band) and only new
// entries are inserted.
func SeedTemplates(ctx context.Context, db *gorm.DB, templates []domain.Template) error {
	if len(templates) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&templates).Error
}
