package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TemplateService exposes the read-only template catalog.
type TemplateService struct {
	DB *gorm.DB
}

// NewTemplateService constructs a TemplateService.
func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{DB: db}
}

// List returns active templates, optionally filtered by category. An
// unknown category is a validation error rather than an empty result so the
// caller can distinguish a typo from a genuinely empty catalog.
func (s *TemplateService) List(ctx context.Context, category string) ([]domain.Template, error) {
	tr := otel.Tracer("services/TemplateService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(attribute.String("template.category", category)),
	)
	defer span.End()

	if category != "" && !validCategory(category) {
		return nil, &ValidationError{Fields: []string{"category"}}
	}
	return repo.ListTemplates(ctx, s.DB, category)
}

// Get returns one active template by id.
func (s *TemplateService) Get(ctx context.Context, id string) (*domain.Template, error) {
	t, err := repo.GetTemplate(ctx, s.DB, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return t, nil
}

func validCategory(c string) bool {
	for _, known := range domain.TemplateCategories {
		if c == known {
			return true
		}
	}
	return false
}
