// Package services – SavedService
//
// SavedService manages the user's library of saved enhancements: creating a
// saved entry from an already-enhanced prompt, listing and filtering the
// library, favoriting, editing metadata, and removal. Every operation is
// scoped to the owning user; a saved item belonging to someone else is
// indistinguishable from one that does not exist (ErrSavedNotFound).
//
// When no custom title is supplied at save time, a compact one is derived
// from the original prompt text (stop words removed, title-cased, clipped).

package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SavedService coordinates saved-prompt library operations.
type SavedService struct {
	DB *gorm.DB

	// TitleMaxLen bounds generated titles in runes (default 60).
	TitleMaxLen int
	// TitleLocale selects the casing locale for generated titles.
	TitleLocale language.Tag
}

// NewSavedService constructs a SavedService with default title settings.
func NewSavedService(db *gorm.DB) *SavedService {
	return &SavedService{
		DB:          db,
		TitleMaxLen: 60,
		TitleLocale: language.Und,
	}
}

// SavedInput carries the save request.
type SavedInput struct {
	PromptID    string
	CustomTitle *string
	Notes       string
	Category    string
}

// SavedUpdate carries a partial metadata edit; nil fields are untouched.
type SavedUpdate struct {
	CustomTitle *string
	Notes       *string
	Category    *string
	IsFavorite  *bool
}

// Create saves the enhancement of promptID into the user's library.
//
// The prompt must exist, belong to userID, and already carry an
// enhancement. Saving the same (prompt, enhancement) pair twice returns
// ErrDuplicateSaved.
func (s *SavedService) Create(ctx context.Context, userID string, in SavedInput) (*domain.SavedPrompt, error) {
	tr := otel.Tracer("services/SavedService")
	ctx, span := tr.Start(ctx, "Create",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("prompt.id", in.PromptID),
		),
	)
	defer span.End()

	if in.Category != "" && !validCategory(in.Category) {
		return nil, &ValidationError{Fields: []string{"category"}}
	}

	p, err := repo.GetPrompt(ctx, s.DB, in.PromptID, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	if p.Enhanced == nil {
		return nil, ErrNotEnhanced
	}

	sp := &domain.SavedPrompt{
		UserID:     userID,
		PromptID:   p.ID,
		EnhancedID: p.Enhanced.ID,
		Notes:      in.Notes,
		Category:   in.Category,
	}
	title := ""
	if in.CustomTitle != nil {
		title = strings.TrimSpace(*in.CustomTitle)
	}
	if title == "" {
		title = s.titleFromPrompt(p.OriginalText)
	}
	if title != "" {
		title = s.clipTitle(title)
		sp.CustomTitle = &title
	}

	if err := repo.CreateSaved(ctx, s.DB, sp); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateSaved
		}
		return nil, err
	}
	return sp, nil
}

// List returns the user's saved items ordered by most recently accessed.
func (s *SavedService) List(ctx context.Context, userID string) ([]domain.SavedPrompt, error) {
	return repo.ListSaved(ctx, s.DB, userID, false)
}

// ListFavorites returns only the user's favorited items.
func (s *SavedService) ListFavorites(ctx context.Context, userID string) ([]domain.SavedPrompt, error) {
	return repo.ListSaved(ctx, s.DB, userID, true)
}

// Get returns one saved item and refreshes its last-accessed timestamp.
func (s *SavedService) Get(ctx context.Context, userID, id string) (*domain.SavedPrompt, error) {
	sp, err := repo.GetSaved(ctx, s.DB, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSavedNotFound
		}
		return nil, err
	}
	now := time.Now().UTC()
	if err := repo.TouchSaved(ctx, s.DB, id, userID); err == nil {
		sp.LastAccessed = now
	}
	return sp, nil
}

// ToggleFavorite flips the favorite flag and returns the updated item.
func (s *SavedService) ToggleFavorite(ctx context.Context, userID, id string) (*domain.SavedPrompt, error) {
	sp, err := repo.GetSaved(ctx, s.DB, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSavedNotFound
		}
		return nil, err
	}
	next := !sp.IsFavorite
	if err := repo.UpdateSaved(ctx, s.DB, id, userID, map[string]any{"is_favorite": next}); err != nil {
		if isNotFound(err) {
			return nil, ErrSavedNotFound
		}
		return nil, err
	}
	sp.IsFavorite = next
	return sp, nil
}

// Update applies a partial metadata edit and returns the updated item.
func (s *SavedService) Update(ctx context.Context, userID, id string, in SavedUpdate) (*domain.SavedPrompt, error) {
	updates := map[string]any{}
	if in.CustomTitle != nil {
		t := s.clipTitle(strings.TrimSpace(*in.CustomTitle))
		if t == "" {
			updates["custom_title"] = nil
		} else {
			updates["custom_title"] = t
		}
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.Category != nil {
		if *in.Category != "" && !validCategory(*in.Category) {
			return nil, &ValidationError{Fields: []string{"category"}}
		}
		updates["category"] = *in.Category
	}
	if in.IsFavorite != nil {
		updates["is_favorite"] = *in.IsFavorite
	}

	if len(updates) > 0 {
		if err := repo.UpdateSaved(ctx, s.DB, id, userID, updates); err != nil {
			if isNotFound(err) {
				return nil, ErrSavedNotFound
			}
			return nil, err
		}
	}
	sp, err := repo.GetSaved(ctx, s.DB, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrSavedNotFound
		}
		return nil, err
	}
	return sp, nil
}

// Delete removes a saved item from the user's library.
func (s *SavedService) Delete(ctx context.Context, userID, id string) error {
	if err := repo.DeleteSaved(ctx, s.DB, id, userID); err != nil {
		if isNotFound(err) {
			return ErrSavedNotFound
		}
		return err
	}
	return nil
}

// titleFromPrompt derives a compact title from the prompt text.
func (s *SavedService) titleFromPrompt(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	toks := titleWordRE.FindAllString(strings.ToLower(text), -1)
	if len(toks) == 0 {
		return ""
	}

	caser := cases.Title(s.titleLocaleOrDefault())
	out := make([]string, 0, 8)
	for _, w := range toks {
		if _, skip := titleStopWords[w]; skip {
			continue
		}
		out = append(out, caser.String(w))
		if len(out) >= 8 {
			break
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, " ")
}

// clipTitle truncates a title to the configured maximum rune length.
func (s *SavedService) clipTitle(title string) string {
	max := s.TitleMaxLen
	if max <= 0 {
		max = 60
	}
	if utf8.RuneCountInString(title) > max {
		return string([]rune(title)[:max])
	}
	return title
}

func (s *SavedService) titleLocaleOrDefault() language.Tag {
	if s.TitleLocale == language.Und {
		return language.English
	}
	return s.TitleLocale
}

// Extract Unicode letters with optional trailing numbers.
var titleWordRE = regexp.MustCompile(`[\p{L}]+[\p{N}]*`)

// Minimal English stop-words set for compact titles.
var titleStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"is": {}, "are": {}, "for": {}, "on": {}, "with": {}, "by": {}, "from": {},
	"at": {}, "as": {}, "that": {}, "this": {}, "it": {}, "be": {}, "was": {}, "were": {},
}

// isDuplicate detects unique-constraint violations from the driver by
// message, since glebarez/sqlite does not expose typed errors for them.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repo.ErrDuplicate) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
