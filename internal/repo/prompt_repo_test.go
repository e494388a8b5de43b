package repo

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
)

func newPromptRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("prompt_repo_test_%d.db", time.Now().UnixNano()))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Ensure the file handle is released before TempDir cleanup (Windows needs this).
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func mustCreatePrompt(t *testing.T, db *gorm.DB, userID, text string) *domain.Prompt {
	t.Helper()
	p := &domain.Prompt{UserID: userID, OriginalText: text, Temperature: 0.3, MaxTokens: 2048}
	if err := CreatePrompt(context.Background(), db, p); err != nil {
		t.Fatalf("CreatePrompt: %v", err)
	}
	return p
}

func TestCreatePrompt_Error_NoTable(t *testing.T) {
	db := newPromptRepoDB(t /* no migrations */)
	err := CreatePrompt(context.Background(), db, &domain.Prompt{UserID: "u1", OriginalText: "x"})
	if err == nil {
		t.Fatalf("expected error creating without table")
	}
}

func TestCreatePrompt_SetsIDAndUTCTimestamp(t *testing.T) {
	db := newPromptRepoDB(t, &domain.Prompt{})

	start := time.Now().UTC().Add(-time.Minute)
	p := mustCreatePrompt(t, db, "u1", "write me a test")
	if p.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if p.CreatedAt.Before(start) || p.CreatedAt.Location() != time.UTC {
		t.Fatalf("CreatedAt not fresh UTC: %v", p.CreatedAt)
	}
}

func TestGetPrompt_OwnerScopedWithEnhancement(t *testing.T) {
	db := newPromptRepoDB(t, &domain.Prompt{}, &domain.EnhancedPrompt{})

	p := mustCreatePrompt(t, db, "u1", "refactor my code")
	e := &domain.EnhancedPrompt{
		PromptID:           p.ID,
		Persona:            domain.Persona{Role: "senior engineer"},
		ConsolidatedPrompt: "full prompt",
		ImprovementSummary: "added structure",
		ModelUsed:          "gemini-2.5-flash",
	}
	if err := CreateEnhanced(context.Background(), db, e); err != nil {
		t.Fatalf("CreateEnhanced: %v", err)
	}

	got, err := GetPrompt(context.Background(), db, p.ID, "u1")
	if err != nil {
		t.Fatalf("GetPrompt: %v", err)
	}
	if got.Enhanced == nil || got.Enhanced.ID != e.ID {
		t.Fatalf("enhancement not preloaded: %+v", got.Enhanced)
	}
	if got.Enhanced.Persona.Role != "senior engineer" {
		t.Fatalf("persona not round-tripped: %+v", got.Enhanced.Persona)
	}

	// Another user must not see the row.
	if _, err := GetPrompt(context.Background(), db, p.ID, "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-owner read: want ErrNotFound, got %v", err)
	}
	if _, err := GetPrompt(context.Background(), db, "missing", "u1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: want ErrNotFound, got %v", err)
	}
}

func TestHistory_RangeCountAndPaging(t *testing.T) {
	db := newPromptRepoDB(t, &domain.Prompt{}, &domain.EnhancedPrompt{})
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		p := mustCreatePrompt(t, db, "u1", fmt.Sprintf("prompt %d", i))
		// Backdate deterministically: prompt 0 oldest, prompt 4 newest.
		if err := db.Model(&domain.Prompt{}).Where("id = ?", p.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error; err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}
	mustCreatePrompt(t, db, "someone-else", "not mine")

	total, err := CountPrompts(ctx, db, "u1", nil, nil)
	if err != nil || total != 5 {
		t.Fatalf("CountPrompts = %d, %v; want 5", total, err)
	}

	// Inclusive range keeps the boundary rows.
	from := base.Add(1 * time.Hour)
	to := base.Add(3 * time.Hour)
	total, err = CountPrompts(ctx, db, "u1", &from, &to)
	if err != nil || total != 3 {
		t.Fatalf("ranged CountPrompts = %d, %v; want 3", total, err)
	}

	page, err := ListPromptsPage(ctx, db, "u1", nil, nil, 0, 2)
	if err != nil {
		t.Fatalf("ListPromptsPage: %v", err)
	}
	if len(page) != 2 || page[0].OriginalText != "prompt 4" || page[1].OriginalText != "prompt 3" {
		t.Fatalf("expected newest-first page, got %+v", page)
	}

	page, err = ListPromptsPage(ctx, db, "u1", nil, nil, 4, 2)
	if err != nil || len(page) != 1 || page[0].OriginalText != "prompt 0" {
		t.Fatalf("last page mismatch: %+v, %v", page, err)
	}
}

func TestCreateEnhanced_UniquePerPrompt(t *testing.T) {
	db := newPromptRepoDB(t, &domain.Prompt{}, &domain.EnhancedPrompt{})
	ctx := context.Background()

	p := mustCreatePrompt(t, db, "u1", "summarize this")
	first := &domain.EnhancedPrompt{PromptID: p.ID, ConsolidatedPrompt: "a", ImprovementSummary: "s", ModelUsed: "m"}
	if err := CreateEnhanced(ctx, db, first); err != nil {
		t.Fatalf("CreateEnhanced: %v", err)
	}
	second := &domain.EnhancedPrompt{PromptID: p.ID, ConsolidatedPrompt: "b", ImprovementSummary: "s", ModelUsed: "m"}
	if err := CreateEnhanced(ctx, db, second); err == nil {
		t.Fatalf("expected unique violation for second enhancement on one prompt")
	}
}
