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

func newTemplateRepoDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("template_repo_test_%d.db", time.Now().UnixNano()))
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

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	if err := SeedTemplates(context.Background(), db, domain.DefaultTemplates()); err != nil {
		t.Fatalf("SeedTemplates: %v", err)
	}
}

func TestSeedTemplates_Idempotent(t *testing.T) {
	db := newTemplateRepoDB(t, &domain.Template{})
	seedCatalog(t, db)

	// Operator edit must survive a re-seed.
	if err := db.Model(&domain.Template{}).Where("id = ?", "code-gen").
		Update("description", "edited").Error; err != nil {
		t.Fatalf("edit: %v", err)
	}
	seedCatalog(t, db)

	got, err := GetTemplate(context.Background(), db, "code-gen")
	if err != nil {
		t.Fatalf("GetTemplate: %v", err)
	}
	if got.Description != "edited" {
		t.Fatalf("re-seed overwrote operator edit: %q", got.Description)
	}

	var n int64
	if err := db.Model(&domain.Template{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if int(n) != len(domain.DefaultTemplates()) {
		t.Fatalf("row count = %d, want %d", n, len(domain.DefaultTemplates()))
	}
}

func TestListTemplates_FiltersInactiveAndCategory(t *testing.T) {
	db := newTemplateRepoDB(t, &domain.Template{})
	seedCatalog(t, db)

	// Deactivate one entry; it must vanish from listings.
	if err := db.Model(&domain.Template{}).Where("id = ?", "research").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	all, err := ListTemplates(context.Background(), db, "")
	if err != nil {
		t.Fatalf("ListTemplates: %v", err)
	}
	if len(all) != len(domain.DefaultTemplates())-1 {
		t.Fatalf("len = %d, want %d", len(all), len(domain.DefaultTemplates())-1)
	}
	for _, tpl := range all {
		if tpl.ID == "research" {
			t.Fatalf("inactive template listed")
		}
	}

	code, err := ListTemplates(context.Background(), db, domain.CategoryCode)
	if err != nil {
		t.Fatalf("ListTemplates(code): %v", err)
	}
	if len(code) != 1 || code[0].ID != "code-gen" {
		t.Fatalf("category filter mismatch: %+v", code)
	}
}

func TestGetTemplate_NotFoundAndInactive(t *testing.T) {
	db := newTemplateRepoDB(t, &domain.Template{})
	seedCatalog(t, db)

	if _, err := GetTemplate(context.Background(), db, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id: want ErrNotFound, got %v", err)
	}

	if err := db.Model(&domain.Template{}).Where("id = ?", "code-gen").
		Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := GetTemplate(context.Background(), db, "code-gen"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive id: want ErrNotFound, got %v", err)
	}
}
