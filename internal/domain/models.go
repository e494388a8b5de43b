// Package domain defines the persistence models for prompt templates,
// submitted prompts, their AI-generated enhancements, and user bookmarks.
// These types are mapped with GORM and form the core data layer of the
// prompt-enhancement application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Template categories. Templates are grouped by the kind of work the
// resulting prompt is meant to drive.
const (
	CategoryCode     = "code"
	CategoryContent  = "content"
	CategoryData     = "data"
	CategoryCreative = "creative"
	CategoryBusiness = "business"
	CategoryResearch = "research"
)

// TemplateCategories lists every valid template category, in display order.
var TemplateCategories = []string{
	CategoryCode, CategoryContent, CategoryData,
	CategoryCreative, CategoryBusiness, CategoryResearch,
}

// Template is a pre-configured preset that supplies a default system prompt
// for a category of use case (e.g. "code-gen"). Templates are seeded at
// startup and read-only through the public API.
//
// Fields:
//   - ID: short slug primary key (e.g. "code-gen").
//   - Name: human-readable display name.
//   - Category: one of the category constants above (indexed for filtering).
//   - Description: what the template is for.
//   - SystemPrompt: the system instruction applied when the template is used.
//   - IsActive: inactive templates are hidden from the API but kept for
//     referential integrity of historical prompts.
type Template struct {
	ID           string    `json:"id"            gorm:"type:varchar(50);primaryKey"`
	Name         string    `json:"name"          gorm:"type:varchar(100);not null"`
	Category     string    `json:"category"      gorm:"type:varchar(20);not null;index:idx_templates_category"`
	Description  string    `json:"description"   gorm:"type:text;not null"`
	SystemPrompt string    `json:"system_prompt" gorm:"type:text;not null"`
	IsActive     bool      `json:"-"             gorm:"not null;default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for Template.
func (Template) TableName() string { return "templates" }

// Persona describes who the enhanced prompt asks the model to be.
type Persona struct {
	Role        string `json:"role,omitempty"`
	Expertise   string `json:"expertise,omitempty"`
	Perspective string `json:"perspective,omitempty"`
}

// TaskSpec describes what the enhanced prompt asks the model to do.
type TaskSpec struct {
	Objective   string   `json:"objective,omitempty"`
	Deliverable string   `json:"deliverable,omitempty"`
	Constraints []string `json:"constraints,omitempty"`
}

// ContextSpec carries the background the model should take into account.
type ContextSpec struct {
	TechnicalBackground string   `json:"technical_background,omitempty"`
	KeyConsiderations   []string `json:"key_considerations,omitempty"`
	Audience            string   `json:"audience,omitempty"`
}

// FormatSpec constrains the shape of the model's eventual output.
type FormatSpec struct {
	OutputStyle string   `json:"output_style,omitempty"`
	Structure   []string `json:"structure,omitempty"`
	Tone        string   `json:"tone,omitempty"`
}

// Prompt represents an original weak prompt submitted by a user, together
// with the generation parameters used for its enhancement. A Prompt row is
// created before the provider call, so a failed enhancement leaves the row
// without an Enhanced record (intentional audit trail).
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - UserID: owner identifier; empty for anonymous/system submissions.
//   - OriginalText: the weak prompt exactly as submitted.
//   - TemplateID: optional reference to the template that supplied the
//     system prompt; nulled if the template is deleted.
//   - Temperature / MaxTokens: generation parameters recorded per request.
//   - Enhanced: the one-to-one enhancement result, present only on success.
type Prompt struct {
	ID           string          `json:"id"            gorm:"type:char(36);primaryKey"`
	UserID       string          `json:"user_id"       gorm:"type:varchar(64);index:idx_user_prompts"`
	OriginalText string          `json:"original_text" gorm:"type:text;not null"`
	TemplateID   *string         `json:"template_id"   gorm:"type:varchar(50);index"`
	Temperature  float64         `json:"temperature"   gorm:"not null;default:0.3"`
	MaxTokens    int             `json:"max_tokens"    gorm:"not null;default:2048"`
	CreatedAt    time.Time       `json:"created_at"    gorm:"index:idx_user_prompts,priority:2"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"-"             gorm:"index"`
	Enhanced     *EnhancedPrompt `json:"enhanced,omitempty" gorm:"foreignKey:PromptID;references:ID"`

	// Template is the optional preset used for this submission.
	Template *Template `json:"-" gorm:"foreignKey:TemplateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Prompt.
func (Prompt) TableName() string { return "prompts" }

// EnhancedPrompt is the AI-generated PTCF enhancement for a Prompt. Exactly
// one EnhancedPrompt exists per successfully enhanced Prompt (unique FK),
// and the row is immutable after creation.
//
// The persona/task/context/format components are explicit structured types
// serialized as JSON columns, so provider contract drift is caught at the
// mapping boundary instead of leaking schemaless blobs into the API.
type EnhancedPrompt struct {
	ID                 string      `json:"id"                  gorm:"type:char(36);primaryKey"`
	PromptID           string      `json:"-"                   gorm:"type:char(36);not null;uniqueIndex"`
	Persona            Persona     `json:"persona"             gorm:"serializer:json"`
	Task               TaskSpec    `json:"task"                gorm:"serializer:json"`
	Context            ContextSpec `json:"context"             gorm:"serializer:json"`
	Format             FormatSpec  `json:"format"              gorm:"serializer:json"`
	ConsolidatedPrompt string      `json:"consolidated_prompt" gorm:"type:text;not null"`
	ImprovementSummary string      `json:"improvement_summary" gorm:"type:text;not null"`
	ModelUsed          string      `json:"model_used"          gorm:"type:varchar(50);not null"`
	TokensUsed         *int        `json:"tokens_used,omitempty"`
	ProcessingTimeMs   int         `json:"-"`
	CreatedAt          time.Time   `json:"-"`

	// Prompt is the parent submission. Enhancements are cascade-deleted
	// if their prompt is removed.
	Prompt *Prompt `json:"-" gorm:"foreignKey:PromptID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for EnhancedPrompt.
func (EnhancedPrompt) TableName() string { return "enhanced_prompts" }

// SavedPrompt is a user bookmark over a (Prompt, EnhancedPrompt) pair.
// A user may save a given pair at most once (composite unique index);
// LastAccessed is touched on every read or write of the bookmark.
// Deletes are hard so the pair can be saved again afterwards.
type SavedPrompt struct {
	ID           string    `json:"id"            gorm:"type:char(36);primaryKey"`
	UserID       string    `json:"-"             gorm:"type:varchar(64);not null;index;uniqueIndex:ux_saved_user_prompt_enhanced,priority:1"`
	PromptID     string    `json:"prompt_id"     gorm:"type:char(36);not null;uniqueIndex:ux_saved_user_prompt_enhanced,priority:2"`
	EnhancedID   string    `json:"-"             gorm:"type:char(36);not null;uniqueIndex:ux_saved_user_prompt_enhanced,priority:3"`
	CustomTitle  *string   `json:"custom_title"  gorm:"type:varchar(200)"`
	Notes        string    `json:"notes"         gorm:"type:text"`
	Category     string    `json:"category"      gorm:"type:varchar(50)"`
	IsFavorite   bool      `json:"is_favorite"   gorm:"not null;default:false;index:idx_saved_user_fav"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessed time.Time `json:"last_accessed" gorm:"index"`

	// Prompt/Enhanced are the referenced pair. Bookmarks are cascade-deleted
	// when either side is removed.
	Prompt   *Prompt         `json:"-" gorm:"foreignKey:PromptID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Enhanced *EnhancedPrompt `json:"-" gorm:"foreignKey:EnhancedID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for SavedPrompt.
func (SavedPrompt) TableName() string { return "saved_prompts" }
