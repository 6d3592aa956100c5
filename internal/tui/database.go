package tui

import (
	"context"

	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/models"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	ListTags(ctx context.Context, f database.TagFilter) ([]models.SEOTag, error)
	CountTags(ctx context.Context) (int, error)
	GetTag(ctx context.Context, pageID string) (models.SEOTag, error)
	CreateTag(ctx context.Context, tag models.SEOTag, actor string) (int64, error)
	UpdateTag(ctx context.Context, id int64, tag models.SEOTag, actor string) error
	DeleteTag(ctx context.Context, pageID string) error
	GetAdvanced(ctx context.Context) (models.AdvancedSEO, error)
	SaveAdvanced(ctx context.Context, adv models.AdvancedSEO, actor string) error
}

var _ Database = (*database.Database)(nil)
