package database

import (
	"context"

	"github.com/akyairhashvil/seodesk/internal/models"
)

// TagRepository defines SEO tag operations.
type TagRepository interface {
	CreateTag(ctx context.Context, tag models.SEOTag, actor string) (int64, error)
	UpdateTag(ctx context.Context, id int64, tag models.SEOTag, actor string) error
	UpsertTag(ctx context.Context, tag models.SEOTag, actor string) (bool, error)
	GetTag(ctx context.Context, pageID string) (models.SEOTag, error)
	GetTagByID(ctx context.Context, id int64) (models.SEOTag, error)
	DeleteTag(ctx context.Context, pageID string) error
	ListTags(ctx context.Context, f TagFilter) ([]models.SEOTag, error)
}

// AdvancedRepository defines site-wide settings operations.
type AdvancedRepository interface {
	GetAdvanced(ctx context.Context) (models.AdvancedSEO, error)
	SaveAdvanced(ctx context.Context, adv models.AdvancedSEO, actor string) error
}

// TransferRepository defines bulk export and import.
type TransferRepository interface {
	Export(ctx context.Context) (SiteExport, error)
	Import(ctx context.Context, export SiteExport, actor string) (ImportResult, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	TagRepository
	AdvancedRepository
	TransferRepository
}

var _ Repository = (*Database)(nil)
