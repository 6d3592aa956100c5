package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/akyairhashvil/seodesk/internal/models"
)

// ExportVersion is written into every export and checked on import.
const ExportVersion = 1

// SiteExport is the portable form of every SEO tag plus the site settings.
type SiteExport struct {
	Version     int                 `json:"version"`
	ExportedAt  time.Time           `json:"exported_at"`
	SEOTags     []models.SEOTag     `json:"seo_tags"`
	AdvancedSEO *models.AdvancedSEO `json:"advanced_seo,omitempty"`
}

// ImportResult counts what Import changed.
type ImportResult struct {
	Created  int
	Updated  int
	Advanced bool
}

// Export snapshots the database.
func (d *Database) Export(ctx context.Context) (SiteExport, error) {
	tags, err := d.ListTags(ctx, TagFilter{})
	if err != nil {
		return SiteExport{}, err
	}
	adv, err := d.GetAdvanced(ctx)
	if err != nil {
		return SiteExport{}, err
	}
	return SiteExport{
		Version:     ExportVersion,
		ExportedAt:  d.timestamp(),
		SEOTags:     tags,
		AdvancedSEO: &adv,
	}, nil
}

// Import upserts every tag by page_id and replaces the site settings when
// present, all in one transaction. Tags should be validated by the caller.
func (d *Database) Import(ctx context.Context, export SiteExport, actor string) (ImportResult, error) {
	var result ImportResult
	if export.Version > ExportVersion {
		return result, wrapErr(EntityImport, "check", 0, fmt.Errorf("unsupported export version %d", export.Version))
	}

	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, tag := range export.SEOTags {
			created, err := d.upsertTag(ctx, tx, tag, actor)
			if err != nil {
				return wrapKeyErr(EntityTag, "import", tag.PageID, err)
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		if export.AdvancedSEO != nil {
			if err := d.saveAdvanced(ctx, tx, *export.AdvancedSEO, actor); err != nil {
				return wrapErr(EntityAdvanced, "import", models.AdvancedSEOSingletonID, err)
			}
			result.Advanced = true
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

// DecodeExport parses an export file. Comments and trailing commas are
// accepted so hand-edited seed files load.
func DecodeExport(data []byte) (SiteExport, error) {
	var export SiteExport
	if err := json.Unmarshal(jsonc.ToJSON(data), &export); err != nil {
		return export, fmt.Errorf("decode export: %w", err)
	}
	if export.Version == 0 {
		export.Version = ExportVersion
	}
	return export, nil
}

// EncodeExport renders export as indented JSON.
func EncodeExport(export SiteExport) ([]byte, error) {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return append(data, '\n'), nil
}
