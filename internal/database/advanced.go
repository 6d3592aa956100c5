package database

import (
	"context"
	"database/sql"

	"github.com/akyairhashvil/seodesk/internal/models"
)

const advancedColumns = "id, google_site_verification, header_script, footer_script, created_at, updated_at, created_by, updated_by"

func scanAdvanced(row rowScanner) (models.AdvancedSEO, error) {
	var a models.AdvancedSEO
	var createdBy, updatedBy sql.NullString
	err := row.Scan(&a.ID, &a.GoogleSiteVerification, &a.HeaderScript, &a.FooterScript,
		&a.CreatedAt, &a.UpdatedAt, &createdBy, &updatedBy)
	a.CreatedBy = createdBy.String
	a.UpdatedBy = updatedBy.String
	return a, err
}

// GetAdvanced returns the site-wide settings, creating the empty row on
// first use.
func (d *Database) GetAdvanced(ctx context.Context) (models.AdvancedSEO, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.AdvancedSEO, error) {
		now := d.timestamp()
		if _, err := d.DB.ExecContext(ctx,
			"INSERT OR IGNORE INTO advanced_seo (id, created_at, updated_at) VALUES (?, ?, ?)",
			models.AdvancedSEOSingletonID, now, now); err != nil {
			return models.AdvancedSEO{}, wrapErr(EntityAdvanced, "get", models.AdvancedSEOSingletonID, err)
		}
		adv, err := scanAdvanced(d.DB.QueryRowContext(ctx,
			"SELECT "+advancedColumns+" FROM advanced_seo WHERE id = ?", models.AdvancedSEOSingletonID))
		return adv, wrapErr(EntityAdvanced, "get", models.AdvancedSEOSingletonID, err)
	})
}

// SaveAdvanced writes the site-wide settings. The id on adv is ignored.
func (d *Database) SaveAdvanced(ctx context.Context, adv models.AdvancedSEO, actor string) error {
	return withDBContext(d, ctx, func(ctx context.Context) error {
		return wrapErr(EntityAdvanced, "save", models.AdvancedSEOSingletonID, d.saveAdvanced(ctx, d.DB, adv, actor))
	})
}

func (d *Database) saveAdvanced(ctx context.Context, ex execer, adv models.AdvancedSEO, actor string) error {
	now := d.timestamp()
	_, err := ex.ExecContext(ctx, `INSERT INTO advanced_seo
		(id, google_site_verification, header_script, footer_script, created_at, updated_at, created_by, updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			google_site_verification = excluded.google_site_verification,
			header_script = excluded.header_script,
			footer_script = excluded.footer_script,
			updated_at = excluded.updated_at,
			updated_by = excluded.updated_by`,
		models.AdvancedSEOSingletonID, adv.GoogleSiteVerification, adv.HeaderScript, adv.FooterScript,
		now, now, nullableString(actor), nullableString(actor))
	return err
}
