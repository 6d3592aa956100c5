package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/seodesk/internal/models"
)

// TagFilter narrows ListTags. Empty fields match everything.
type TagFilter struct {
	Search      string
	OGType      string
	TwitterCard string
	Ordering    string
}

func scanTag(row rowScanner) (models.SEOTag, error) {
	var t models.SEOTag
	var ogType, card string
	var schema, createdBy, updatedBy sql.NullString
	err := row.Scan(&t.ID, &t.PageID, &t.PagePath, &t.PageName, &t.PageTitle, &t.MetaDescription, &t.MetaKeywords,
		&t.CanonicalURL, &t.RobotsMeta, &t.OGTitle, &t.OGDescription, &ogType, &t.OGURL, &t.OGImageURL, &t.OGImageAlt,
		&card, &t.TwitterTitle, &t.TwitterDescription, &t.TwitterImageURL, &schema,
		&t.CreatedAt, &t.UpdatedAt, &createdBy, &updatedBy)
	if err != nil {
		return t, err
	}
	t.OGType = models.OGType(ogType)
	t.TwitterCard = models.TwitterCard(card)
	t.Schema = rawJSON(schema)
	t.CreatedBy = createdBy.String
	t.UpdatedBy = updatedBy.String
	return t, nil
}

func tagValues(t models.SEOTag) []interface{} {
	return []interface{}{
		t.PagePath, t.PageName, t.PageTitle, t.MetaDescription, t.MetaKeywords,
		t.CanonicalURL, t.RobotsMeta, t.OGTitle, t.OGDescription, string(t.OGType), t.OGURL, t.OGImageURL, t.OGImageAlt,
		string(t.TwitterCard), t.TwitterTitle, t.TwitterDescription, t.TwitterImageURL, nullableJSON(t.Schema),
	}
}

const tagInsert = `INSERT INTO seo_tags (page_path, page_name, page_title, meta_description, meta_keywords,
	canonical_url, robots_meta, og_title, og_description, og_type, og_url, og_image_url, og_image_alt,
	twitter_card, twitter_title, twitter_description, twitter_image_url, schema_json,
	page_id, created_at, updated_at, created_by, updated_by)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const tagUpdate = `UPDATE seo_tags SET page_path = ?, page_name = ?, page_title = ?, meta_description = ?, meta_keywords = ?,
	canonical_url = ?, robots_meta = ?, og_title = ?, og_description = ?, og_type = ?, og_url = ?, og_image_url = ?, og_image_alt = ?,
	twitter_card = ?, twitter_title = ?, twitter_description = ?, twitter_image_url = ?, schema_json = ?,
	page_id = ?, updated_at = ?, updated_by = ?
	WHERE id = ?`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (d *Database) insertTag(ctx context.Context, ex execer, tag models.SEOTag, actor string) (int64, error) {
	now := d.timestamp()
	args := append(tagValues(tag), tag.PageID, now, now, nullableString(actor), nullableString(actor))
	res, err := ex.ExecContext(ctx, tagInsert, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (d *Database) updateTag(ctx context.Context, ex execer, id int64, tag models.SEOTag, actor string) error {
	args := append(tagValues(tag), tag.PageID, d.timestamp(), nullableString(actor), id)
	res, err := ex.ExecContext(ctx, tagUpdate, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateTag inserts tag and returns its id.
func (d *Database) CreateTag(ctx context.Context, tag models.SEOTag, actor string) (int64, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		id, err := d.insertTag(ctx, d.DB, tag, actor)
		return id, wrapKeyErr(EntityTag, "create", tag.PageID, err)
	})
}

// UpdateTag replaces every editable column of the tag with the given id.
func (d *Database) UpdateTag(ctx context.Context, id int64, tag models.SEOTag, actor string) error {
	return withDBContext(d, ctx, func(ctx context.Context) error {
		return wrapErr(EntityTag, "update", id, d.updateTag(ctx, d.DB, id, tag, actor))
	})
}

// upsertTag creates or updates the tag keyed by page_id inside tx and reports
// whether a new row was created.
func (d *Database) upsertTag(ctx context.Context, tx *sql.Tx, tag models.SEOTag, actor string) (bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM seo_tags WHERE page_id = ?", tag.PageID).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = d.insertTag(ctx, tx, tag, actor)
		return err == nil, err
	case err != nil:
		return false, err
	}
	return false, d.updateTag(ctx, tx, id, tag, actor)
}

// UpsertTag creates or updates the tag keyed by page_id. It reports whether a
// new row was created.
func (d *Database) UpsertTag(ctx context.Context, tag models.SEOTag, actor string) (bool, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (bool, error) {
		created := false
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			var err error
			created, err = d.upsertTag(ctx, tx, tag, actor)
			return err
		})
		return created, wrapKeyErr(EntityTag, "upsert", tag.PageID, err)
	})
}

// GetTag returns the tag for pageID.
func (d *Database) GetTag(ctx context.Context, pageID string) (models.SEOTag, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.SEOTag, error) {
		query, args := NewTagQuery().Where("page_id = ?", pageID).Build()
		tag, err := scanTag(d.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return tag, wrapKeyErr(EntityTag, "get", pageID, err)
	})
}

func (d *Database) GetTagByID(ctx context.Context, id int64) (models.SEOTag, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.SEOTag, error) {
		query, args := NewTagQuery().Where("id = ?", id).Build()
		tag, err := scanTag(d.DB.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return tag, wrapErr(EntityTag, "get", id, err)
	})
}

func (d *Database) DeleteTag(ctx context.Context, pageID string) error {
	return withDBContext(d, ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "DELETE FROM seo_tags WHERE page_id = ?", pageID)
		if err != nil {
			return wrapKeyErr(EntityTag, "delete", pageID, err)
		}
		n, err := res.RowsAffected()
		if err == nil && n == 0 {
			err = ErrNotFound
		}
		return wrapKeyErr(EntityTag, "delete", pageID, err)
	})
}

// ListTags returns tags matching f, ordered by f.Ordering (default page_id).
func (d *Database) ListTags(ctx context.Context, f TagFilter) ([]models.SEOTag, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.SEOTag, error) {
		query, args := NewTagQuery().
			WhereSearch(f.Search).
			WhereOGType(f.OGType).
			WhereTwitterCard(f.TwitterCard).
			OrderBy(f.Ordering).
			Build()
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapErr(EntityTag, "list", 0, err)
		}
		defer rows.Close()

		tags := []models.SEOTag{}
		for rows.Next() {
			t, err := scanTag(rows)
			if err != nil {
				return nil, wrapErr(EntityTag, "list", 0, err)
			}
			tags = append(tags, t)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapErr(EntityTag, "list", 0, err)
		}
		return tags, nil
	})
}

// CountTags returns the number of stored tags.
func (d *Database) CountTags(ctx context.Context) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM seo_tags").Scan(&n)
		return n, wrapErr(EntityTag, "count", 0, err)
	})
}
