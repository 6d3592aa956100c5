package database

import (
	"fmt"
	"strings"
)

const tagColumns = `id, page_id, page_path, page_name, page_title, meta_description, meta_keywords,
	canonical_url, robots_meta, og_title, og_description, og_type, og_url, og_image_url, og_image_alt,
	twitter_card, twitter_title, twitter_description, twitter_image_url, schema_json,
	created_at, updated_at, created_by, updated_by`

// orderings maps accepted ordering keys to SQL.
var orderings = map[string]string{
	"page_id":     "page_id ASC",
	"-page_id":    "page_id DESC",
	"page_name":   "page_name ASC, page_id ASC",
	"-page_name":  "page_name DESC, page_id ASC",
	"updated_at":  "updated_at ASC, page_id ASC",
	"-updated_at": "updated_at DESC, page_id ASC",
}

const defaultOrdering = "page_id"

// searchColumns are matched by TagFilter.Search.
var searchColumns = []string{"page_id", "page_name", "page_path", "page_title", "meta_keywords"}

// ValidOrdering reports whether key is an accepted ordering.
func ValidOrdering(key string) bool {
	_, ok := orderings[key]
	return ok
}

type TagQuery struct {
	filters []string
	args    []interface{}
	orderBy string
}

func NewTagQuery() *TagQuery {
	return &TagQuery{orderBy: orderings[defaultOrdering]}
}

func (q *TagQuery) Where(filter string, args ...interface{}) *TagQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

// WhereSearch matches text case-insensitively against the search columns.
func (q *TagQuery) WhereSearch(text string) *TagQuery {
	text = strings.TrimSpace(text)
	if text == "" {
		return q
	}
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	parts := make([]string, 0, len(searchColumns))
	args := make([]interface{}, 0, len(searchColumns))
	for _, col := range searchColumns {
		parts = append(parts, fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '\\'", col))
		args = append(args, pattern)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

func (q *TagQuery) WhereOGType(t string) *TagQuery {
	if t == "" {
		return q
	}
	return q.Where("og_type = ?", t)
}

func (q *TagQuery) WhereTwitterCard(c string) *TagQuery {
	if c == "" {
		return q
	}
	return q.Where("twitter_card = ?", c)
}

// OrderBy applies a whitelisted ordering key; unknown keys keep the default.
func (q *TagQuery) OrderBy(key string) *TagQuery {
	if clause, ok := orderings[key]; ok {
		q.orderBy = clause
	}
	return q
}

func (q *TagQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM seo_tags", tagColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	return query, q.args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
