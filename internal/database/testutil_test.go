package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/testutil"
)

const testSiteURL = "https://www.example.com"

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

// fixedClock makes the database return increasing timestamps one minute apart.
func fixedClock(db *Database, start time.Time) {
	next := start
	db.now = func() time.Time {
		cur := next
		next = next.Add(time.Minute)
		return cur
	}
}

type TestDataBuilder struct {
	t       *testing.T
	ctx     context.Context
	db      *Database
	pageIDs []string
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db}
}

// WithTag stores a populated tag built from b.
func (b *TestDataBuilder) WithTag(tb *testutil.TagBuilder) *TestDataBuilder {
	b.t.Helper()
	tag := tb.Build()
	if err := seo.Prepare(&tag, testSiteURL); err != nil {
		b.t.Fatalf("Prepare %s failed: %v", tag.PageID, err)
	}
	if _, err := b.db.CreateTag(b.ctx, tag, "builder"); err != nil {
		b.t.Fatalf("CreateTag %s failed: %v", tag.PageID, err)
	}
	b.pageIDs = append(b.pageIDs, tag.PageID)
	return b
}

// WithTags stores one default tag per page id.
func (b *TestDataBuilder) WithTags(pageIDs ...string) *TestDataBuilder {
	b.t.Helper()
	for _, id := range pageIDs {
		b.WithTag(testutil.NewTag(id))
	}
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) PageIDs() []string {
	return b.pageIDs
}
