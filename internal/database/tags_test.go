package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/testutil"
)

func preparedTag(t *testing.T, tb *testutil.TagBuilder) models.SEOTag {
	t.Helper()
	tag := tb.Build()
	if err := seo.Prepare(&tag, testSiteURL); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	return tag
}

func TestCreateAndGetTag(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fixedClock(db, start)

	want := preparedTag(t, testutil.NewTag("home").WithPath("/").WithSchema(`{"@type":"WebSite"}`))
	id, err := db.CreateTag(ctx, want, "alice")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	want.ID = id
	want.CreatedAt = start
	want.UpdatedAt = start
	want.CreatedBy = "alice"
	want.UpdatedBy = "alice"

	got, err := db.GetTag(ctx, "home")
	if err != nil {
		t.Fatalf("GetTag failed: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Fatalf("GetTag mismatch (-want +got):\n%s", diff)
	}

	byID, err := db.GetTagByID(ctx, id)
	if err != nil {
		t.Fatalf("GetTagByID failed: %v", err)
	}
	if byID.PageID != "home" {
		t.Fatalf("expected home, got %q", byID.PageID)
	}
}

func TestCreateTagDuplicatePageID(t *testing.T) {
	db := NewTestDataBuilder(t).WithTags("home").Build()
	_, err := db.CreateTag(context.Background(), preparedTag(t, testutil.NewTag("home")), "")
	if !errors.Is(err, ErrDuplicatePageID) {
		t.Fatalf("expected ErrDuplicatePageID, got %v", err)
	}
}

func TestMissingTag(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.GetTag(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetTag: expected ErrNotFound, got %v", err)
	}
	if _, err := db.GetTagByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetTagByID: expected ErrNotFound, got %v", err)
	}
	if err := db.DeleteTag(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteTag: expected ErrNotFound, got %v", err)
	}
	if err := db.UpdateTag(ctx, 99, preparedTag(t, testutil.NewTag("ghost")), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateTag: expected ErrNotFound, got %v", err)
	}
}

func TestUpdateTag(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	fixedClock(db, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	tag := preparedTag(t, testutil.NewTag("about"))
	id, err := db.CreateTag(ctx, tag, "alice")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	tag.PageTitle = "About the team"
	tag.Schema = nil
	if err := db.UpdateTag(ctx, id, tag, "bob"); err != nil {
		t.Fatalf("UpdateTag failed: %v", err)
	}
	got, err := db.GetTagByID(ctx, id)
	if err != nil {
		t.Fatalf("GetTagByID failed: %v", err)
	}
	if got.PageTitle != "About the team" {
		t.Fatalf("expected updated title, got %q", got.PageTitle)
	}
	if got.CreatedBy != "alice" || got.UpdatedBy != "bob" {
		t.Fatalf("expected alice/bob, got %q/%q", got.CreatedBy, got.UpdatedBy)
	}
	if !got.UpdatedAt.After(got.CreatedAt) {
		t.Fatalf("expected updated_at after created_at, got %v <= %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpdateTagRenameToExistingPageID(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithTags("a", "b").Build()
	b, err := db.GetTag(ctx, "b")
	if err != nil {
		t.Fatalf("GetTag failed: %v", err)
	}
	b.PageID = "a"
	if err := db.UpdateTag(ctx, b.ID, b, ""); !errors.Is(err, ErrDuplicatePageID) {
		t.Fatalf("expected ErrDuplicatePageID, got %v", err)
	}
}

func TestUpsertTag(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	tag := preparedTag(t, testutil.NewTag("pricing"))

	created, err := db.UpsertTag(ctx, tag, "seed")
	if err != nil {
		t.Fatalf("UpsertTag failed: %v", err)
	}
	if !created {
		t.Fatalf("expected first upsert to create")
	}

	tag.MetaDescription = "Plans and pricing"
	created, err = db.UpsertTag(ctx, tag, "seed")
	if err != nil {
		t.Fatalf("second UpsertTag failed: %v", err)
	}
	if created {
		t.Fatalf("expected second upsert to update")
	}
	got, err := db.GetTag(ctx, "pricing")
	if err != nil {
		t.Fatalf("GetTag failed: %v", err)
	}
	if got.MetaDescription != "Plans and pricing" {
		t.Fatalf("expected updated description, got %q", got.MetaDescription)
	}
}

func TestDeleteTag(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithTags("a", "b").Build()
	if err := db.DeleteTag(ctx, "a"); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}
	n, err := db.CountTags(ctx)
	if err != nil {
		t.Fatalf("CountTags failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 tag left, got %d", n)
	}
}

func pageIDs(tags []models.SEOTag) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.PageID)
	}
	return out
}

func TestListTagsFiltersAndOrdering(t *testing.T) {
	ctx := context.Background()
	b := NewTestDataBuilder(t)
	fixedClock(b.db, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	db := b.
		WithTag(testutil.NewTag("home").WithName("Zeta Home").WithKeywords("landing, main")).
		WithTag(testutil.NewTag("blog").WithName("Alpha Blog").WithOGType(models.OGTypeArticle)).
		WithTag(testutil.NewTag("shop").WithName("Mid Shop").WithOGType(models.OGTypeProduct).WithTwitterCard(models.TwitterCardSummary)).
		Build()

	cases := []struct {
		name   string
		filter TagFilter
		want   []string
	}{
		{"default order", TagFilter{}, []string{"blog", "home", "shop"}},
		{"by name", TagFilter{Ordering: "page_name"}, []string{"blog", "shop", "home"}},
		{"by name desc", TagFilter{Ordering: "-page_name"}, []string{"home", "shop", "blog"}},
		{"recent first", TagFilter{Ordering: "-updated_at"}, []string{"shop", "blog", "home"}},
		{"unknown ordering", TagFilter{Ordering: "drop table"}, []string{"blog", "home", "shop"}},
		{"search keywords", TagFilter{Search: "LANDING"}, []string{"home"}},
		{"search path", TagFilter{Search: "/sh"}, []string{"shop"}},
		{"search wildcard is literal", TagFilter{Search: "%"}, []string{}},
		{"og type", TagFilter{OGType: "article"}, []string{"blog"}},
		{"twitter card", TagFilter{TwitterCard: "summary"}, []string{"shop"}},
		{"combined", TagFilter{OGType: "product", Search: "home"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tags, err := db.ListTags(ctx, tc.filter)
			if err != nil {
				t.Fatalf("ListTags failed: %v", err)
			}
			if diff := cmp.Diff(tc.want, pageIDs(tags)); diff != "" {
				t.Fatalf("ListTags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcurrentTagUpdates(t *testing.T) {
	ctx := context.Background()
	db := NewTestDataBuilder(t).WithTags("home").Build()
	tag, err := db.GetTag(ctx, "home")
	if err != nil {
		t.Fatalf("GetTag failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			next := tag
			next.PageTitle = "Title " + string(rune('A'+i))
			if err := db.UpdateTag(ctx, tag.ID, next, "worker"); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent update failed: %v", err)
	}
}
