package database

import (
	"context"
	"testing"

	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/testutil"
)

func TestGetAdvancedCreatesSingleton(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	first, err := db.GetAdvanced(ctx)
	if err != nil {
		t.Fatalf("GetAdvanced failed: %v", err)
	}
	if first.ID != models.AdvancedSEOSingletonID {
		t.Fatalf("expected singleton id, got %d", first.ID)
	}
	if first.GoogleSiteVerification != "" || first.HeaderScript != "" {
		t.Fatalf("expected empty settings, got %+v", first)
	}
	if _, err := db.GetAdvanced(ctx); err != nil {
		t.Fatalf("second GetAdvanced failed: %v", err)
	}
	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM advanced_seo").Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row, got %d", count)
	}
}

func TestSaveAdvanced(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	adv := testutil.NewAdvanced().WithVerification("abc123").WithScripts("<script>h</script>", "<script>f</script>").Build()
	adv.ID = 42
	if err := db.SaveAdvanced(ctx, adv, "alice"); err != nil {
		t.Fatalf("SaveAdvanced failed: %v", err)
	}
	adv.GoogleSiteVerification = "def456"
	if err := db.SaveAdvanced(ctx, adv, "bob"); err != nil {
		t.Fatalf("second SaveAdvanced failed: %v", err)
	}

	got, err := db.GetAdvanced(ctx)
	if err != nil {
		t.Fatalf("GetAdvanced failed: %v", err)
	}
	if got.ID != models.AdvancedSEOSingletonID {
		t.Fatalf("expected singleton id, got %d", got.ID)
	}
	if got.GoogleSiteVerification != "def456" || got.FooterScript != "<script>f</script>" {
		t.Fatalf("unexpected settings %+v", got)
	}
	if got.CreatedBy != "alice" || got.UpdatedBy != "bob" {
		t.Fatalf("expected alice/bob, got %q/%q", got.CreatedBy, got.UpdatedBy)
	}
}
