package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/models"
	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/testutil"
)

const testSiteURL = "https://www.example.com"

func setupTestDB(t *testing.T) (*database.Database, context.Context) {
	t.Helper()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "tui.db")
	db, err := database.Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db, ctx
}

func seedTag(t *testing.T, db *database.Database, ctx context.Context, tb *testutil.TagBuilder) models.SEOTag {
	t.Helper()
	tag := tb.Build()
	if err := seo.Prepare(&tag, testSiteURL); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	id, err := db.CreateTag(ctx, tag, "seed")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	tag.ID = id
	return tag
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeInto sends one key per rune to the form.
func typeInto(m FormModel, text string) FormModel {
	for _, r := range text {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// focusOn tabs until the named field has focus.
func focusOn(t *testing.T, m FormModel, name string) FormModel {
	t.Helper()
	for i := 0; i < len(m.fields.fields); i++ {
		if m.current().name == name {
			return m
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	t.Fatalf("field %s not reachable", name)
	return m
}

func field(t *testing.T, m FormModel, name string) *formField {
	t.Helper()
	f, ok := m.fields.byName[name]
	if !ok {
		t.Fatalf("missing field %s", name)
	}
	return f
}

// runCmd executes cmd and returns its message, or nil.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
