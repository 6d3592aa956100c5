package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/tui"
	"github.com/akyairhashvil/seodesk/internal/util"
)

const sampleExport = `{
	// exported from staging
	"version": 1,
	"seo_tags": [
		{
			"page_id": "home",
			"page_path": "/",
			"page_name": "Home",
			"page_title": "Welcome",
			"meta_description": "Landing page",
			"og_image_url": "https://cdn.example.com/home.png",
		},
		{
			"page_id": "about",
			"page_path": "/about",
			"page_name": "About",
			"page_title": "About us",
			"meta_description": "Who we are",
			"og_image_url": "https://cdn.example.com/about.png",
			"twitter_title": "Meet the team",
		},
	],
	"advanced_seo": {"google_site_verification": "abc123"},
}`

// setupCLI points the data dir at a temp directory and returns a db path.
func setupCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("SEODESK_CONFIG", "")
	t.Setenv("SEODESK_DB", "")
	t.Setenv("SEODESK_SITE_URL", "https://www.example.com")
	return filepath.Join(dir, "cli.db")
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestImportExportRoundTrip(t *testing.T) {
	dbPath := setupCLI(t)
	src := writeFile(t, "seo.jsonc", sampleExport)

	out, err := runCLI(t, "--db", dbPath, "import", src)
	if err != nil {
		t.Fatalf("import failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Imported 2 tags (2 created, 0 updated) and site settings") {
		t.Fatalf("unexpected import output %q", out)
	}

	dst := filepath.Join(t.TempDir(), "out", "seo.json")
	if out, err := runCLI(t, "--db", dbPath, "export", dst); err != nil {
		t.Fatalf("export failed: %v\n%s", err, out)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	export, err := database.DecodeExport(data)
	if err != nil {
		t.Fatalf("DecodeExport failed: %v", err)
	}
	if len(export.SEOTags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(export.SEOTags))
	}
	about := export.SEOTags[0]
	if about.PageID != "about" || about.TwitterTitle != "Meet the team" || about.OGURL != "https://www.example.com/about" {
		t.Fatalf("unexpected exported tag %+v", about)
	}
	if about.CreatedBy != "cli" {
		t.Fatalf("expected created_by cli, got %q", about.CreatedBy)
	}
	if export.AdvancedSEO == nil || export.AdvancedSEO.GoogleSiteVerification != "abc123" {
		t.Fatalf("unexpected advanced settings %+v", export.AdvancedSEO)
	}

	out, err = runCLI(t, "--db", dbPath, "import", dst)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if !strings.Contains(out, "(0 created, 2 updated)") {
		t.Fatalf("unexpected re-import output %q", out)
	}
}

func TestImportRejectsInvalidTags(t *testing.T) {
	dbPath := setupCLI(t)
	bad := strings.Replace(sampleExport, `"page_title": "Welcome"`, `"page_title": "`+strings.Repeat("w", 71)+`"`, 1)
	src := writeFile(t, "bad.json", bad)

	_, err := runCLI(t, "--db", dbPath, "import", src)
	if err == nil || !strings.Contains(err.Error(), "home: invalid seo tag: page_title") {
		t.Fatalf("expected page_title failure for home, got %v", err)
	}

	out, err := runCLI(t, "--db", dbPath, "export", "-")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, `"seo_tags": []`) {
		t.Fatalf("expected nothing imported, got %s", out)
	}
}

func TestReportWritesPDF(t *testing.T) {
	dbPath := setupCLI(t)
	if _, err := runCLI(t, "--db", dbPath, "import", writeFile(t, "seo.json", sampleExport)); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "audit.pdf")
	out, err := runCLI(t, "--db", dbPath, "report", path)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Audited 2 tags (0 with issues)") {
		t.Fatalf("unexpected report output %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF, got %q", data[:min(len(data), 8)])
	}
}

func TestHashToken(t *testing.T) {
	orig := readSecret
	t.Cleanup(func() { readSecret = orig })

	const token = "a-long-enough-admin-token"
	readSecret = func(string) (string, error) { return token, nil }
	out, err := runCLI(t, "hash-token")
	if err != nil {
		t.Fatalf("hash-token failed: %v", err)
	}
	if err := util.CheckToken(strings.TrimSpace(out), token); err != nil {
		t.Fatalf("printed hash does not match token: %v", err)
	}

	answers := []string{token, "something-else-entirely"}
	readSecret = func(string) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	if _, err := runCLI(t, "hash-token"); err == nil {
		t.Fatal("expected mismatch error")
	}

	readSecret = func(string) (string, error) { return "short", nil }
	if _, err := runCLI(t, "hash-token"); err == nil {
		t.Fatal("expected short token rejected")
	}
}

func TestRootOpensEditor(t *testing.T) {
	dbPath := setupCLI(t)
	origTerm, origRun := isTerminal, runTUI
	t.Cleanup(func() { isTerminal, runTUI = origTerm, origRun })

	isTerminal = func() bool { return false }
	if _, err := runCLI(t, "--db", dbPath); !errors.Is(err, errNoTerminal) {
		t.Fatalf("expected errNoTerminal, got %v", err)
	}

	cfgPath := writeFile(t, "seodesk.yaml", "site_url: https://shop.example.com/\ntimezone: UTC\n")
	t.Setenv("SEODESK_SITE_URL", "")
	var gotSite string
	isTerminal = func() bool { return true }
	runTUI = func(_ context.Context, db tui.Database, siteURL string) error {
		if db == nil {
			t.Fatal("expected a database")
		}
		gotSite = siteURL
		return nil
	}
	if _, err := runCLI(t, "--config", cfgPath, "--db", dbPath); err != nil {
		t.Fatalf("root failed: %v", err)
	}
	if gotSite != "https://shop.example.com" {
		t.Fatalf("expected site from config, got %q", gotSite)
	}
}

func TestMissingExplicitConfig(t *testing.T) {
	setupCLI(t)
	if _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "export", "-"); err == nil {
		t.Fatal("expected missing config error")
	}
}
