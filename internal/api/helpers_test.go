package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/database"
	"github.com/akyairhashvil/seodesk/internal/seo"
	"github.com/akyairhashvil/seodesk/internal/testutil"
	"github.com/akyairhashvil/seodesk/internal/util"
)

const testToken = "test-admin-token-0123456789"

var (
	hashOnce  sync.Once
	tokenHash string
)

func testTokenHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := util.HashToken(testToken)
		if err != nil {
			t.Fatalf("HashToken failed: %v", err)
		}
		tokenHash = h
	})
	return tokenHash
}

type testEnv struct {
	t   *testing.T
	ctx context.Context
	db  *database.Database
	srv *Server
}

// newTestEnv opens a temp store behind a server. withToken controls whether
// an admin hash is configured.
func newTestEnv(t *testing.T, withToken bool) *testEnv {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()
	db, err := database.Open(ctx, filepath.Join(dir, "api.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.Default(dir)
	cfg.SiteURL = "https://www.example.com"
	cfg.Timezone = "Asia/Kolkata"
	if withToken {
		cfg.API.AdminTokenHash = testTokenHash(t)
	}
	srv, err := NewServer(db, cfg, nil)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return &testEnv{t: t, ctx: ctx, db: db, srv: srv}
}

func (e *testEnv) seed(builders ...*testutil.TagBuilder) {
	e.t.Helper()
	for _, b := range builders {
		tag := b.Build()
		if err := seo.Prepare(&tag, "https://www.example.com"); err != nil {
			e.t.Fatalf("Prepare %s failed: %v", tag.PageID, err)
		}
		if _, err := e.db.CreateTag(e.ctx, tag, "seed"); err != nil {
			e.t.Fatalf("CreateTag %s failed: %v", tag.PageID, err)
		}
	}
}

// do sends a request; body may be nil, a string or a value to marshal.
func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		if err := json.NewEncoder(&buf).Encode(v); err != nil {
			e.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
