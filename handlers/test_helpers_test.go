package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"craftquote/config"
	"craftquote/storage"
	"craftquote/testhelpers"
)

var fixedNow = time.Date(2026, time.October, 14, 15, 30, 0, 0, time.UTC)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app core.App, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newTestDeps wires handlers to a fresh PocketBase-backed store with a fixed
// clock and a temporary export directory.
func newTestDeps(t *testing.T) (*pocketbase.PocketBase, *Deps) {
	t.Helper()
	app := testhelpers.NewTestApp(t)
	cfg := config.Config{
		Currency:         "lei",
		ExportDir:        t.TempDir(),
		PricingCacheSize: 16,
		ReplyCategory:    "General",
	}
	d, err := NewDeps(context.Background(), app, storage.NewPocketBaseKV(app), cfg)
	if err != nil {
		t.Fatalf("NewDeps: %v", err)
	}
	d.Now = func() time.Time { return fixedNow }
	// Registered after the app's own cleanup, so it runs before the app closes.
	t.Cleanup(func() { flush(t, d) })
	return app, d
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(t *testing.T, app core.App, handler func(*core.RequestEvent) error, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func flush(t *testing.T, d *Deps) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
}
