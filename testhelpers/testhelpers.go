// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"craftquote/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() {
		app.ResetBootstrapState()
	})

	if err := collections.Setup(app); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// SetTestKV writes a raw kv_store row, bypassing the storage layer, so tests
// can start from arbitrary (even malformed) persisted state.
func SetTestKV(t *testing.T, app *pocketbase.PocketBase, key, value string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(collections.KVStore)
	if err != nil {
		t.Fatalf("failed to find %s collection: %v", collections.KVStore, err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("value", value)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save kv row %q: %v", key, err)
	}

	return record
}

// AssertHXTrigger checks that the HX-Trigger header carries a toast of the
// given type whose message contains the fragment.
func AssertHXTrigger(t *testing.T, headerVal, toastType, fragment string) {
	t.Helper()

	if headerVal == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	if !strings.Contains(headerVal, `"type":"`+toastType+`"`) {
		t.Errorf("expected %s toast, got HX-Trigger %s", toastType, headerVal)
	}
	if !strings.Contains(headerVal, fragment) {
		t.Errorf("expected toast message to contain %q, got %s", fragment, headerVal)
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q", frag)
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected body not to contain %q", frag)
		}
	}
}
