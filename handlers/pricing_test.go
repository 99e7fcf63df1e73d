package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"craftquote/services"
	"craftquote/testhelpers"
)

func recipeValues() url.Values {
	v := url.Values{}
	v.Set("name", "Clay mug")
	v.Set("material_cost", "40")
	v.Set("labor_minutes", "90")
	v.Set("hourly_rate", "50")
	v.Set("markup_pct", "25")
	v.Set("vat_pct", "19")
	v.Set("client", "Ana")
	return v
}

func TestHandlePricing_DefaultRecipe(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandlePricing(d), httptest.NewRequest(http.MethodGet, "/pricing", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "<!DOCTYPE html>", "Beaded bracelet", "85.09 lei", `id="presets"`)
}

func TestHandlePricing_HTMXRendersContentOnly(t *testing.T) {
	app, d := newTestDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/pricing", nil)
	req.Header.Set("HX-Request", "true")

	rec := serve(t, app, HandlePricing(d), req)

	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), "<!DOCTYPE html>", `<nav class="tabs">`)
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Beaded bracelet")
}

func TestHandlePricing_LoadsPreset(t *testing.T) {
	app, d := newTestDeps(t)
	preset := services.Recipe{ID: "p1", Name: "Clay mug", MaterialCost: 40, LaborMinutes: 90, HourlyRate: 50, MarkupPct: 25, VATPct: 19}
	if err := d.Recipes.Append(t.Context(), preset); err != nil {
		t.Fatalf("append: %v", err)
	}

	rec := serve(t, app, HandlePricing(d), httptest.NewRequest(http.MethodGet, "/pricing?preset=p1", nil))

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="Clay mug"`, `value="90"`)
}

func TestHandlePricing_UnknownPreset(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandlePricing(d), httptest.NewRequest(http.MethodGet, "/pricing?preset=missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	testhelpers.AssertHXTrigger(t, rec.Header().Get("HX-Trigger"), "error", "Preset not found")
}

func TestHandlePricingBreakdown(t *testing.T) {
	app, d := newTestDeps(t)
	v := url.Values{}
	v.Set("material_cost", "30")
	v.Set("labor_minutes", "25")
	v.Set("hourly_rate", "60")
	v.Set("markup_pct", "30")
	v.Set("vat_pct", "19")

	rec := serve(t, app, HandlePricingBreakdown(d), httptest.NewRequest(http.MethodGet, "/pricing/breakdown?"+v.Encode(), nil))

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "25.00 lei", "55.00 lei", "85.09 lei")
	testhelpers.AssertHTMLNotContains(t, body, "<!DOCTYPE html>")
}

func TestHandlePricingBreakdown_GarbageCountsAsZero(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandlePricingBreakdown(d),
		httptest.NewRequest(http.MethodGet, "/pricing/breakdown?material_cost=abc&labor_minutes=", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "0.00 lei")
}

func TestHandleSavePreset(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandleSavePreset(d), formRequest(http.MethodPost, "/pricing/presets", recipeValues()))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHXTrigger(t, rec.Header().Get("HX-Trigger"), "success", "Preset saved")

	recipes := d.Recipes.All()
	if len(recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(recipes))
	}
	saved := recipes[1]
	if saved.Name != "Clay mug" || saved.ID == "" || saved.ID == "default" {
		t.Errorf("unexpected preset %+v", saved)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Beaded bracelet", "Clay mug")

	flush(t, d)
	row, err := app.FindFirstRecordByData("kv_store", "key", "recipes")
	if err != nil {
		t.Fatalf("expected recipes row: %v", err)
	}
	if !strings.Contains(row.GetString("value"), "Clay mug") {
		t.Errorf("expected persisted presets to contain the new one, got %s", row.GetString("value"))
	}
}

func TestHandleSavePreset_RequiresName(t *testing.T) {
	app, d := newTestDeps(t)
	v := recipeValues()
	v.Set("name", "  ")

	rec := serve(t, app, HandleSavePreset(d), formRequest(http.MethodPost, "/pricing/presets", v))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if n := len(d.Recipes.All()); n != 1 {
		t.Errorf("expected no preset to be added, got %d recipes", n)
	}
}

func TestHandleShareQuote(t *testing.T) {
	app, d := newTestDeps(t)

	rec := serve(t, app, HandleShareQuote(d), formRequest(http.MethodPost, "/pricing/share", recipeValues()))

	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Offer — Clay mug\nClient: Ana\n\nMaterials: 40.00 lei\n") {
		t.Errorf("unexpected share message:\n%s", body)
	}
	if !strings.Contains(body, "Total: ") {
		t.Errorf("expected a total line:\n%s", body)
	}
}

func TestHandleExportQuote_PDF(t *testing.T) {
	app, d := newTestDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/pricing/export/pdf?"+recipeValues().Encode(), nil)
	req.SetPathValue("format", "pdf")

	rec := serve(t, app, HandleExportQuote(d), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != services.MIMEPDF {
		t.Errorf("expected %s, got %q", services.MIMEPDF, ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "offer-clay-mug-20261014-153000.pdf") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("expected a PDF body")
	}

	entries, err := os.ReadDir(d.Config.ExportDir)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected the export dir to be empty after download, got %v (%v)", entries, err)
	}
}

func TestHandleExportQuote_RepeatedDownloadsLeaveNoFiles(t *testing.T) {
	app, d := newTestDeps(t)

	for _, format := range []string{"pdf", "html", "pdf", "html"} {
		req := httptest.NewRequest(http.MethodGet, "/pricing/export/"+format+"?"+recipeValues().Encode(), nil)
		req.SetPathValue("format", format)

		rec := serve(t, app, HandleExportQuote(d), req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", format, rec.Code, rec.Body.String())
		}
		if rec.Body.Len() == 0 {
			t.Fatalf("%s: expected a document body", format)
		}
	}

	entries, err := os.ReadDir(d.Config.ExportDir)
	if err != nil || len(entries) != 0 {
		t.Fatalf("expected no files left behind, got %v (%v)", entries, err)
	}
}

func TestHandleExportQuote_HTML(t *testing.T) {
	app, d := newTestDeps(t)
	v := recipeValues()
	v.Set("notes", "Glaze <blue>")
	req := httptest.NewRequest(http.MethodGet, "/pricing/export/html?"+v.Encode(), nil)
	req.SetPathValue("format", "html")

	rec := serve(t, app, HandleExportQuote(d), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "<h1>Offer — Clay mug</h1>", "<h2>Client: Ana</h2>", "Glaze &lt;blue&gt;")
}

func TestHandleExportQuote_UnknownFormat(t *testing.T) {
	app, d := newTestDeps(t)
	req := httptest.NewRequest(http.MethodGet, "/pricing/export/docx", nil)
	req.SetPathValue("format", "docx")

	rec := serve(t, app, HandleExportQuote(d), req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleExportQuote_GenerationFailureNotifies(t *testing.T) {
	app, d := newTestDeps(t)
	blocker := d.Config.ExportDir + "/file"
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	d.Config.ExportDir = blocker + "/nested"
	req := httptest.NewRequest(http.MethodGet, "/pricing/export/html?"+recipeValues().Encode(), nil)
	req.SetPathValue("format", "html")

	rec := serve(t, app, HandleExportQuote(d), req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	testhelpers.AssertHXTrigger(t, rec.Header().Get("HX-Trigger"), "error", "Could not create document")
}
