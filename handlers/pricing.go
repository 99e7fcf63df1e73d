package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"craftquote/metrics"
	"craftquote/services"
	"craftquote/sharing"
	"craftquote/templates"
)

// recipeFromRequest reads the calculator inputs from the query string or
// form body. Unparseable numbers count as zero.
func recipeFromRequest(e *core.RequestEvent) (services.Recipe, templates.RecipeFormData) {
	form := templates.RecipeFormData{
		Name:         strings.TrimSpace(e.Request.FormValue("name")),
		MaterialCost: e.Request.FormValue("material_cost"),
		LaborMinutes: e.Request.FormValue("labor_minutes"),
		HourlyRate:   e.Request.FormValue("hourly_rate"),
		MarkupPct:    e.Request.FormValue("markup_pct"),
		VATPct:       e.Request.FormValue("vat_pct"),
		Notes:        e.Request.FormValue("notes"),
		Client:       e.Request.FormValue("client"),
	}
	return services.Recipe{
		Name:         form.Name,
		MaterialCost: services.Amount(services.ParseAmount(form.MaterialCost)),
		LaborMinutes: services.Amount(services.ParseAmount(form.LaborMinutes)),
		HourlyRate:   services.Amount(services.ParseAmount(form.HourlyRate)),
		MarkupPct:    services.Amount(services.ParseAmount(form.MarkupPct)),
		VATPct:       services.Amount(services.ParseAmount(form.VATPct)),
		Notes:        form.Notes,
	}, form
}

func recipeForm(r services.Recipe) templates.RecipeFormData {
	return templates.RecipeFormData{
		Name:         r.Name,
		MaterialCost: services.FormatNumber(r.MaterialCost.Float()),
		LaborMinutes: services.FormatNumber(r.LaborMinutes.Float()),
		HourlyRate:   services.FormatNumber(r.HourlyRate.Float()),
		MarkupPct:    services.FormatNumber(r.MarkupPct.Float()),
		VATPct:       services.FormatNumber(r.VATPct.Float()),
		Notes:        r.Notes,
	}
}

func (d *Deps) quoteInput(r services.Recipe, client string) services.QuoteInput {
	return services.QuoteInput{
		Recipe:    r,
		Breakdown: d.Pricing.Breakdown(r),
		Client:    client,
		Currency:  d.Config.Currency,
		IssuedOn:  d.Now().Format(services.DueDateLayout),
	}
}

func (d *Deps) presetViews() []templates.PresetView {
	recipes := d.Recipes.All()
	views := make([]templates.PresetView, 0, len(recipes))
	for _, r := range recipes {
		views = append(views, templates.PresetView{
			ID:    r.ID,
			Name:  r.Name,
			Total: services.FormatMoney(d.Pricing.Breakdown(r).WithVAT, d.Config.Currency),
		})
	}
	return views
}

func findRecipe(recipes []services.Recipe, id string) (services.Recipe, bool) {
	for _, r := range recipes {
		if r.ID == id {
			return r, true
		}
	}
	return services.Recipe{}, false
}

// HandlePricing renders the calculator. ?preset=<id> loads a saved recipe;
// otherwise the first stored recipe is shown.
func HandlePricing(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var recipe services.Recipe
		var form templates.RecipeFormData

		recipes := d.Recipes.All()
		if id := e.Request.URL.Query().Get("preset"); id != "" {
			r, ok := findRecipe(recipes, id)
			if !ok {
				log.Printf("pricing: preset %s not found", id)
				return ErrorToast(e, http.StatusNotFound, "Preset not found")
			}
			recipe, form = r, recipeForm(r)
		} else if e.Request.URL.Query().Has("material_cost") {
			recipe, form = recipeFromRequest(e)
		} else if len(recipes) > 0 {
			recipe, form = recipes[0], recipeForm(recipes[0])
		}
		if form.Client == "" {
			form.Client = GetLastClient(e.Request)
		}

		data := templates.PricingPageData{
			Form:    form,
			Rows:    services.BuildQuoteDocument(d.quoteInput(recipe, form.Client)).Rows,
			Presets: d.presetViews(),
		}
		return render(e, templates.PricingPage(data), templates.PricingContent(data))
	}
}

// HandlePricingBreakdown recalculates the cost details for the current inputs.
func HandlePricingBreakdown(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		recipe, form := recipeFromRequest(e)
		doc := services.BuildQuoteDocument(d.quoteInput(recipe, form.Client))
		return templates.BreakdownPanel(doc.Rows).Render(e.Request.Context(), e.Response)
	}
}

// HandleSavePreset stores the current inputs as a new preset.
func HandleSavePreset(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		recipe, _ := recipeFromRequest(e)
		if recipe.Name == "" {
			return ErrorToast(e, http.StatusBadRequest, "Give the preset a name first")
		}
		preset := services.ClonePreset(recipe, d.Now())
		if err := d.Recipes.Append(e.Request.Context(), preset); err != nil {
			log.Printf("pricing: failed to save preset: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Could not save preset")
		}
		SetToast(e, sharing.LevelSuccess, "Preset saved")
		return templates.PresetList(d.presetViews()).Render(e.Request.Context(), e.Response)
	}
}

// HandleShareQuote returns the plain-text quotation for the page script to
// pass to the share sheet.
func HandleShareQuote(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		recipe, form := recipeFromRequest(e)
		msg := services.BuildShareMessage(d.quoteInput(recipe, form.Client))
		rememberClient(e, form.Client)
		if !sharing.ShareText(e.Request.Context(), responseSink{e}, toastNotifier{e}, msg) {
			e.Response.Header().Set("HX-Reswap", "none")
			return nil
		}
		metrics.QuotesRendered.WithLabelValues(metrics.FormatMessage).Inc()
		return nil
	}
}

// HandleExportQuote writes the quotation as a PDF or HTML document and
// downloads it.
func HandleExportQuote(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format := e.Request.PathValue("format")

		var gen services.DocumentGenerator
		switch format {
		case metrics.FormatPDF:
			gen = services.PDFGenerator{Dir: d.Config.ExportDir, Now: d.Now}
		case metrics.FormatHTML:
			gen = services.HTMLGenerator{Dir: d.Config.ExportDir, Now: d.Now}
		default:
			return ErrorToast(e, http.StatusBadRequest, "Unknown export format")
		}

		recipe, form := recipeFromRequest(e)
		doc := services.BuildQuoteDocument(d.quoteInput(recipe, form.Client))
		rememberClient(e, form.Client)
		file, ok := sharing.ExportDocument(e.Request.Context(), gen, responseSink{e}, toastNotifier{e}, doc)
		if !ok {
			log.Printf("pricing: %s export failed for %q", format, doc.Title)
			e.Response.Header().Set("HX-Reswap", "none")
			return e.String(http.StatusInternalServerError, "Export failed")
		}
		metrics.QuotesRendered.WithLabelValues(format).Inc()
		log.Printf("pricing: exported %s (%d bytes)", file.Name, file.Size)
		return nil
	}
}
