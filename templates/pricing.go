package templates

import (
	"net/url"

	"craftquote/services"
)

// RecipeFormData echoes the calculator inputs back as typed.
type RecipeFormData struct {
	Name         string
	MaterialCost string
	LaborMinutes string
	HourlyRate   string
	MarkupPct    string
	VATPct       string
	Notes        string
	Client       string
}

// Query encodes the form so export links reproduce the same quotation.
func (f RecipeFormData) Query() string {
	v := url.Values{}
	v.Set("name", f.Name)
	v.Set("material_cost", f.MaterialCost)
	v.Set("labor_minutes", f.LaborMinutes)
	v.Set("hourly_rate", f.HourlyRate)
	v.Set("markup_pct", f.MarkupPct)
	v.Set("vat_pct", f.VATPct)
	v.Set("notes", f.Notes)
	v.Set("client", f.Client)
	return v.Encode()
}

type PresetView struct {
	ID    string
	Name  string
	Total string
}

type PricingPageData struct {
	Form    RecipeFormData
	Rows    []services.QuoteRow
	Presets []PresetView
}
