// Package services provides pricing, quotation and export functions for craft recipes.
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Recipe is a named cost profile for a producible item.
type Recipe struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MaterialCost Amount `json:"materialCost"`
	LaborMinutes Amount `json:"laborMinutes"`
	HourlyRate   Amount `json:"hourlyRate"`
	MarkupPct    Amount `json:"markupPct"`
	VATPct       Amount `json:"vatPct"`
	Notes        string `json:"notes,omitempty"`
}

// Breakdown is the monetary decomposition derived from a Recipe.
type Breakdown struct {
	LaborCost  float64
	Base       float64 // MaterialCost + LaborCost
	WithMarkup float64 // Base * (1 + MarkupPct/100)
	WithVAT    float64 // WithMarkup * (1 + VATPct/100)
}

// MarkupAmount is the margin added on top of the subtotal.
func (b Breakdown) MarkupAmount() float64 {
	return b.WithMarkup - b.Base
}

// VATAmount is the tax added on top of the marked-up subtotal.
func (b Breakdown) VATAmount() float64 {
	return b.WithVAT - b.WithMarkup
}

func CalcLaborCost(laborMinutes, hourlyRate float64) float64 {
	return (laborMinutes / 60) * hourlyRate
}

func ApplyPercent(amount, pct float64) float64 {
	return amount * (1 + pct/100)
}

// CalcBreakdown computes the itemized price for a recipe. Negative inputs are
// not rejected; they simply reduce the result.
func CalcBreakdown(r Recipe) Breakdown {
	laborCost := CalcLaborCost(r.LaborMinutes.Float(), r.HourlyRate.Float())
	base := r.MaterialCost.Float() + laborCost
	withMarkup := ApplyPercent(base, r.MarkupPct.Float())
	return Breakdown{
		LaborCost:  laborCost,
		Base:       base,
		WithMarkup: withMarkup,
		WithVAT:    ApplyPercent(withMarkup, r.VATPct.Float()),
	}
}

// NewPresetID mints a record id prefixed by the creation timestamp.
func NewPresetID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// ClonePreset copies r under a fresh id so it can be stored as a preset.
func ClonePreset(r Recipe, now time.Time) Recipe {
	preset := r
	preset.ID = NewPresetID(now)
	return preset
}

// DefaultRecipes returns the recipe list used when nothing has been stored yet.
func DefaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:           "default",
			Name:         "Beaded bracelet",
			MaterialCost: 30,
			LaborMinutes: 25,
			HourlyRate:   60,
			MarkupPct:    30,
			VATPct:       19,
		},
	}
}
