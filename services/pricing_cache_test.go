package services

import "testing"

func TestPricingCache(t *testing.T) {
	cache, err := NewPricingCache(2)
	if err != nil {
		t.Fatalf("NewPricingCache() error = %v", err)
	}

	a := Recipe{Name: "A", MaterialCost: 10, LaborMinutes: 30, HourlyRate: 20, MarkupPct: 10, VATPct: 19}
	renamed := a
	renamed.Name = "A copy"
	renamed.Notes = "same numbers"

	if got, want := cache.Breakdown(a), CalcBreakdown(a); got != want {
		t.Errorf("Breakdown(a) = %+v, want %+v", got, want)
	}
	if got := cache.Breakdown(renamed); got != CalcBreakdown(a) {
		t.Errorf("renamed recipe got %+v", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (name and notes are not part of the key)", cache.Len())
	}

	b := a
	b.VATPct = 9
	c := a
	c.MarkupPct = 50
	cache.Breakdown(b)
	cache.Breakdown(c)
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2 after eviction", cache.Len())
	}
	if got := cache.Breakdown(b); got != CalcBreakdown(b) {
		t.Errorf("Breakdown(b) = %+v, want %+v", got, CalcBreakdown(b))
	}
}

func TestNewPricingCache_NonPositiveSize(t *testing.T) {
	cache, err := NewPricingCache(0)
	if err != nil {
		t.Fatalf("NewPricingCache(0) error = %v", err)
	}
	r := Recipe{MaterialCost: 1}
	if got := cache.Breakdown(r); got != CalcBreakdown(r) {
		t.Errorf("Breakdown = %+v", got)
	}
}
