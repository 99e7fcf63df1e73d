package services

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// pricingKey holds only the fields that feed CalcBreakdown, so two recipes
// with different names but equal numbers share an entry.
type pricingKey struct {
	materialCost float64
	laborMinutes float64
	hourlyRate   float64
	markupPct    float64
	vatPct       float64
}

func keyFor(r Recipe) pricingKey {
	return pricingKey{
		materialCost: r.MaterialCost.Float(),
		laborMinutes: r.LaborMinutes.Float(),
		hourlyRate:   r.HourlyRate.Float(),
		markupPct:    r.MarkupPct.Float(),
		vatPct:       r.VATPct.Float(),
	}
}

// PricingCache memoizes CalcBreakdown results.
type PricingCache struct {
	cache *lru.Cache[pricingKey, Breakdown]
}

// NewPricingCache creates a cache holding up to size breakdowns.
func NewPricingCache(size int) (*PricingCache, error) {
	if size <= 0 {
		size = 1
	}
	c, err := lru.New[pricingKey, Breakdown](size)
	if err != nil {
		return nil, fmt.Errorf("create pricing cache: %w", err)
	}
	return &PricingCache{cache: c}, nil
}

// Breakdown returns the cached breakdown for r, computing it on a miss.
func (p *PricingCache) Breakdown(r Recipe) Breakdown {
	key := keyFor(r)
	if b, ok := p.cache.Get(key); ok {
		return b
	}
	b := CalcBreakdown(r)
	p.cache.Add(key, b)
	return b
}

func (p *PricingCache) Len() int {
	return p.cache.Len()
}
