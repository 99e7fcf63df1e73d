package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"craftquote/config"
	"craftquote/services"
	"craftquote/storage"
)

// Deps is everything the handlers share: the per-collection stores, config
// and the pricing memo.
type Deps struct {
	App     core.App
	Config  config.Config
	Recipes *storage.Collection[services.Recipe]
	Orders  *storage.Collection[services.Order]
	Replies *storage.Collection[services.Reply]
	Pricing *services.PricingCache
	Now     func() time.Time
}

// NewDeps builds the stores on top of kv and loads every collection.
func NewDeps(ctx context.Context, app core.App, kv storage.KV, cfg config.Config) (*Deps, error) {
	pricing, err := services.NewPricingCache(cfg.PricingCacheSize)
	if err != nil {
		return nil, fmt.Errorf("pricing cache: %w", err)
	}
	if cfg.Currency == "" {
		cfg.Currency = services.DefaultCurrency
	}
	if cfg.ReplyCategory == "" {
		cfg.ReplyCategory = services.DefaultReplyCategory
	}

	d := &Deps{
		App:     app,
		Config:  cfg,
		Recipes: storage.NewCollection(kv, storage.KeyRecipes, services.DefaultRecipes),
		Orders:  storage.NewCollection[services.Order](kv, storage.KeyOrders, nil),
		Replies: storage.NewCollection(kv, storage.KeyReplies, services.DefaultReplies),
		Pricing: pricing,
		Now:     time.Now,
	}
	d.Recipes.Load(ctx)
	d.Orders.Load(ctx)
	d.Replies.Load(ctx)
	return d, nil
}

// Flush waits for all pending write-backs.
func (d *Deps) Flush(ctx context.Context) error {
	for _, flush := range []func(context.Context) error{d.Recipes.Flush, d.Orders.Flush, d.Replies.Flush} {
		if err := flush(ctx); err != nil {
			return err
		}
	}
	return nil
}
