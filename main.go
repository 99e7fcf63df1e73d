package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"craftquote/cli"
	"craftquote/collections"
	"craftquote/config"
	"craftquote/handlers"
	"craftquote/sharing"
	"craftquote/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()
	app.RootCmd.AddCommand(cli.NewQuoteCommand(cfg, sharing.ClipboardSink{}))

	var deps *handlers.Deps

	// Create the store and load every collection on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app); err != nil {
			return err
		}
		d, err := handlers.NewDeps(context.Background(), app, storage.NewPocketBaseKV(app), cfg)
		if err != nil {
			return err
		}
		deps = d
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(handlers.LastClientMiddleware())

		// ── Pricing ──────────────────────────────────────────────
		se.Router.GET("/pricing", handlers.HandlePricing(deps))
		se.Router.GET("/pricing/breakdown", handlers.HandlePricingBreakdown(deps))
		se.Router.POST("/pricing/presets", handlers.HandleSavePreset(deps))
		se.Router.POST("/pricing/share", handlers.HandleShareQuote(deps))
		se.Router.GET("/pricing/export/{format}", handlers.HandleExportQuote(deps))

		// ── Orders ───────────────────────────────────────────────
		se.Router.GET("/orders", handlers.HandleOrders(deps))
		se.Router.POST("/orders", handlers.HandleCreateOrder(deps))
		se.Router.POST("/orders/{id}/advance", handlers.HandleAdvanceOrder(deps))
		se.Router.GET("/orders/export", handlers.HandleExportOrders(deps))

		// ── Quick replies ────────────────────────────────────────
		se.Router.GET("/replies", handlers.HandleReplies(deps))
		se.Router.POST("/replies", handlers.HandleCreateReply(deps))
		se.Router.POST("/replies/{id}/share", handlers.HandleShareReply(deps))

		se.Router.GET("/settings", handlers.HandleSettings(deps))
		se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))

		// Redirect home to the calculator
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/pricing")
		})

		return se.Next()
	})

	// Pending write-backs must land before the process exits
	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		if deps != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := deps.Flush(ctx); err != nil {
				log.Printf("shutdown: flush failed: %v", err)
			}
		}
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
