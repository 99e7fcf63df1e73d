package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"craftquote/templates"
)

// Version is shown on the settings page.
var Version = "0.1.0"

func HandleSettings(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SettingsPageData{
			Currency:    d.Config.Currency,
			ExportDir:   d.Config.ExportDir,
			RecipeCount: len(d.Recipes.All()),
			OrderCount:  len(d.Orders.All()),
			ReplyCount:  len(d.Replies.All()),
			Version:     Version,
		}
		return templates.SettingsPage(data).Render(e.Request.Context(), e.Response)
	}
}
