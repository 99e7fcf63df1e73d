package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
)

type SettingsPageData struct {
	Currency    string
	ExportDir   string
	RecipeCount int
	OrderCount  int
	ReplyCount  int
	Version     string
}

func SettingsPage(data SettingsPageData) templ.Component {
	return Page("Settings", TabSettings, component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<h1>Settings</h1><section class="card"><table>`)
		rows := [][2]string{
			{"Currency", data.Currency},
			{"Export folder", data.ExportDir},
			{"Saved presets", strconv.Itoa(data.RecipeCount)},
			{"Orders", strconv.Itoa(data.OrderCount)},
			{"Replies", strconv.Itoa(data.ReplyCount)},
			{"Version", data.Version},
		}
		for _, r := range rows {
			h.raw(`<tr><td>`)
			h.text(r[0])
			h.raw(`</td><td class="value">`)
			h.text(r[1])
			h.raw(`</td></tr>`)
		}
		h.raw(`</table></section>`)
		h.raw(`<section class="card"><p class="muted">Prices are computed as materials plus labor, then markup, then VAT. `)
		h.raw(`All data stays on this device; there is no account and nothing is synced.</p></section>`)
	}))
}
