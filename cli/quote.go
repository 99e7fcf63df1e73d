// Package cli adds craftquote's own subcommands to the PocketBase root command.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"craftquote/config"
	"craftquote/metrics"
	"craftquote/services"
	"craftquote/sharing"
)

type quoteFlags struct {
	name     string
	client   string
	notes    string
	material string
	minutes  string
	rate     string
	markup   string
	vat      string

	copyText   bool
	exportPDF  bool
	exportHTML bool
}

// NewQuoteCommand returns the "quote" command. It prints the plain-text
// quotation, optionally copies it through clip and optionally exports it
// into cfg.ExportDir.
func NewQuoteCommand(cfg config.Config, clip sharing.Sink) *cobra.Command {
	def := services.DefaultRecipes()[0]
	f := quoteFlags{}

	cmd := &cobra.Command{
		Use:          "quote",
		Short:        "Price a recipe and print the quotation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			notifier := sharing.WriterNotifier{W: cmd.ErrOrStderr()}

			currency := cfg.Currency
			if currency == "" {
				currency = services.DefaultCurrency
			}
			recipe := services.Recipe{
				Name:         f.name,
				MaterialCost: services.Amount(services.ParseAmount(f.material)),
				LaborMinutes: services.Amount(services.ParseAmount(f.minutes)),
				HourlyRate:   services.Amount(services.ParseAmount(f.rate)),
				MarkupPct:    services.Amount(services.ParseAmount(f.markup)),
				VATPct:       services.Amount(services.ParseAmount(f.vat)),
				Notes:        f.notes,
			}
			now := time.Now()
			in := services.QuoteInput{
				Recipe:    recipe,
				Breakdown: services.CalcBreakdown(recipe),
				Client:    f.client,
				Currency:  currency,
				IssuedOn:  now.Format(services.DueDateLayout),
			}

			msg := services.BuildShareMessage(in)
			fmt.Fprintln(out, msg)
			metrics.QuotesRendered.WithLabelValues(metrics.FormatMessage).Inc()

			if f.copyText && sharing.ShareText(ctx, clip, notifier, msg) {
				notifier.Notify(ctx, sharing.LevelSuccess, "Copied to clipboard")
			}

			doc := services.BuildQuoteDocument(in)
			var gens []services.DocumentGenerator
			if f.exportPDF {
				gens = append(gens, services.PDFGenerator{Dir: cfg.ExportDir})
			}
			if f.exportHTML {
				gens = append(gens, services.HTMLGenerator{Dir: cfg.ExportDir})
			}
			for _, gen := range gens {
				// No share sheet on a terminal, so the saved path is reported instead.
				if _, ok := sharing.ExportDocument(ctx, gen, sharing.Unavailable{}, notifier, doc); !ok {
					return fmt.Errorf("export %q failed", doc.Title)
				}
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", def.Name, "recipe name")
	fl.StringVar(&f.client, "client", "", "client name")
	fl.StringVar(&f.notes, "notes", "", "notes printed under the cost details")
	fl.StringVar(&f.material, "material", services.FormatNumber(def.MaterialCost.Float()), "material cost")
	fl.StringVar(&f.minutes, "minutes", services.FormatNumber(def.LaborMinutes.Float()), "labor minutes")
	fl.StringVar(&f.rate, "rate", services.FormatNumber(def.HourlyRate.Float()), "hourly rate")
	fl.StringVar(&f.markup, "markup", services.FormatNumber(def.MarkupPct.Float()), "markup percent")
	fl.StringVar(&f.vat, "vat", services.FormatNumber(def.VATPct.Float()), "VAT percent")
	fl.BoolVar(&f.copyText, "copy", false, "copy the quotation to the clipboard")
	fl.BoolVar(&f.exportPDF, "pdf", false, "export the quotation as PDF")
	fl.BoolVar(&f.exportHTML, "html", false, "export the quotation as HTML")
	return cmd
}
