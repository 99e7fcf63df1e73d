package services

import (
	"fmt"
	"strings"
)

// QuoteInput is everything needed to render a quotation.
type QuoteInput struct {
	Recipe    Recipe
	Breakdown Breakdown
	Client    string
	Currency  string
	IssuedOn  string // optional, printed in the PDF footer only
}

// QuoteRow is one line item of the cost details section.
type QuoteRow struct {
	Label    string
	Value    string
	Emphasis bool
}

// QuoteDocument is the structured form of a quotation, shared by the HTML
// and PDF exports.
type QuoteDocument struct {
	Title    string
	Client   string
	Rows     []QuoteRow
	Notes    string
	IssuedOn string
}

// QuoteTitle returns the heading used by every quotation format.
func QuoteTitle(name string) string {
	return "Offer — " + strings.TrimSpace(name)
}

func quoteRows(in QuoteInput) []QuoteRow {
	r, b, cur := in.Recipe, in.Breakdown, in.Currency
	labor := fmt.Sprintf("Labor (%s min × %s/h)",
		FormatNumber(r.LaborMinutes.Float()), FormatMoney(r.HourlyRate.Float(), cur))
	return []QuoteRow{
		{Label: "Materials", Value: FormatMoney(r.MaterialCost.Float(), cur)},
		{Label: labor, Value: FormatMoney(b.LaborCost, cur)},
		{Label: "Subtotal", Value: FormatMoney(b.Base, cur)},
		{Label: fmt.Sprintf("Markup (%s)", FormatPercent(r.MarkupPct.Float())), Value: FormatMoney(b.MarkupAmount(), cur)},
		{Label: fmt.Sprintf("VAT (%s)", FormatPercent(r.VATPct.Float())), Value: FormatMoney(b.VATAmount(), cur)},
		{Label: "Total", Value: FormatMoney(b.WithVAT, cur), Emphasis: true},
	}
}

// BuildShareMessage renders the plain-text quotation. Optional lines
// (client, notes) are left out when empty, but their blank separators are
// not: the line before the cost rows is always there, and notes always get
// one above them. Chat apps show the text as-is, so the gaps are the only
// thing setting the rows apart.
func BuildShareMessage(in QuoteInput) string {
	lines := []string{QuoteTitle(in.Recipe.Name)}
	if client := strings.TrimSpace(in.Client); client != "" {
		lines = append(lines, "Client: "+client)
	}
	lines = append(lines, "")
	for _, row := range quoteRows(in) {
		lines = append(lines, row.Label+": "+row.Value)
	}
	if notes := strings.TrimSpace(in.Recipe.Notes); notes != "" {
		lines = append(lines, "", "Notes: "+notes)
	}
	return strings.Join(lines, "\n")
}

// BuildQuoteDocument arranges the quotation as a titled card.
func BuildQuoteDocument(in QuoteInput) QuoteDocument {
	return QuoteDocument{
		Title:    QuoteTitle(in.Recipe.Name),
		Client:   strings.TrimSpace(in.Client),
		Rows:     quoteRows(in),
		Notes:    strings.TrimSpace(in.Recipe.Notes),
		IssuedOn: in.IssuedOn,
	}
}
