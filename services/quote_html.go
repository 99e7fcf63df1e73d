package services

import (
	"strings"
)

var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeMarkup escapes the five markup metacharacters. Every piece of user
// text placed in a quotation document must go through it.
func EscapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}

const quoteStyle = `body{font-family:-apple-system,Helvetica,Arial,sans-serif;background:#f4f4f5;margin:0;padding:24px;color:#18181b}` +
	`.card{max-width:560px;margin:0 auto;background:#fff;border-radius:12px;padding:24px;box-shadow:0 1px 3px rgba(0,0,0,.12)}` +
	`h1{font-size:22px;margin:0 0 4px}h2{font-size:15px;font-weight:normal;color:#52525b;margin:0 0 16px}` +
	`h3{font-size:13px;text-transform:uppercase;color:#71717a;margin:16px 0 8px}` +
	`table{width:100%;border-collapse:collapse}td{padding:6px 0;border-bottom:1px solid #e4e4e7}` +
	`td.value{text-align:right;white-space:nowrap}tr.total td{border-bottom:none;font-size:16px}`

// HTML renders the document as a standalone page.
func (d QuoteDocument) HTML() string {
	var b strings.Builder
	title := EscapeMarkup(d.Title)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + title + "</title>\n")
	b.WriteString("<style>" + quoteStyle + "</style>\n</head>\n<body>\n")
	b.WriteString("<div class=\"card\">\n")
	b.WriteString("<h1>" + title + "</h1>\n")
	if d.Client != "" {
		b.WriteString("<h2>Client: " + EscapeMarkup(d.Client) + "</h2>\n")
	}

	b.WriteString("<section class=\"details\">\n<h3>Cost details</h3>\n<table>\n")
	for _, row := range d.Rows {
		label, value := EscapeMarkup(row.Label), EscapeMarkup(row.Value)
		if row.Emphasis {
			b.WriteString("<tr class=\"total\"><td><strong>" + label + "</strong></td><td class=\"value\"><strong>" + value + "</strong></td></tr>\n")
			continue
		}
		b.WriteString("<tr><td>" + label + "</td><td class=\"value\">" + value + "</td></tr>\n")
	}
	b.WriteString("</table>\n</section>\n")

	if d.Notes != "" {
		b.WriteString("<section class=\"notes\">\n<h3>Notes</h3>\n<p>" + EscapeMarkup(d.Notes) + "</p>\n</section>\n")
	}
	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}
