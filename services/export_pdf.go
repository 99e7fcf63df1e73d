package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor = &props.Color{Red: 113, Green: 113, Blue: 122}
	stripeBg   = &props.Color{Red: 250, Green: 250, Blue: 250}
	totalBg    = &props.Color{Red: 235, Green: 235, Blue: 238}
)

// GenerateQuotePDF lays out a quotation document as a single-page card and
// returns the raw PDF bytes.
func GenerateQuotePDF(doc QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).
		WithTopMargin(20).
		WithRightMargin(20).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, doc)
	addQuoteDetails(m, doc.Rows)
	if doc.Notes != "" {
		addQuoteNotes(m, doc.Notes)
	}
	if doc.IssuedOn != "" {
		addQuoteFooter(m, doc.IssuedOn)
	}

	pdf, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdf.GetBytes(), nil
}

func addQuoteHeader(m core.Maroto, doc QuoteDocument) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	if doc.Client != "" {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New("Client: "+doc.Client, props.Text{
						Size:  11,
						Align: align.Left,
						Color: mutedColor,
					}),
				),
			),
		)
	}

	m.AddRows(row.New(6))
}

func addQuoteDetails(m core.Maroto, rows []QuoteRow) {
	m.AddRows(sectionHeading("COST DETAILS"))

	stripe := &props.Cell{BackgroundColor: stripeBg}
	plain := &props.Cell{}
	for i, r := range rows {
		style := fontstyle.Normal
		size := 10.0
		cell := plain
		if i%2 == 1 {
			cell = stripe
		}
		if r.Emphasis {
			style = fontstyle.Bold
			size = 12
			cell = &props.Cell{BackgroundColor: totalBg}
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(r.Label, props.Text{Size: size, Style: style, Align: align.Left, Top: 1.5}),
				).WithStyle(cell),
				col.New(4).Add(
					text.New(r.Value, props.Text{Size: size, Style: style, Align: align.Right, Top: 1.5}),
				).WithStyle(cell),
			),
		)
	}
}

func addQuoteNotes(m core.Maroto, notes string) {
	m.AddRows(row.New(6))
	m.AddRows(sectionHeading("NOTES"))
	m.AddAutoRow(
		col.New(12).Add(
			text.New(notes, props.Text{Size: 10, Align: align.Left}),
		),
	)
}

func addQuoteFooter(m core.Maroto, issuedOn string) {
	m.AddRows(row.New(10))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Issued on %s", issuedOn), props.Text{
					Size:  8,
					Align: align.Left,
					Color: mutedColor,
				}),
			),
		),
	)
}

func sectionHeading(label string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Left,
				Color: mutedColor,
			}),
		),
	)
}
