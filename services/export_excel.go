package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ordersSheet = "Orders"

// GenerateOrdersExcel writes the order list to a spreadsheet and returns the
// file contents.
func GenerateOrdersExcel(orders []Order, currency string) ([]byte, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, ordersSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{24, 36, 14, 14, 16}
	for i, col := range columns {
		if err := f.SetColWidth(ordersSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	moneyFmt := fmt.Sprintf(`0.00 "%s"`, currency)
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	headers := []string{"Client", "Item", "Due date", "Status", "Total"}
	for i, h := range headers {
		f.SetCellValue(ordersSheet, columns[i]+"1", h)
	}
	f.SetCellStyle(ordersSheet, "A1", lastCol+"1", headerStyle)

	var total float64
	row := 2
	for _, o := range orders {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(ordersSheet, "A"+r, sanitizeExcelCell(o.Client))
		f.SetCellValue(ordersSheet, "B"+r, sanitizeExcelCell(o.Item))
		f.SetCellValue(ordersSheet, "C"+r, o.DueDate.Format(DueDateLayout))
		f.SetCellValue(ordersSheet, "D"+r, o.Status.Label())
		f.SetCellValue(ordersSheet, "E"+r, o.Total.Float())
		f.SetCellStyle(ordersSheet, "A"+r, "D"+r, bodyStyle)
		f.SetCellStyle(ordersSheet, "E"+r, "E"+r, moneyStyle)
		total += o.Total.Float()
		row++
	}

	// Blank row, then the grand total.
	row++
	r := fmt.Sprintf("%d", row)
	f.SetCellValue(ordersSheet, "D"+r, "Total:")
	f.SetCellValue(ordersSheet, "E"+r, total)
	f.SetCellStyle(ordersSheet, "E"+r, "E"+r, moneyStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values that Excel would read as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
