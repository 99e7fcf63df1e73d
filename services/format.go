package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultCurrency is the suffix used when none is configured.
const DefaultCurrency = "lei"

// FormatMoney formats amount with exactly 2 decimal places followed by the
// currency suffix, e.g. "85.09 lei".
func FormatMoney(amount float64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return formatCents(amount) + " " + currency
}

// formatCents rounds half away from zero on the shortest decimal form of v,
// so 85.085 prints as "85.09" even though its binary value sits just below.
func formatCents(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	if math.Abs(v) >= 1e15 {
		return fmt.Sprintf("%.2f", v)
	}

	negative := v < 0
	digits := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(digits, ".")
	frac += "000"

	whole, _ := strconv.ParseInt(intPart, 10, 64)
	cents, _ := strconv.ParseInt(frac[:2], 10, 64)
	total := whole*100 + cents
	if frac[2] >= '5' {
		total++
	}
	if total == 0 {
		negative = false
	}

	s := fmt.Sprintf("%d.%02d", total/100, total%100)
	if negative {
		s = "-" + s
	}
	return s
}

// FormatNumber returns whole numbers without decimals and anything else with
// the shortest exact representation, e.g. 25 -> "25", 12.5 -> "12.5".
func FormatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage parameter, e.g. 19 -> "19%".
func FormatPercent(pct float64) string {
	return FormatNumber(pct) + "%"
}
