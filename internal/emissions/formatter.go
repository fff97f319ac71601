package emissions

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the specified precision and thousand
// separators. Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	rounded := roundTo(f, precision)
	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	format := fmt.Sprintf("%%.%df", precision)
	formatted := printer.Sprintf(format, rounded)
	return formatted
}

// FormatKg renders an emission value for display, e.g. "54.12 kg CO2".
func FormatKg(kg float64) string {
	return FormatFloat(kg, emissionPrecision) + " kg CO2"
}

// FormatUSD renders a dollar amount, e.g. "$1,234.56".
func FormatUSD(usd float64) string {
	if usd < 0 && roundTo(usd, pricePrecision) != 0 {
		return "-$" + FormatFloat(math.Abs(usd), pricePrecision)
	}
	return "$" + FormatFloat(usd, pricePrecision)
}

// FormatPercent renders a percentage, e.g. "42.50%".
func FormatPercent(pct float64) string {
	return FormatFloat(pct, percentPrecision) + "%"
}

// FormatCredits renders a carbon-credit count, e.g. "0.0541".
func FormatCredits(credits float64) string {
	return FormatFloat(credits, creditPrecision)
}
