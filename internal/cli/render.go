package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// Render styles for plain (non-TUI) table output.
//
//nolint:gochecknoglobals // Styles are package-level constants in practice
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// comparison table layout
const (
	modeColWidth    = 12
	numberColWidth  = 14
	percentColWidth = 10
)

// renderReport renders a full trip report as a styled summary box plus the
// cross-mode comparison table.
func renderReport(w io.Writer, report *trip.Report) {
	var content strings.Builder

	content.WriteString(headerStyle.Render("TRIP EMISSION") + "\n")

	if report.Origin != "" || report.Destination != "" {
		content.WriteString(labelStyle.Render("Route:     "))
		content.WriteString(valueStyle.Render(fmt.Sprintf("%s -> %s", report.Origin, report.Destination)))
		content.WriteString("\n")
	}

	content.WriteString(labelStyle.Render("Distance:  "))
	content.WriteString(valueStyle.Render(emissions.FormatFloat(report.DistanceKm, 0) + " km"))
	content.WriteString(labelStyle.Render(fmt.Sprintf("  (%s)", report.Source)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Mode:      "))
	content.WriteString(valueStyle.Render(report.Mode.Glyph() + " " + report.Mode.Label()))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Emission:  "))
	content.WriteString(warnStyle.Render(emissions.FormatKg(report.EmissionKg)))
	content.WriteString("\n")

	if report.Savings.SavedKg > 0 {
		content.WriteString(labelStyle.Render("Saved:     "))
		content.WriteString(okStyle.Render(fmt.Sprintf("%s (%s vs car)",
			emissions.FormatKg(report.Savings.SavedKg),
			emissions.FormatPercent(report.Savings.Percent))))
		content.WriteString("\n")
	}

	content.WriteString(labelStyle.Render("Credits:   "))
	content.WriteString(valueStyle.Render(emissions.FormatCredits(report.Credits)))
	content.WriteString(labelStyle.Render("  est. "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%s - %s (avg %s)",
		emissions.FormatUSD(report.Price.MinUSD),
		emissions.FormatUSD(report.Price.MaxUSD),
		emissions.FormatUSD(report.Price.AverageUSD))))

	if text := report.Equivalency.DisplayText(); text != "" {
		content.WriteString("\n")
		content.WriteString(labelStyle.Render(text))
	}

	fmt.Fprintln(w, boxStyle.Render(content.String()))
	fmt.Fprintln(w)
	renderComparison(w, report.Comparison)
}

// renderComparison renders the all-modes table, one row per mode in
// ascending emission order.
func renderComparison(w io.Writer, rows []emissions.ModeEmission) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-*s %*s %*s",
		modeColWidth, "MODE", numberColWidth, "EMISSION (KG)", percentColWidth, "VS CAR")))

	for _, row := range rows {
		percent := "n/a"
		if row.PercentDefined {
			percent = emissions.FormatPercent(row.PercentVsCar)
		}

		line := fmt.Sprintf("%-*s %*s %*s",
			modeColWidth, row.Mode.Glyph()+" "+row.Mode.Label(),
			numberColWidth, emissions.FormatFloat(row.EmissionKg, 2),
			percentColWidth, percent)

		if row.EmissionKg == 0 {
			fmt.Fprintln(w, okStyle.Render(line))
			continue
		}
		fmt.Fprintln(w, line)
	}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeJSONLine writes v as one compact JSON line.
func writeJSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// writeNDJSON writes each item as one compact JSON line.
func writeNDJSON[T any](w io.Writer, items []T) error {
	enc := json.NewEncoder(w)
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}
