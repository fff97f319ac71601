package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/emissions"
	"github.com/RakellM/DIO-Project-CO2-Calculator/internal/trip"
)

// View renders the current view.
func (m *CalculatorModel) View() string {
	switch m.state {
	case CalculatorStateQuitting:
		return ""

	case CalculatorStateCalculating:
		return m.renderFormView(true)

	case CalculatorStateResults:
		return m.renderResultsView()

	case CalculatorStateEditing:
	}

	return m.renderFormView(false)
}

// renderFormView renders the trip form. While calculating, the form is
// shown read-only with the spinner underneath.
func (m *CalculatorModel) renderFormView(calculating bool) string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("CO2 Trip Calculator"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(fieldOrigin, "Origin", m.origin.View()))
	b.WriteString(m.renderField(fieldDestination, "Destination", m.destination.View()))
	b.WriteString(m.renderField(fieldDistance, "Distance", m.distance.View()))
	b.WriteString(m.renderField(fieldMode, "Mode", m.renderModeSelector()))

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(capitalize(m.err.Error())))
		b.WriteString("\n")
	}

	if calculating {
		b.WriteString(m.loading.View())
	} else {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render("tab/↓ next field • ←/→ pick mode • enter calculate • esc quit"))
		b.WriteString("\n")
	}

	return b.String()
}

// renderField renders one labeled form row, marking the focused one.
func (m *CalculatorModel) renderField(field int, label, value string) string {
	marker := "  "
	style := LabelStyle
	if m.focused == field {
		marker = FocusStyle.Render("> ")
		style = FocusStyle
	}
	return fmt.Sprintf("%s%s %s\n", marker, style.Render(fmt.Sprintf("%-12s", label+":")), value)
}

// renderModeSelector renders the horizontal transport mode picker.
func (m *CalculatorModel) renderModeSelector() string {
	parts := make([]string, 0, len(emissions.Modes()))
	for i, mode := range emissions.Modes() {
		label := fmt.Sprintf("%s %s", mode.Glyph(), mode.Label())
		if i == m.modeIdx {
			label = lipgloss.NewStyle().
				Foreground(ModeColor(string(mode))).
				Bold(true).
				Render("[" + label + "]")
		} else {
			label = MutedStyle.Render(" " + label + " ")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// renderResultsView renders the completed report.
func (m *CalculatorModel) renderResultsView() string {
	if m.report == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Trip Emission Report"))
	b.WriteString("\n\n")
	b.WriteString(BoxStyle.Render(renderReportSummary(m.report)))
	b.WriteString("\n\n")
	b.WriteString(renderComparisonTable(m.report))
	b.WriteString("\n\n")
	b.WriteString(MutedStyle.Render("n new trip • esc back • q quit"))
	b.WriteString("\n")

	return b.String()
}

// renderReportSummary renders the headline figures for a report.
func renderReportSummary(r *trip.Report) string {
	var b strings.Builder

	route := fmt.Sprintf("%s km", emissions.FormatFloat(r.DistanceKm, 1))
	if r.Origin != "" && r.Destination != "" {
		route = fmt.Sprintf("%s → %s (%s km)", r.Origin, r.Destination, emissions.FormatFloat(r.DistanceKm, 1))
	}
	writeSummaryRow(&b, "Route", route)
	writeSummaryRow(&b, "Mode", fmt.Sprintf("%s %s", r.Mode.Glyph(), r.Mode.Label()))
	writeSummaryRow(&b, "Emission", ValueStyle.Render(emissions.FormatKg(r.EmissionKg)))

	if r.Savings.SavedKg > 0 {
		writeSummaryRow(&b, "Saved vs car", OKStyle.Render(fmt.Sprintf(
			"%s kg (%s)",
			emissions.FormatFloat(r.Savings.SavedKg, 2),
			emissions.FormatPercent(r.Savings.Percent),
		)))
	}

	writeSummaryRow(&b, "Credits", emissions.FormatCredits(r.Credits))
	writeSummaryRow(&b, "Offset cost", fmt.Sprintf(
		"%s – %s (avg %s)",
		emissions.FormatUSD(r.Price.MinUSD),
		emissions.FormatUSD(r.Price.MaxUSD),
		emissions.FormatUSD(r.Price.AverageUSD),
	))

	if text := r.Equivalency.DisplayText(); text != "" {
		writeSummaryRow(&b, "Equivalent", text)
	}

	return strings.TrimRight(b.String(), "\n")
}

// writeSummaryRow writes one aligned label/value line.
func writeSummaryRow(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", LabelStyle.Render(fmt.Sprintf("%-14s", label+":")), value)
}

// renderComparisonTable renders the per-mode comparison rows.
func renderComparisonTable(r *trip.Report) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render("All modes for this distance:"))
	b.WriteString("\n")

	for _, row := range r.Comparison {
		pct := "n/a"
		if row.PercentDefined {
			pct = emissions.FormatPercent(row.PercentVsCar) + " of car"
		}

		line := fmt.Sprintf(
			"  %s %-8s %10s kg   %s",
			row.Mode.Glyph(),
			row.Mode.Label(),
			emissions.FormatFloat(row.EmissionKg, 2),
			MutedStyle.Render(pct),
		)
		if row.Mode == r.Mode {
			line = lipgloss.NewStyle().Foreground(ModeColor(string(row.Mode))).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// capitalize uppercases the first rune of a message for display.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
