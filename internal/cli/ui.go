package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/gridpark/pkg/pipeline"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // titles, commands in progress
	colorGreen  = lipgloss.Color("35")  // success, selected row
	colorYellow = lipgloss.Color("220") // warnings, incomplete runs
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // suggested commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // secondary text, borders
)

var (
	// StyleTitle renders headings such as a layout's flat code.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	// StyleHighlight renders inline emphasis.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
	// StyleValue renders numbers and paths.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
	// StyleWarning renders warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleGrid = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// statusIcon pairs a glyph with its color.
type statusIcon struct {
	glyph string
	style lipgloss.Style
}

var (
	iconSuccess = statusIcon{"✓", lipgloss.NewStyle().Foreground(colorGreen)}
	iconError   = statusIcon{"✗", lipgloss.NewStyle().Foreground(colorRed)}
	iconWarning = statusIcon{"!", lipgloss.NewStyle().Foreground(colorYellow)}
	iconInfo    = statusIcon{"›", lipgloss.NewStyle().Foreground(colorGray)}
)

const iconArrow = "→"

// =============================================================================
// Status Lines
// =============================================================================

func printStatus(icon statusIcon, msg string) {
	fmt.Println(icon.style.Render(icon.glyph) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printStatus(iconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printStatus(iconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printStatus(iconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printStatus(iconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints an indented dim line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints one written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a fixed-width label and its value.
func printKeyValue(key, value string) {
	fmt.Println(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printRunStats prints enumeration statistics on a single line.
func printRunStats(stats pipeline.Stats) {
	parts := []string{
		humanize.Comma(int64(stats.Layouts)) + " layouts",
		"of " + humanize.BigComma(stats.Space),
	}
	if stats.Batches > 1 {
		parts = append(parts, fmt.Sprintf("%d batches", stats.Batches))
	}
	parts = append(parts, stats.Total.Round(time.Millisecond).String())
	if stats.Incomplete {
		parts = append(parts, StyleWarning.Render("incomplete"))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Layout Display
// =============================================================================

// renderGrid draws a layout's glyph rows inside a rounded border.
func renderGrid(pretty string) string {
	return styleGrid.Render(pretty)
}

// printEvaluation prints a layout with its totals and scores.
func printEvaluation(ev *pipeline.Evaluation) {
	fmt.Println(StyleTitle.Render(ev.FlatCode))
	fmt.Println(renderGrid(ev.Pretty))
	printKeyValue("Size", fmt.Sprintf("%d×%d", ev.Rows, ev.Cols))
	printKeyValue("Upfront", humanize.Comma(int64(ev.Totals.CostUpfront))+" $")
	printKeyValue("Yearly", humanize.Comma(int64(ev.Totals.CostYearly))+" $")
	printKeyValue("CO2 upfront", humanize.Comma(int64(ev.Totals.CO2Upfront)))
	printKeyValue("CO2 yearly", humanize.Comma(int64(ev.Totals.CO2Yearly)))
	printKeyValue("Absorption", humanize.Comma(int64(ev.Totals.CO2Absorption)))
	printKeyValue("Net CO2", humanize.Comma(int64(ev.NetCO2Yearly)))
	printKeyValue("Greenery", formatScore(ev.Scores.Greenery))
	printKeyValue("Access", formatScore(ev.Scores.Accessibility))
	printKeyValue("Benches", formatScore(ev.Scores.BenchScore))
	printKeyValue("Paths", fmt.Sprintf("vertical %d · horizontal %d", ev.Scores.VerticalPath, ev.Scores.HorizontalPath))
}

// formatScore prints a score with at most two decimals and no trailing zeros.
func formatScore(v float64) string {
	return humanize.FtoaWithDigits(v, 2)
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
