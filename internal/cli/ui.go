package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/windrose/pkg/argmap"
	"github.com/matzehuels/windrose/pkg/balance"
)

// stdout receives all user-facing command output. Logs go to the logger.
var stdout io.Writer = os.Stdout

// Palette. The polarity colors match the rose renderer's defaults.
var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")

	colorTailwind = lipgloss.Color("#2e7d32")
	colorHeadwind = lipgloss.Color("#c62828")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber    = lipgloss.NewStyle().Foreground(colorAccent)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorOK)
	styleIconError   = lipgloss.NewStyle().Foreground(colorFail)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorWarn)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)

	styleCached   = lipgloss.NewStyle().Foreground(colorOK)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorLink)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)

	styleTailwind = lipgloss.NewStyle().Foreground(colorTailwind)
	styleHeadwind = lipgloss.NewStyle().Foreground(colorHeadwind)
	styleNeutral  = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconThesis  = "●"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

func status(icon string, style lipgloss.Style, msg string) {
	fmt.Fprintln(stdout, style.Render(icon)+" "+msg)
}

func printSuccess(format string, args ...any) {
	status(iconSuccess, styleIconSuccess, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	status(iconError, styleIconError, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	status(iconWarning, styleIconWarning, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	status(iconInfo, styleIconInfo, fmt.Sprintf(format, args...))
}

// printDetail prints a dimmed, indented line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(stdout, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints "N nodes · R rings · E excluded · cached|fresh".
func printStats(nodeCount, ringCount, excluded int, cached bool) {
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount)))
	}
	if ringCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d rings", ringCount)))
	}
	if excluded > 0 {
		parts = append(parts, StyleWarning.Render(fmt.Sprintf("%d excluded", excluded)))
	}
	if cached {
		parts = append(parts, styleCached.Render(iconCached))
	} else {
		parts = append(parts, styleComputed.Render(iconFresh))
	}
	fmt.Fprintln(stdout, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(stdout)
}

// polarityGlyph marks a claim in tree listings: a dot for the thesis,
// then +, - or ~ in the polarity's color.
func polarityGlyph(depth int, p argmap.Polarity) string {
	switch {
	case depth == 0:
		return StyleHighlight.Render(iconThesis)
	case p == argmap.Tailwind:
		return styleTailwind.Render("+")
	case p == argmap.Headwind:
		return styleHeadwind.Render("-")
	default:
		return styleNeutral.Render("~")
	}
}

// balanceCounts renders the totals behind a balance ratio.
func balanceCounts(b balance.Balance) string {
	return StyleDim.Render(fmt.Sprintf("tailwind %d / headwind %d", b.TailwindTotal, b.HeadwindTotal))
}
