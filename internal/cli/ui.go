package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperr "github.com/powergraph/adminviz/pkg/errors"
	"github.com/powergraph/adminviz/pkg/graph"
	"github.com/powergraph/adminviz/pkg/pipeline"
)

// stdout receives status output. Tests replace it.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success, users
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors, hosts
	colorBlue   = lipgloss.Color("75")  // Light blue - path overlay
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StylePath for nodes on the reconstructed path.
	StylePath = lipgloss.NewStyle().Foreground(colorBlue)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleUser = lipgloss.NewStyle().Foreground(colorGreen)
	styleHost = lipgloss.NewStyle().Foreground(colorRed)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(stdout, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// PrintError writes err to w the way commands report failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+apperr.UserMessage(err))
	if hint := apperr.Hint(err); hint != "" {
		fmt.Fprintln(w, "  "+StyleDim.Render(hint))
	}
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, "  "+keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Render Summary
// =============================================================================

// printRenderSummary prints what was drawn and where it was written.
func printRenderSummary(opts pipeline.Options, r *pipeline.Result) {
	printSuccess("Rendered %s", StyleValue.Render(opts.Input))

	printKeyValue("Nodes", formatCategories(r.Graph))
	printKeyValue("Edges", fmt.Sprintf("%s structural · %s path",
		StyleNumber.Render(strconv.Itoa(r.Summary.StructuralEdges)),
		StyleNumber.Render(strconv.Itoa(r.Summary.OverlayEdges))))
	printKeyValue("Path", formatPath(r.Path))
	printKeyValue("Format", opts.Format)
	printFile(r.Summary.Output)

	if n := countPlaceholders(r.Graph); n > 0 {
		printWarning("%d unresolved neighbors drawn as placeholder hosts", n)
	}
	if opts.Format == pipeline.FormatGraphML {
		printNextStep("Browse nodes", appName+" inspect "+opts.Input)
	}
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func formatCategories(g *graph.Graph) string {
	var users, hosts int
	for _, n := range g.Nodes() {
		if n.IsUser {
			users++
		} else {
			hosts++
		}
	}
	return fmt.Sprintf("%s %s · %s %s",
		StyleNumber.Render(strconv.Itoa(hosts)), styleHost.Render("hosts"),
		StyleNumber.Render(strconv.Itoa(users)), styleUser.Render("users"))
}

func formatPath(p graph.Path) string {
	if len(p) < 2 {
		return StyleDim.Render("none")
	}
	parts := make([]string, len(p))
	for i, name := range p {
		parts[i] = StylePath.Render(name)
	}
	return strings.Join(parts, StyleDim.Render(" "+iconArrow+" "))
}

func countPlaceholders(g *graph.Graph) int {
	var n int
	for _, node := range g.Nodes() {
		if node.Placeholder {
			n++
		}
	}
	return n
}
