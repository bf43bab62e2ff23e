// Package ui provides message printing utilities.
package ui

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var quiet bool

// styledOutput reports whether stdout should carry ANSI styling.
var styledOutput = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

// SetQuiet suppresses all non-error output.
func SetQuiet(q bool) {
	quiet = q
}

func render(style lipgloss.Style, msg string) string {
	if !styledOutput {
		return msg
	}
	return style.Render(msg)
}

// Println prints an empty line.
func Println() {
	if quiet {
		return
	}
	fmt.Println()
}

// PrintTitle prints a bold heading.
func PrintTitle(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(TitleStyle, fmt.Sprintf(format, args...)))
}

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(render(SuccessStyle, "✓ "+msg))
}

// PrintError prints an error message. Errors are never suppressed by
// quiet mode and go to stderr.
func PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, render(ErrorStyle, "✗ "+msg))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	fmt.Println(render(WarningStyle, "⚠ "+msg))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(InfoStyle, fmt.Sprintf(format, args...)))
}

// PrintDim prints a dimmed message.
func PrintDim(format string, args ...interface{}) {
	if quiet {
		return
	}
	fmt.Println(render(DimStyle, fmt.Sprintf(format, args...)))
}

// PrintLink prints a labeled URL or file path.
func PrintLink(label, url string) {
	if quiet {
		return
	}
	fmt.Printf("%s %s\n", render(DimStyle, label+":"), render(LinkStyle, url))
}

// PrintBox prints content in a styled box.
func PrintBox(title, content string) {
	if quiet {
		return
	}
	titleStyled := render(BoxTitleStyle, title)
	fmt.Println(BoxStyle.Render(titleStyled + "\n" + content))
}

// OpenBrowser opens a URL or file path in the default browser.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

// Table renders rows with dynamic column widths for formatted output.
type Table struct {
	// Headers contains the column header names.
	Headers []string

	// Rows contains all data rows.
	Rows [][]string

	// MaxWidths specifies maximum width per column index (truncates with
	// ellipsis).
	MaxWidths map[int]int
}

// NewTable creates a new table with the specified headers.
func NewTable(headers ...string) *Table {
	return &Table{
		Headers:   headers,
		Rows:      make([][]string, 0),
		MaxWidths: make(map[int]int),
	}
}

// AddRow adds a data row to the table.
func (t *Table) AddRow(values ...string) {
	t.Rows = append(t.Rows, values)
}

// SetMaxWidth sets the maximum width for a column. Values exceeding it
// are truncated with ellipsis.
func (t *Table) SetMaxWidth(col, width int) {
	t.MaxWidths[col] = width
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, header := range t.Headers {
		widths[i] = len(header)
	}
	for _, row := range t.Rows {
		for i, val := range row {
			if i < len(widths) && len(val) > widths[i] {
				widths[i] = len(val)
			}
		}
	}
	for i := range widths {
		if max, ok := t.MaxWidths[i]; ok && widths[i] > max {
			widths[i] = max
		}
	}
	return widths
}

func truncateWithEllipsis(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Render prints the table with calculated column widths.
func (t *Table) Render() {
	if quiet || len(t.Headers) == 0 {
		return
	}

	widths := t.columnWidths()
	colGap := "  "

	var headerCells []string
	for i, header := range t.Headers {
		headerCells = append(headerCells, render(TableHeaderStyle, padRight(header, widths[i])))
	}
	fmt.Println(strings.Join(headerCells, colGap))

	totalWidth := len(colGap) * (len(widths) - 1)
	for _, w := range widths {
		totalWidth += w
	}
	fmt.Println(render(DimStyle, strings.Repeat("─", totalWidth)))

	for _, row := range t.Rows {
		var cells []string
		for i := 0; i < len(t.Headers); i++ {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			if max, ok := t.MaxWidths[i]; ok {
				val = truncateWithEllipsis(val, max)
			}
			cells = append(cells, render(TableCellStyle, padRight(val, widths[i])))
		}
		fmt.Println(strings.Join(cells, colGap))
	}
}
