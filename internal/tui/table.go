package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// SummaryRow is one line of the end-of-run summary.
type SummaryRow struct {
	Module string
	Check  string
	Failed bool
}

// SummaryHeaders are the summary table's column names.
func SummaryHeaders() []string {
	return []string{"MODULE", "CHECK", "STATUS"}
}

// minModuleWidth keeps module paths readable when the terminal is narrow.
const minModuleWidth = 12

// SummaryTable renders a pass/fail line per module and check.
type SummaryTable struct {
	rows          []SummaryRow
	styles        *OutputStyles
	terminalWidth int
}

// SummaryOption configures a SummaryTable.
type SummaryOption func(*SummaryTable)

// WithTerminalWidth overrides terminal width detection. Zero disables truncation.
func WithTerminalWidth(width int) SummaryOption {
	return func(t *SummaryTable) {
		t.terminalWidth = width
	}
}

// NewSummaryTable creates a summary table. The terminal width is taken from
// stdout unless overridden.
func NewSummaryTable(rows []SummaryRow, opts ...SummaryOption) *SummaryTable {
	t := &SummaryTable{
		rows:          rows,
		styles:        NewOutputStyles(),
		terminalWidth: detectTerminalWidth(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// detectTerminalWidth returns stdout's width, or 0 when stdout is not a terminal.
func detectTerminalWidth() int {
	fd := int(os.Stdout.Fd()) //nolint:gosec // file descriptors fit in int
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// Data returns headers and plain-text rows, for Output.Table.
func (t *SummaryTable) Data() ([]string, [][]string) {
	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		rows = append(rows, []string{r.Module, r.Check, statusText(r.Failed)})
	}
	return SummaryHeaders(), rows
}

// Render writes the styled table to w. Module paths wider than the terminal
// allows are truncated with an ellipsis.
func (t *SummaryTable) Render(w io.Writer) error {
	headers, rows := t.Data()
	for _, row := range rows {
		row[2] = statusIcon(row[2] == "failed") + " " + row[2]
	}
	widths := columnWidths(headers, rows)
	widths[0] = t.constrainModuleWidth(widths)

	header := make([]string, len(headers))
	for i, h := range headers {
		header[i] = t.styles.Header.Render(padRight(h, widths[i]))
	}
	if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(header, "  "), " ")); err != nil {
		return err
	}

	for i, r := range t.rows {
		style := t.styles.Success
		if r.Failed {
			style = t.styles.Error
		}
		status := style.Render(padRight(rows[i][2], widths[2]))
		line := strings.Join([]string{
			padRight(runewidth.Truncate(r.Module, widths[0], "…"), widths[0]),
			padRight(r.Check, widths[1]),
			status,
		}, "  ")
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// constrainModuleWidth shrinks the module column so the row fits the terminal.
func (t *SummaryTable) constrainModuleWidth(widths []int) int {
	if t.terminalWidth <= 0 {
		return widths[0]
	}
	const separators = 4
	fixed := widths[1] + widths[2] + separators
	available := t.terminalWidth - fixed
	if available >= widths[0] {
		return widths[0]
	}
	return max(available, minModuleWidth)
}

func statusText(failed bool) string {
	if failed {
		return "failed"
	}
	return "passed"
}

func statusIcon(failed bool) string {
	if failed {
		return IconFail
	}
	return IconPass
}

// columnWidths returns the display width of the widest cell per column.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}
	return widths
}

// padRight pads s with spaces to width display columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
