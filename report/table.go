package report

import (
	"fmt"
	"io"
	"strings"

	"threadtree/coloransi"
)

// FormatFunc is a callback to format/colorize cell values
type FormatFunc func(value string) string

// ColumnSpec defines a column's properties
type ColumnSpec struct {
	Header     string
	BlankValue string     // Value to show for empty cells (default: "-")
	FormatFunc FormatFunc // Optional formatter/colorizer
	MinWidth   int        // Minimum column width
}

// Table is a plain column layout with a header and a separator line
type Table struct {
	columns []ColumnSpec
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column specifications
func NewTable(cols ...ColumnSpec) *Table {
	t := &Table{
		columns: cols,
		widths:  make([]int, len(cols)),
	}

	for i := range t.columns {
		if t.columns[i].BlankValue == "" {
			t.columns[i].BlankValue = "-"
		}
		t.widths[i] = max(t.columns[i].MinWidth, len(t.columns[i].Header))
	}

	return t
}

// AddRow adds a row of data; missing or empty cells get the column's blank value
func (t *Table) AddRow(data ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		val := ""
		if i < len(data) {
			val = data[i]
		}
		if val == "" {
			val = t.columns[i].BlankValue
		}
		row[i] = val

		if n := visibleLength(t.format(i, val)); n > t.widths[i] {
			t.widths[i] = n
		}
	}

	t.rows = append(t.rows, row)
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.rows)
}

// Render writes the table to the given writer
func (t *Table) Render(w io.Writer) error {
	headers := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = pad(col.Header, t.widths[i])
		sep[i] = strings.Repeat("-", t.widths[i])
	}
	if err := t.writeRow(w, headers); err != nil {
		return err
	}
	if err := t.writeRow(w, sep); err != nil {
		return err
	}

	for _, row := range t.rows {
		formatted := make([]string, len(row))
		for i, val := range row {
			formatted[i] = pad(t.format(i, val), t.widths[i])
		}
		if err := t.writeRow(w, formatted); err != nil {
			return err
		}
	}

	return nil
}

func (t *Table) writeRow(w io.Writer, cells []string) error {
	line := strings.TrimRight(strings.Join(cells, " "), " ")
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

func (t *Table) format(i int, val string) string {
	if f := t.columns[i].FormatFunc; f != nil {
		return f(val)
	}
	return val
}

// pad pads a string to the given visible width
func pad(s string, width int) string {
	n := visibleLength(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func visibleLength(s string) int {
	return len([]rune(coloransi.Strip(s)))
}
