package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table collects rows and renders them with columns padded to their widest
// visible cell. ANSI styling inside cells does not count toward width.
type Table struct {
	headers []string
	rows    [][]string
	// rightAlign marks numeric columns.
	rightAlign map[int]bool
}

func NewTable(headers ...string) *Table {
	return &Table{headers: headers, rightAlign: map[int]bool{}}
}

// AlignRight right-aligns the given column indexes.
func (t *Table) AlignRight(cols ...int) *Table {
	for _, c := range cols {
		t.rightAlign[c] = true
	}
	return t
}

func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}
	const gap = 2
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			if style != nil {
				cell = style(cell)
			}
			pad := strings.Repeat(" ", max(0, w-lipgloss.Width(cell)))
			if t.rightAlign[i] {
				b.WriteString(pad + cell)
			} else if i < len(widths)-1 {
				b.WriteString(cell + pad)
			} else {
				b.WriteString(cell)
			}
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.headers, func(s string) string { return StyleHeader.Render(s) })
	sep := make([]string, len(widths))
	for i, w := range widths {
		sep[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(sep, nil)
	for _, row := range t.rows {
		writeRow(row, nil)
	}
	return b.String()
}
