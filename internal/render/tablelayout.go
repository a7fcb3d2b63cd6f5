package render

import "strings"

// tableText renders extracted cell rows as an aligned pipe-delimited text
// table. headerRows is the count of leading header rows; the dash separator
// is emitted immediately after the last of them, and only when at least one
// data row follows.
//
// Column count is the maximum cell count over all rows; short rows are
// padded with empty cells at render time. Cells are left-aligned and
// right-padded to the column width, which is the maximum display width in
// the column floored at minColumnWidth. Cells are never truncated.
func tableText(rows [][]string, headerRows int) string {
	if len(rows) == 0 {
		return ""
	}

	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}

	widths := make([]int, columns)
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for i, row := range rows {
		sb.WriteString("| ")
		for col := 0; col < columns; col++ {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", widths[col]-Width(cell)))
			sb.WriteString(" | ")
		}
		sb.WriteString("\n")

		if i == headerRows-1 && i < len(rows)-1 {
			sb.WriteString("|")
			for col := 0; col < columns; col++ {
				sb.WriteString(strings.Repeat("-", widths[col]+2))
				sb.WriteString("|")
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
