package render

import (
	"strings"
	"testing"
)

func TestTableText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rows       [][]string
		headerRows int
		want       string
	}{
		{
			name: "header and one data row",
			rows: [][]string{
				{"Name", "Age"},
				{"Alice", "30"},
			},
			headerRows: 1,
			want: "| Name  | Age | \n" +
				"|-------|-----|\n" +
				"| Alice | 30  | \n",
		},
		{
			name:       "no rows produces no output",
			rows:       nil,
			headerRows: 0,
			want:       "",
		},
		{
			name: "header only has no separator",
			rows: [][]string{
				{"Name"},
			},
			headerRows: 1,
			want:       "| Name | \n",
		},
		{
			name: "no header rows has no separator",
			rows: [][]string{
				{"a"},
				{"b"},
			},
			headerRows: 0,
			want: "| a   | \n" +
				"| b   | \n",
		},
		{
			name: "short rows padded with empty cells",
			rows: [][]string{
				{"a", "b", "c"},
				{"x"},
			},
			headerRows: 0,
			want: "| a   | b   | c   | \n" +
				"| x   |     |     | \n",
		},
		{
			name: "column width floored at three",
			rows: [][]string{
				{"x"},
				{"y"},
			},
			headerRows: 1,
			want: "| x   | \n" +
				"|-----|\n" +
				"| y   | \n",
		},
		{
			name: "wide cells use display width",
			rows: [][]string{
				{"st", "note"},
				{"✅✅", "ok"},
			},
			headerRows: 1,
			want: "| st   | note | \n" +
				"|------|------|\n" +
				"| ✅✅ | ok   | \n",
		},
		{
			name: "two header rows put separator after the second",
			rows: [][]string{
				{"Group", "Group"},
				{"Name", "Age"},
				{"Alice", "30"},
			},
			headerRows: 2,
			want: "| Group | Group | \n" +
				"| Name  | Age   | \n" +
				"|-------|-------|\n" +
				"| Alice | 30    | \n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tableText(tt.rows, tt.headerRows); got != tt.want {
				t.Errorf("tableText() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestTableTextColumnInvariant(t *testing.T) {
	t.Parallel()

	// Re-splitting any data line on "|" must yield columnCount padded cells,
	// each exactly width+2 characters of display width.
	rows := [][]string{
		{"id", "description", "✅"},
		{"1", "short", "no"},
		{"22", "a much longer cell", ""},
	}
	got := tableText(rows, 1)

	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		if strings.HasPrefix(line, "|-") {
			continue
		}
		parts := strings.Split(line, "|")
		// Leading "" before the first pipe, 3 cells, trailing " ".
		if len(parts) != 5 {
			t.Fatalf("line %q split into %d parts, want 5", line, len(parts))
		}
		for i, width := range []int{5, 20, 5} {
			if w := Width(parts[i+1]); w != width {
				t.Errorf("line %q cell %d width = %d, want %d", line, i, w, width)
			}
		}
	}
}
