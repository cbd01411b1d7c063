package report

import (
	"fmt"
	"os"
	"strings"

	"ipedscli/internal/dataset"
	apperrors "ipedscli/internal/errors"
)

// RenderLaTeX renders a table as a booktabs tabular wrapped in a table
// environment with the given caption and label.
func RenderLaTeX(table dataset.Table, caption, label string) string {
	var b strings.Builder

	b.WriteString("\\begin{table}\n\\centering\n")
	fmt.Fprintf(&b, "\\caption{%s}\n", escapeLaTeX(caption))
	fmt.Fprintf(&b, "\\label{%s}\n", label)

	spec := "l" + strings.Repeat("r", len(table.Columns)-1)
	fmt.Fprintf(&b, "\\begin{tabular}{%s}\n\\toprule\n", spec)

	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = escapeLaTeX(col)
	}
	b.WriteString(strings.Join(header, " & "))
	b.WriteString(" \\\\\n\\midrule\n")

	for _, row := range table.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeLaTeX(cell)
		}
		b.WriteString(strings.Join(cells, " & "))
		b.WriteString(" \\\\\n")
	}

	b.WriteString("\\bottomrule\n\\end{tabular}\n\\end{table}\n")
	return b.String()
}

// WriteLaTeX writes the rendered table to path.
func WriteLaTeX(path string, table dataset.Table, caption, label string) error {
	content := RenderLaTeX(table, caption, label)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}

var latexEscaper = strings.NewReplacer(
	"&", "\\&",
	"%", "\\%",
	"$", "\\$",
	"#", "\\#",
	"_", "\\_",
)

func escapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}
