package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipedscli/internal/dataset"
)

func TestRenderLaTeX(t *testing.T) {
	table := dataset.Table{Columns: []string{"Variable", "Value"}}
	table.Append("mean", "1500.000")
	table.Append("25%", "1250.000")

	got := RenderLaTeX(table, "Descriptive Statistics and Regional Means and Variances", "tab:desc_region_stats")

	assert.Contains(t, got, "\\begin{table}")
	assert.Contains(t, got, "\\caption{Descriptive Statistics and Regional Means and Variances}")
	assert.Contains(t, got, "\\label{tab:desc_region_stats}")
	assert.Contains(t, got, "\\begin{tabular}{lr}")
	assert.Contains(t, got, "\\toprule")
	assert.Contains(t, got, "Variable & Value \\\\")
	assert.Contains(t, got, "mean & 1500.000 \\\\")
	// Percent signs must be escaped for LaTeX.
	assert.Contains(t, got, "25\\% & 1250.000 \\\\")
	assert.Contains(t, got, "\\bottomrule")
}

func TestWriteLaTeX(t *testing.T) {
	table := dataset.Table{Columns: []string{"Variable", "Value"}}
	table.Append("count", "50.000")

	path := filepath.Join(t.TempDir(), "stats.tex")
	require.NoError(t, WriteLaTeX(path, table, "caption", "tab:x"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "count & 50.000")
}
