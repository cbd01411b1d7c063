package report

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ipedscli/internal/errors"
)

func requirePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, width, img.Bounds().Dx())
	assert.Equal(t, height, img.Bounds().Dy())
}

func TestSaveLineChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trend.png")

	err := SaveLineChart(path, "Total enrollment by academic year", "Academic Year", "Students",
		[]string{"2010-11", "2011-12", "2012-13"},
		[]float64{1200000, 1150000, 1100000})
	require.NoError(t, err)

	requirePNG(t, path, chartWidth, chartHeight)
}

func TestSaveBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compare.png")

	err := SaveBarChart(path, "Per Student Federal Grant: NY vs VT (2015-16)", "State", "Per Student Federal Grant",
		[]string{"NY", "VT"},
		[]float64{2000, 1000})
	require.NoError(t, err)

	requirePNG(t, path, chartWidth, chartHeight)
}

func TestSaveLineChart_MismatchedInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")

	err := SaveLineChart(path, "t", "x", "y", []string{"a", "b"}, []float64{1})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))

	err = SaveBarChart(path, "t", "x", "y", nil, nil)
	require.Error(t, err)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "2,000.00", formatAmount(2000))
	assert.Equal(t, "912,500.00", formatAmount(912500))
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "-1,234.50", formatAmount(-1234.5))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,100,000", formatCount(1100000))
	assert.Equal(t, "999", formatCount(999))
}
