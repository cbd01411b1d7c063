package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 2010, cfg.Panel.StartYear)
	assert.Equal(t, 2015, cfg.Panel.EndYear)
	assert.True(t, cfg.Panel.BalancedPanel)
	assert.True(t, cfg.Panel.UndergraduateOnly)
	assert.Equal(t, []string{"DC", "FM", "MH", "MP", "PR", "PW", "VI", "GU", "AS"}, cfg.Panel.ExcludeStates)

	assert.Equal(t, 2015, cfg.Analysis.Year)
	a, b := cfg.Analysis.Formula()
	assert.Equal(t, 1750.0, a)
	assert.Equal(t, 0.15, b)
	assert.Equal(t, []string{"NY", "VT"}, cfg.Analysis.CompareStates)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yml")
	content := `
panel:
  start_year: 2012
  end_year: 2014
  balanced_panel: false
  undergraduate_only: true
  exclude_states: ["PR"]
analysis:
  year: 2014
  formula_linear: 2000
  formula_quadratic: 0.1
  compare_states: ["CA", "TX"]
logging:
  level: debug
  format: text
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2012, cfg.Panel.StartYear)
	assert.Equal(t, 2014, cfg.Panel.EndYear)
	assert.False(t, cfg.Panel.BalancedPanel)
	assert.Equal(t, []string{"PR"}, cfg.Panel.ExcludeStates)
	assert.Equal(t, []string{"CA", "TX"}, cfg.Analysis.CompareStates)
}

func TestLoad_InvalidYearOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  start_year: 2015\n  end_year: 2010\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_InvalidStateCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pipeline.yml")
	require.NoError(t, os.WriteFile(path, []byte("panel:\n  exclude_states: [\"Puerto Rico\"]\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
