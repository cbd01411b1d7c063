package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ipedscli/internal/analyzer"
	apperrors "ipedscli/internal/errors"
)

// Every state of the census partition must have a tile, and every tile
// must belong to the partition.
func TestTileGrid_MatchesCensusStates(t *testing.T) {
	fromRegions := make(map[string]bool)
	for _, region := range analyzer.RegionNames() {
		for _, state := range analyzer.RegionStates(region) {
			fromRegions[state] = true
		}
	}

	require.Len(t, tileGrid, 50)
	for state := range tileGrid {
		assert.True(t, fromRegions[state], "tile %s is not a census state", state)
	}
	for state := range fromRegions {
		_, ok := tileGrid[state]
		assert.True(t, ok, "census state %s has no tile", state)
	}
}

func TestTileGrid_NoOverlappingTiles(t *testing.T) {
	occupied := make(map[gridPos]string)
	for state, pos := range tileGrid {
		prev, taken := occupied[pos]
		require.False(t, taken, "states %s and %s share tile %v", prev, state, pos)
		occupied[pos] = state
	}
}

func TestSaveTileMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")

	values := map[string]float64{
		"NY": 2000,
		"VT": 1000,
		"CA": 1500,
	}
	require.NoError(t, SaveTileMap(path, "Federal Grant per Student by State (2015-16)", values))
	requirePNG(t, path, mapWidth, mapHeight)
}

func TestSaveTileMap_EmptyValues(t *testing.T) {
	err := SaveTileMap(filepath.Join(t.TempDir(), "map.png"), "t", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeConfig))
}

func TestRampColor_Clamped(t *testing.T) {
	r0, g0, b0 := rampColor(-1)
	r1, g1, b1 := rampColor(0)
	assert.Equal(t, [3]float64{r1, g1, b1}, [3]float64{r0, g0, b0})

	r2, g2, b2 := rampColor(2)
	r3, g3, b3 := rampColor(1)
	assert.Equal(t, [3]float64{r3, g3, b3}, [3]float64{r2, g2, b2})
}

func TestScale(t *testing.T) {
	assert.Equal(t, 0.0, scale(10, 10, 20))
	assert.Equal(t, 1.0, scale(20, 10, 20))
	assert.Equal(t, 0.5, scale(15, 10, 20))
	// Degenerate range maps to the middle of the ramp.
	assert.Equal(t, 0.5, scale(10, 10, 10))
}
