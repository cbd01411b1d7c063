package report

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"ipedscli/internal/analyzer"
	apperrors "ipedscli/internal/errors"
)

// gridPos is a state's cell in the tile-grid cartogram.
type gridPos struct {
	col, row int
}

// tileGrid is the conventional 12x8 tile-grid layout of the 50 states.
// Tiles approximate geography well enough to read regional patterns while
// giving every state equal visual weight.
var tileGrid = map[string]gridPos{
	"AK": {0, 0}, "ME": {11, 0},
	"VT": {10, 1}, "NH": {11, 1},
	"WA": {1, 2}, "ID": {2, 2}, "MT": {3, 2}, "ND": {4, 2}, "MN": {5, 2},
	"IL": {6, 2}, "WI": {7, 2}, "MI": {8, 2}, "NY": {9, 2}, "RI": {10, 2}, "MA": {11, 2},
	"OR": {1, 3}, "NV": {2, 3}, "WY": {3, 3}, "SD": {4, 3}, "IA": {5, 3},
	"IN": {6, 3}, "OH": {7, 3}, "PA": {8, 3}, "NJ": {9, 3}, "CT": {10, 3},
	"CA": {1, 4}, "UT": {2, 4}, "CO": {3, 4}, "NE": {4, 4}, "MO": {5, 4},
	"KY": {6, 4}, "WV": {7, 4}, "VA": {8, 4}, "MD": {9, 4}, "DE": {10, 4},
	"AZ": {2, 5}, "NM": {3, 5}, "KS": {4, 5}, "AR": {5, 5}, "TN": {6, 5},
	"NC": {7, 5}, "SC": {8, 5},
	"OK": {4, 6}, "LA": {5, 6}, "MS": {6, 6}, "AL": {7, 6}, "GA": {8, 6},
	"HI": {0, 7}, "TX": {4, 7}, "FL": {9, 7},
}

const (
	mapWidth   = 900
	mapHeight  = 640
	tileSize   = 64.0
	tileGap    = 4.0
	mapTop     = 60.0
	mapLeft    = 50.0
	legendH    = 16.0
	legendW    = 300.0
	legendYOff = 40.0
)

// SaveTileMap renders a state-level choropleth as a tile-grid cartogram:
// one tile per state, colored on a sequential ramp scaled to the metric's
// range, with a gradient legend. States absent from values are drawn as
// empty tiles.
func SaveTileMap(path, title string, values map[string]float64) error {
	if len(values) == 0 {
		return apperrors.NewConfigError("tile map needs at least one state value", nil)
	}

	lo, hi := valueRange(values)

	dc := gg.NewContext(mapWidth, mapHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, mapWidth/2, mapTop/2, 0.5, 0.5)

	var gridBottom float64
	for _, region := range analyzer.RegionNames() {
		for _, state := range analyzer.RegionStates(region) {
			pos, ok := tileGrid[state]
			if !ok {
				continue
			}
			x := mapLeft + float64(pos.col)*(tileSize+tileGap)
			y := mapTop + float64(pos.row)*(tileSize+tileGap)
			if bottom := y + tileSize; bottom > gridBottom {
				gridBottom = bottom
			}

			v, present := values[state]
			if present {
				r, g, b := rampColor(scale(v, lo, hi))
				dc.SetRGB(r, g, b)
			} else {
				dc.SetRGB(0.93, 0.93, 0.93)
			}
			dc.DrawRoundedRectangle(x, y, tileSize, tileSize, 6)
			dc.Fill()

			if present && scale(v, lo, hi) > 0.6 {
				dc.SetRGB(1, 1, 1)
			} else {
				dc.SetRGB(0.1, 0.1, 0.1)
			}
			dc.DrawStringAnchored(state, x+tileSize/2, y+tileSize/2, 0.5, 0.5)
		}
	}

	drawLegend(dc, gridBottom+legendYOff, lo, hi)

	if err := dc.SavePNG(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save map %s", path), err)
	}
	return nil
}

func drawLegend(dc *gg.Context, y, lo, hi float64) {
	x := mapLeft
	steps := 60
	stepW := legendW / float64(steps)
	for i := 0; i < steps; i++ {
		r, g, b := rampColor(float64(i) / float64(steps-1))
		dc.SetRGB(r, g, b)
		dc.DrawRectangle(x+float64(i)*stepW, y, stepW+0.5, legendH)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(formatAmount(lo), x, y+legendH+12, 0, 0.5)
	dc.DrawStringAnchored(formatAmount(hi), x+legendW, y+legendH+12, 1, 0.5)
}

// rampColor maps t in [0,1] onto a light-to-dark blue sequential ramp.
func rampColor(t float64) (r, g, b float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r = 0.94 - 0.86*t
	g = 0.95 - 0.68*t
	b = 1.00 - 0.45*t
	return r, g, b
}

// scale normalizes v into [0,1] over [lo, hi]; a degenerate range maps to
// the middle of the ramp.
func scale(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func valueRange(values map[string]float64) (lo, hi float64) {
	first := true
	for _, v := range values {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
