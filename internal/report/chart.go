package report

import (
	"fmt"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	apperrors "ipedscli/internal/errors"
)

const (
	chartWidth   = 800
	chartHeight  = 500
	marginLeft   = 90.0
	marginRight  = 30.0
	marginTop    = 50.0
	marginBottom = 80.0
	yTicks       = 5
)

// SaveLineChart renders one series as a line chart with point markers and
// writes it to path as a PNG. Labels and values are parallel slices in
// x-axis order.
func SaveLineChart(path, title, xLabel, yLabel string, labels []string, values []float64) error {
	if len(labels) != len(values) || len(values) == 0 {
		return apperrors.NewConfigError("line chart needs one label per value", nil)
	}

	dc := newChartContext(title)
	plotW, plotH := plotArea()
	top := maxValue(values) * 1.1
	if top == 0 {
		top = 1
	}

	drawAxes(dc, top, xLabel, yLabel)

	xAt := func(i int) float64 {
		if len(values) == 1 {
			return marginLeft + plotW/2
		}
		return marginLeft + plotW*float64(i)/float64(len(values)-1)
	}
	yAt := func(v float64) float64 {
		return marginTop + plotH*(1-v/top)
	}

	dc.SetRGB(0.2, 0.4, 0.7)
	dc.SetLineWidth(2)
	for i := 1; i < len(values); i++ {
		dc.DrawLine(xAt(i-1), yAt(values[i-1]), xAt(i), yAt(values[i]))
		dc.Stroke()
	}
	for i, v := range values {
		dc.DrawCircle(xAt(i), yAt(v), 4)
		dc.Fill()
	}

	dc.SetRGB(0, 0, 0)
	for i, label := range labels {
		drawRotatedLabel(dc, label, xAt(i), marginTop+plotH+8)
	}

	if err := dc.SavePNG(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save chart %s", path), err)
	}
	return nil
}

// SaveBarChart renders one bar per label with the value annotated above
// the bar, scaling the axis to 1.5x the tallest bar as the comparison
// charts do.
func SaveBarChart(path, title, xLabel, yLabel string, labels []string, values []float64) error {
	if len(labels) != len(values) || len(values) == 0 {
		return apperrors.NewConfigError("bar chart needs one label per value", nil)
	}

	dc := newChartContext(title)
	plotW, plotH := plotArea()
	top := maxValue(values) * 1.5
	if top == 0 {
		top = 1
	}

	drawAxes(dc, top, xLabel, yLabel)

	slot := plotW / float64(len(values))
	barW := slot * 0.6

	for i, v := range values {
		x := marginLeft + slot*float64(i) + (slot-barW)/2
		h := plotH * v / top
		y := marginTop + plotH - h

		dc.SetRGB(0.5, 0.5, 0.5)
		dc.DrawRectangle(x, y, barW, h)
		dc.Fill()

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatAmount(v), x+barW/2, y-10, 0.5, 0.5)
		dc.DrawStringAnchored(labels[i], x+barW/2, marginTop+plotH+16, 0.5, 0.5)
	}

	if err := dc.SavePNG(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to save chart %s", path), err)
	}
	return nil
}

func newChartContext(title string) *gg.Context {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(title, chartWidth/2, marginTop/2, 0.5, 0.5)
	return dc
}

func plotArea() (w, h float64) {
	return chartWidth - marginLeft - marginRight, chartHeight - marginTop - marginBottom
}

// drawAxes draws the frame, horizontal grid lines and y tick labels for a
// 0..top axis.
func drawAxes(dc *gg.Context, top float64, xLabel, yLabel string) {
	plotW, plotH := plotArea()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop, marginLeft, marginTop+plotH)
	dc.DrawLine(marginLeft, marginTop+plotH, marginLeft+plotW, marginTop+plotH)
	dc.Stroke()

	for i := 0; i <= yTicks; i++ {
		v := top * float64(i) / yTicks
		y := marginTop + plotH*(1-float64(i)/yTicks)

		if i > 0 {
			dc.SetRGBA(0, 0, 0, 0.15)
			dc.DrawLine(marginLeft, y, marginLeft+plotW, y)
			dc.Stroke()
		}

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(formatCount(v), marginLeft-8, y, 1, 0.5)
	}

	dc.DrawStringAnchored(xLabel, marginLeft+plotW/2, chartHeight-15, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, marginTop+plotH/2)
	dc.DrawStringAnchored(yLabel, 20, marginTop+plotH/2, 0.5, 0.5)
	dc.Pop()
}

// drawRotatedLabel draws an x-axis label rotated 45 degrees, the way dense
// academic-year labels are usually shown.
func drawRotatedLabel(dc *gg.Context, label string, x, y float64) {
	dc.Push()
	dc.RotateAbout(gg.Radians(-45), x, y)
	dc.DrawStringAnchored(label, x, y, 1, 0.5)
	dc.Pop()
}

func maxValue(values []float64) float64 {
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// formatCount renders a value as a whole number with thousands separators.
func formatCount(v float64) string {
	return addThousands(fmt.Sprintf("%.0f", v))
}

// formatAmount renders a currency-like value with two decimals and
// thousands separators.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	parts := strings.SplitN(s, ".", 2)
	return addThousands(parts[0]) + "." + parts[1]
}

func addThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
