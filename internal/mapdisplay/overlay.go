package mapdisplay

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"radarmap/internal/render"
)

// ErrNoBasemap is returned by overlay operations called before any
// PlotPPIMap has drawn a basemap to anchor on.
var ErrNoBasemap = errors.New("no basemap: call PlotPPIMap first")

// PointStyle configures a plotted marker.
type PointStyle struct {
	Symbol rune
	Style  tcell.Style
}

// LineStyle configures a plotted polyline.
type LineStyle struct {
	Char  rune
	Style tcell.Style
}

// DefaultLabelOffset is the label displacement of PlotPoint in degrees
// (lon, lat).
var DefaultLabelOffset = [2]float64{0.05, 0.05}

// DefaultPointStyle returns the standard overlay marker style.
func DefaultPointStyle() PointStyle {
	return PointStyle{Symbol: '+', Style: render.StyleOverlayPoint}
}

// DefaultLineStyle returns the standard overlay line style.
func DefaultLineStyle() LineStyle {
	return LineStyle{Char: '·', Style: render.StyleOverlayLine}
}

// PlotPoint draws a marker at a geographic position on the current basemap,
// with an optional text label displaced by labelOffsetDeg (lon, lat)
// degrees. A zero offset selects DefaultLabelOffset.
func (m *MapDisplay) PlotPoint(lon, lat float64, style PointStyle, label string, labelOffsetDeg [2]float64) error {
	if m.basemap == nil {
		return ErrNoBasemap
	}
	x, y := m.basemap.CellOf(lon, lat)
	m.basemap.Canvas().Set(x, y, style.Symbol, style.Style)

	if label != "" {
		if labelOffsetDeg == [2]float64{} {
			labelOffsetDeg = DefaultLabelOffset
		}
		lx, ly := m.basemap.CellOf(lon+labelOffsetDeg[0], lat+labelOffsetDeg[1])
		m.basemap.Canvas().DrawText(lx, ly, label, render.StyleLabel)
	}
	return nil
}

// PlotLineGeo draws a connected polyline through geographic vertices on the
// current basemap. Fewer than two vertices draw nothing.
func (m *MapDisplay) PlotLineGeo(lons, lats []float64, style LineStyle) error {
	if m.basemap == nil {
		return ErrNoBasemap
	}
	if len(lons) != len(lats) {
		return fmt.Errorf("coordinate arrays differ in length: %d vs %d", len(lons), len(lats))
	}
	canvas := m.basemap.Canvas()
	for i := 0; i < len(lons)-1; i++ {
		x0, y0 := m.basemap.CellOf(lons[i], lats[i])
		x1, y1 := m.basemap.CellOf(lons[i+1], lats[i+1])
		canvas.DrawLine(x0, y0, x1, y1, style.Char, style.Style)
	}
	return nil
}

// PlotLineXY draws a polyline given in radar-centered Cartesian meters,
// projected through the site projection. Equivalent to PlotLineGeo over
// ForwardSlice of the same arrays.
func (m *MapDisplay) PlotLineXY(xs, ys []float64, style LineStyle) error {
	if m.basemap == nil {
		return ErrNoBasemap
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("coordinate arrays differ in length: %d vs %d", len(xs), len(ys))
	}
	lons, lats := m.proj.ForwardSlice(xs, ys)
	return m.PlotLineGeo(lons, lats, style)
}

// PlotRangeRing draws a circle of the given radius in meters centered on the
// radar site.
func (m *MapDisplay) PlotRangeRing(rangeM float64, style LineStyle) error {
	if m.basemap == nil {
		return ErrNoBasemap
	}
	xs, ys := RangeRingXY(rangeM)
	return m.PlotLineXY(xs, ys, style)
}

// RangeRingXY samples a circle of the given radius around the Cartesian
// origin: 360 points over the closed interval [0, 2π] starting due north,
// so the first and last points coincide and the ring closes.
func RangeRingXY(rangeM float64) (xs, ys []float64) {
	const n = 360
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		xs[i] = rangeM * math.Sin(theta)
		ys[i] = rangeM * math.Cos(theta)
	}
	return xs, ys
}
