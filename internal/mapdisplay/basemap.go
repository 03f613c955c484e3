package mapdisplay

import (
	"fmt"
	"math"

	"radarmap/internal/geo"
	"radarmap/internal/render"
)

// Basemap is one rendered map background: the geographic extent, the
// resolution tier it was drawn at, and the canvas it occupies. Its cell
// transform is the handle overlay operations use to place marks until the
// next PlotPPIMap replaces it.
//
// The extent is stretched to the canvas, corners to corners with north up;
// callers control the geographic aspect through the canvas shape.
type Basemap struct {
	Bounds geo.Bounds
	Res    geo.Resolution

	canvas *render.Canvas
}

// NewBasemap creates a basemap for an extent on a canvas. Layers are drawn
// by the Draw* methods; nothing is drawn here.
func NewBasemap(bounds geo.Bounds, res geo.Resolution, canvas *render.Canvas) *Basemap {
	return &Basemap{Bounds: bounds, Res: res, canvas: canvas}
}

// Canvas returns the basemap's target canvas.
func (b *Basemap) Canvas() *render.Canvas {
	return b.canvas
}

// CellOf converts geographic degrees to the canvas cell. Coordinates outside
// the extent map to cells outside the canvas; the canvas clips on write.
func (b *Basemap) CellOf(lon, lat float64) (x, y int) {
	fx := (lon - b.Bounds.MinLon) / (b.Bounds.MaxLon - b.Bounds.MinLon)
	fy := (b.Bounds.MaxLat - lat) / (b.Bounds.MaxLat - b.Bounds.MinLat)
	x = int(math.Round(fx * float64(b.canvas.Width()-1)))
	y = int(math.Round(fy * float64(b.canvas.Height()-1)))
	return x, y
}

// DrawBase draws the background layers in order: coastline, country borders,
// state borders.
func (b *Basemap) DrawBase(features map[geo.FeatureType][]*geo.Feature) {
	for _, ftype := range []geo.FeatureType{geo.FeatureCoastline, geo.FeatureCountryBorder, geo.FeatureStateBorder} {
		b.DrawLayer(ftype, features[ftype])
	}
}

// DrawLayer draws all features of one type that touch the extent.
func (b *Basemap) DrawLayer(ftype geo.FeatureType, features []*geo.Feature) {
	style := render.StyleForFeature(ftype)
	char := render.CharForFeature(ftype)

	for _, feature := range geo.FilterByBounds(features, &b.Bounds) {
		if feature.IsPoint() {
			x, y := b.CellOf(feature.Point.Lon, feature.Point.Lat)
			b.canvas.Set(x, y, '●', style)
			if feature.Name != "" {
				b.canvas.DrawText(x+1, y, feature.Name, render.StyleLabel)
			}
			continue
		}
		for i := 0; i < len(feature.Points)-1; i++ {
			x0, y0 := b.CellOf(feature.Points[i].Lon, feature.Points[i].Lat)
			x1, y1 := b.CellOf(feature.Points[i+1].Lon, feature.Points[i+1].Lat)
			b.canvas.DrawLine(x0, y0, x1, y1, char, style)
		}
	}
}

// DrawGraticule draws parallels and meridians at the given positions,
// labeled on the left and bottom edges only. Lines outside the extent are
// skipped.
func (b *Basemap) DrawGraticule(latLines, lonLines []float64) {
	w, h := b.canvas.Width(), b.canvas.Height()

	for _, lat := range latLines {
		if lat < b.Bounds.MinLat || lat > b.Bounds.MaxLat {
			continue
		}
		_, y := b.CellOf(b.Bounds.MinLon, lat)
		for x := 0; x < w; x++ {
			b.canvas.Set(x, y, '·', render.StyleGraticule)
		}
		b.canvas.DrawText(0, y, fmt.Sprintf("%.0f", lat), render.StyleGraticuleLabel)
	}

	for _, lon := range lonLines {
		if lon < b.Bounds.MinLon || lon > b.Bounds.MaxLon {
			continue
		}
		x, _ := b.CellOf(lon, b.Bounds.MaxLat)
		for y := 0; y < h; y++ {
			b.canvas.Set(x, y, '·', render.StyleGraticule)
		}
		label := fmt.Sprintf("%.0f", lon)
		b.canvas.DrawText(x-len(label)/2, h-1, label, render.StyleGraticuleLabel)
	}
}
