package ui

import (
	"radarmap/internal/debug"
	"radarmap/internal/geo"
	"radarmap/internal/mapdisplay"
	"radarmap/internal/radar"
	"radarmap/internal/render"

	"github.com/gdamore/tcell/v2"
)

// ring spacing in meters for the range-ring overlay
const ringSpacingM = 50000.0

// PPIView displays the geographic PPI plot with optional overlays.
type PPIView struct {
	md       *mapdisplay.MapDisplay
	vol      *radar.Volume
	canvas   *render.Canvas
	airports []*geo.Feature
	width    int
	height   int

	// Opts carries the plot configuration; the app mutates it to change
	// resolution tier, extent mode and decorations. Cmaps overrides the
	// per-field default colormap, keyed by field name.
	Opts         mapdisplay.PPIMapOptions
	Cmaps        map[string]string
	ShowRings    bool
	ShowAirports bool
}

// NewPPIView creates a PPI view covering a screen region.
func NewPPIView(md *mapdisplay.MapDisplay, airports []*geo.Feature, width, height int, opts mapdisplay.PPIMapOptions) *PPIView {
	return &PPIView{
		md:       md,
		vol:      md.Display().Volume(),
		canvas:   render.NewCanvas(width, height),
		airports: airports,
		width:    width,
		height:   height,
		Opts:     opts,
	}
}

// Redraw replots the PPI map for a field and sweep and re-applies the
// enabled overlays.
func (v *PPIView) Redraw(field string, sweep int) error {
	v.canvas.Clear()

	opts := v.Opts
	opts.Canvas = v.canvas
	opts.Cmap = v.Cmaps[field]
	if err := v.md.PlotPPIMap(field, sweep, opts); err != nil {
		return err
	}

	if v.ShowRings {
		if s, err := v.vol.Sweep(sweep); err == nil {
			for r := ringSpacingM; r <= s.MaxRange(); r += ringSpacingM {
				if err := v.md.PlotRangeRing(r, mapdisplay.DefaultLineStyle()); err != nil {
					debug.Log("range ring at %.0f m: %v", r, err)
				}
			}
		}
	}

	if v.ShowAirports {
		bounds := v.md.Basemap().Bounds
		for _, airport := range geo.AirportsInBounds(v.airports, &bounds) {
			err := v.md.PlotPoint(airport.Point.Lon, airport.Point.Lat,
				mapdisplay.DefaultPointStyle(), airport.Name, mapdisplay.DefaultLabelOffset)
			if err != nil {
				debug.Log("airport %s: %v", airport.Name, err)
			}
		}
	}

	return nil
}

// Draw blits the view to the screen.
func (v *PPIView) Draw(screen tcell.Screen) {
	v.canvas.Blit(screen, 0, 0)
}

// UpdateDimensions rebuilds the canvas when the screen is resized. The next
// Redraw replots onto the new canvas.
func (v *PPIView) UpdateDimensions(width, height int) {
	v.width = width
	v.height = height
	v.canvas = render.NewCanvas(width, height)
}
