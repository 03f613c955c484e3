package mapdisplay

import (
	"errors"
	"math"
	"testing"

	"radarmap/internal/display"
	"radarmap/internal/render"
)

func TestOverlaysRequireBasemap(t *testing.T) {
	md := testMapDisplay()

	if err := md.PlotPoint(-89, 42, DefaultPointStyle(), "X", DefaultLabelOffset); !errors.Is(err, ErrNoBasemap) {
		t.Errorf("PlotPoint: got %v, expected ErrNoBasemap", err)
	}
	if err := md.PlotLineGeo([]float64{-89, -88.5}, []float64{42, 42.5}, DefaultLineStyle()); !errors.Is(err, ErrNoBasemap) {
		t.Errorf("PlotLineGeo: got %v, expected ErrNoBasemap", err)
	}
	if err := md.PlotLineXY([]float64{0, 1000}, []float64{0, 1000}, DefaultLineStyle()); !errors.Is(err, ErrNoBasemap) {
		t.Errorf("PlotLineXY: got %v, expected ErrNoBasemap", err)
	}
	if err := md.PlotRangeRing(50000, DefaultLineStyle()); !errors.Is(err, ErrNoBasemap) {
		t.Errorf("PlotRangeRing: got %v, expected ErrNoBasemap", err)
	}
}

func TestRangeRingXY(t *testing.T) {
	const r = 50000.0
	xs, ys := RangeRingXY(r)

	if len(xs) != 360 || len(ys) != 360 {
		t.Fatalf("got %d/%d points, expected 360/360", len(xs), len(ys))
	}

	for i := range xs {
		d := math.Hypot(xs[i], ys[i])
		if math.Abs(d-r) > 1e-6*r {
			t.Fatalf("point %d: distance %.9g, expected %.9g", i, d, r)
		}
	}

	// starts due north
	if math.Abs(xs[0]) > 1e-9 || math.Abs(ys[0]-r) > 1e-9 {
		t.Errorf("first point (%.6g, %.6g), expected (0, %g)", xs[0], ys[0], r)
	}

	// closes: first and last points coincide
	if math.Abs(xs[359]-xs[0]) > 1e-6 || math.Abs(ys[359]-ys[0]) > 1e-6 {
		t.Errorf("ring not closed: first (%.9g, %.9g), last (%.9g, %.9g)", xs[0], ys[0], xs[359], ys[359])
	}
}

func TestPlotLineXYEquivalence(t *testing.T) {
	xs := []float64{-20000, 0, 15000, 8000}
	ys := []float64{10000, -5000, 20000, -12000}

	// one display draws the line in Cartesian meters, the other in the
	// pre-projected geographic coordinates; the canvases must match
	mdXY := testMapDisplay()
	mdGeo := testMapDisplay()
	canvasXY := render.NewCanvas(60, 24)
	canvasGeo := render.NewCanvas(60, 24)

	if err := mdXY.PlotPPIMap("reflectivity", 0, explicitOptions(canvasXY)); err != nil {
		t.Fatal(err)
	}
	if err := mdGeo.PlotPPIMap("reflectivity", 0, explicitOptions(canvasGeo)); err != nil {
		t.Fatal(err)
	}

	if err := mdXY.PlotLineXY(xs, ys, DefaultLineStyle()); err != nil {
		t.Fatalf("PlotLineXY: %v", err)
	}
	lons, lats := mdGeo.Projection().ForwardSlice(xs, ys)
	if err := mdGeo.PlotLineGeo(lons, lats, DefaultLineStyle()); err != nil {
		t.Fatalf("PlotLineGeo: %v", err)
	}

	for y := 0; y < canvasXY.Height(); y++ {
		for x := 0; x < canvasXY.Width(); x++ {
			if canvasXY.Get(x, y) != canvasGeo.Get(x, y) {
				t.Fatalf("canvases differ at (%d, %d)", x, y)
			}
		}
	}
}

func TestPlotLineLengthMismatch(t *testing.T) {
	md := testMapDisplay()
	if err := md.PlotPPIMap("reflectivity", 0, explicitOptions(render.NewCanvas(60, 24))); err != nil {
		t.Fatal(err)
	}

	if err := md.PlotLineGeo([]float64{-89, -88}, []float64{42}, DefaultLineStyle()); err == nil {
		t.Error("mismatched geo arrays did not fail")
	}
	if err := md.PlotLineXY([]float64{0}, []float64{0, 1000}, DefaultLineStyle()); err == nil {
		t.Error("mismatched xy arrays did not fail")
	}
}

func TestPlotPoint(t *testing.T) {
	md := testMapDisplay()
	canvas := render.NewCanvas(60, 24)
	if err := md.PlotPPIMap("reflectivity", 0, explicitOptions(canvas)); err != nil {
		t.Fatal(err)
	}

	style := DefaultPointStyle()
	if err := md.PlotPoint(-89, 42, style, "KXYZ", DefaultLabelOffset); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x, y := md.Basemap().CellOf(-89, 42)
	if got := canvas.Get(x, y); got.Char != style.Symbol {
		t.Errorf("marker cell (%d, %d): got %q, expected %q", x, y, got.Char, style.Symbol)
	}

	// label drawn at the offset position, not on top of the marker
	lx, ly := md.Basemap().CellOf(-89+DefaultLabelOffset[0], 42+DefaultLabelOffset[1])
	if got := canvas.Get(lx, ly); got.Char != 'K' {
		t.Errorf("label cell (%d, %d): got %q, expected 'K'", lx, ly, got.Char)
	}
}

func TestPlotRangeRingDraws(t *testing.T) {
	md := New(display.New(testVolume()), nil)
	canvas := render.NewCanvas(60, 24)
	if err := md.PlotPPIMap("reflectivity", 0, explicitOptions(canvas)); err != nil {
		t.Fatal(err)
	}

	style := DefaultLineStyle()
	if err := md.PlotRangeRing(50000, style); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the northernmost ring point lands on the ring character
	lon, lat := md.Projection().Forward(0, 50000)
	x, y := md.Basemap().CellOf(lon, lat)
	if got := canvas.Get(x, y); got.Char != style.Char {
		t.Errorf("ring cell (%d, %d): got %q, expected %q", x, y, got.Char, style.Char)
	}
}
