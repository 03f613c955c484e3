package mapdisplay

import (
	"math"
	"testing"

	"radarmap/internal/display"
	"radarmap/internal/geo"
	"radarmap/internal/radar"
	"radarmap/internal/render"
)

// testVolume has one sweep whose gates sit at Cartesian (0,0), (0,1000),
// (0,0) and (1000,0) meters, small enough to reason about the projected
// bounding box by hand.
func testVolume() *radar.Volume {
	return &radar.Volume{
		Name:      "TEST",
		Latitude:  42.0,
		Longitude: -89.0,
		Sweeps: []*radar.Sweep{{
			FixedAngle: 0.5,
			Azimuths:   []float64{0, 90},
			Elevations: []float64{0, 0},
			Ranges:     []float64{0, 1000},
			Fields: map[string][][]float64{
				"reflectivity":              {{10, 20}, {30, 40}},
				"normalized_coherent_power": {{0.1, 0.9}, {0.9, 0.9}},
			},
		}},
	}
}

func testMapDisplay() *MapDisplay {
	return New(display.New(testVolume()), nil)
}

func explicitOptions(canvas *render.Canvas) PPIMapOptions {
	opts := DefaultPPIMapOptions()
	opts.Canvas = canvas
	opts.AutoRange = false
	opts.MinLon, opts.MaxLon = -90, -88
	opts.MinLat, opts.MaxLat = 41, 43
	return opts
}

func TestAutoRangeExtent(t *testing.T) {
	md := testMapDisplay()
	opts := DefaultPPIMapOptions()
	opts.Canvas = render.NewCanvas(60, 24)

	if err := md.PlotPPIMap("reflectivity", 0, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	xs, ys, err := md.Display().GateXY(0)
	if err != nil {
		t.Fatal(err)
	}
	want := geo.Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for i := range xs {
		lons, lats := md.Projection().ForwardSlice(xs[i], ys[i])
		for j := range lons {
			want.MinLon = math.Min(want.MinLon, lons[j])
			want.MaxLon = math.Max(want.MaxLon, lons[j])
			want.MinLat = math.Min(want.MinLat, lats[j])
			want.MaxLat = math.Max(want.MaxLat, lats[j])
		}
	}

	got := md.Basemap().Bounds
	if got != want {
		t.Errorf("got extent %+v, expected %+v", got, want)
	}
}

func TestExplicitExtent(t *testing.T) {
	md := testMapDisplay()
	opts := explicitOptions(render.NewCanvas(60, 24))

	if err := md.PlotPPIMap("reflectivity", 0, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := md.Basemap().Bounds
	want := geo.Bounds{MinLat: 41, MaxLat: 43, MinLon: -90, MaxLon: -88}
	if got != want {
		t.Errorf("got extent %+v, expected %+v", got, want)
	}
}

func TestArtifactOrderAndBackgroundReplacement(t *testing.T) {
	md := testMapDisplay()
	canvas := render.NewCanvas(60, 24)

	opts := DefaultPPIMapOptions()
	opts.Canvas = canvas
	if err := md.PlotPPIMap("reflectivity", 0, opts); err != nil {
		t.Fatalf("first plot: %v", err)
	}
	first := md.Basemap()

	if err := md.PlotPPIMap("normalized_coherent_power", 0, explicitOptions(canvas)); err != nil {
		t.Fatalf("second plot: %v", err)
	}

	d := md.Display()
	if len(d.Plots) != 2 || len(d.PlotVars) != 2 {
		t.Fatalf("got %d plots / %d vars, expected 2 / 2", len(d.Plots), len(d.PlotVars))
	}
	if d.PlotVars[0] != "reflectivity" || d.PlotVars[1] != "normalized_coherent_power" {
		t.Errorf("artifact order wrong: %v", d.PlotVars)
	}
	if d.Plots[0].Field != "reflectivity" || d.Plots[1].Field != "normalized_coherent_power" {
		t.Errorf("mesh fields wrong: %q, %q", d.Plots[0].Field, d.Plots[1].Field)
	}

	if md.Basemap() == first {
		t.Error("second plot did not replace the basemap")
	}
	want := geo.Bounds{MinLat: 41, MaxLat: 43, MinLon: -90, MaxLon: -88}
	if md.Basemap().Bounds != want {
		t.Errorf("overlay target has extent %+v, expected the second plot's %+v", md.Basemap().Bounds, want)
	}
}

func TestMaskTupleExcludesGates(t *testing.T) {
	md := testMapDisplay()
	opts := explicitOptions(render.NewCanvas(60, 24))
	opts.MaskField = "normalized_coherent_power"
	opts.MaskThreshold = 0.5

	if err := md.PlotPPIMap("reflectivity", 0, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mesh := md.Display().Plots[0]
	if len(mesh.Cells) != 3 {
		t.Errorf("got %d mesh cells, expected 3 (one gate masked)", len(mesh.Cells))
	}
}

func TestPlotUnknownField(t *testing.T) {
	md := testMapDisplay()
	opts := DefaultPPIMapOptions()
	opts.Canvas = render.NewCanvas(60, 24)

	if err := md.PlotPPIMap("bogus", 0, opts); err == nil {
		t.Error("unknown field did not fail")
	}
	if md.Basemap() != nil {
		t.Error("failed plot left a basemap behind")
	}
}

func TestDegenerateExtentRejected(t *testing.T) {
	vol := testVolume()
	// single gate at the origin: auto-range collapses to a point
	vol.Sweeps[0].Azimuths = []float64{0}
	vol.Sweeps[0].Elevations = []float64{0}
	vol.Sweeps[0].Ranges = []float64{0}
	vol.Sweeps[0].Fields = map[string][][]float64{"reflectivity": {{10}}}

	md := New(display.New(vol), nil)
	opts := DefaultPPIMapOptions()
	opts.Canvas = render.NewCanvas(60, 24)

	if err := md.PlotPPIMap("reflectivity", 0, opts); err == nil {
		t.Error("zero-area auto-range extent did not fail")
	}
}

func TestCheckBounds(t *testing.T) {
	cases := []struct {
		name   string
		bounds geo.Bounds
		ok     bool
	}{
		{"valid", geo.Bounds{MinLat: 41, MaxLat: 43, MinLon: -90, MaxLon: -88}, true},
		{"inverted", geo.Bounds{MinLat: 43, MaxLat: 41, MinLon: -90, MaxLon: -88}, false},
		{"zero-area", geo.Bounds{MinLat: 42, MaxLat: 42, MinLon: -90, MaxLon: -88}, false},
		{"nan", geo.Bounds{MinLat: math.NaN(), MaxLat: 43, MinLon: -90, MaxLon: -88}, false},
		{"inf", geo.Bounds{MinLat: 41, MaxLat: math.Inf(1), MinLon: -90, MaxLon: -88}, false},
	}

	for _, c := range cases {
		err := checkBounds(c.bounds)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%s: expected an error", c.name)
		}
	}
}
