package display

import (
	"math"
	"strings"
	"testing"

	"radarmap/internal/radar"
	"radarmap/internal/render"
)

func testVolume() *radar.Volume {
	return &radar.Volume{
		Name:      "TEST",
		Latitude:  42.0,
		Longitude: -89.0,
		Sweeps: []*radar.Sweep{{
			FixedAngle: 0.5,
			Azimuths:   []float64{0, 90},
			Elevations: []float64{0, 0},
			Ranges:     []float64{500, 1000},
			Fields: map[string][][]float64{
				"reflectivity":              {{10, 70}, {30, -20}},
				"normalized_coherent_power": {{0.1, 0.9}, {0.9, 0.9}},
			},
		}},
	}
}

func TestParseVminVmax(t *testing.T) {
	d := New(testVolume())
	nan := math.NaN()

	cases := []struct {
		field      string
		vmin, vmax float64
		wantMin    float64
		wantMax    float64
	}{
		{"reflectivity", nan, nan, -4, 64},
		{"velocity", nan, nan, -16, 16},
		{"reflectivity", 0, 40, 0, 40},
		{"reflectivity", nan, 40, -4, 40},
		{"mystery_field", nan, nan, 0, 1},
	}

	for _, c := range cases {
		gotMin, gotMax := d.ParseVminVmax(c.field, c.vmin, c.vmax)
		if gotMin != c.wantMin || gotMax != c.wantMax {
			t.Errorf("%s (%g, %g): got (%g, %g), expected (%g, %g)",
				c.field, c.vmin, c.vmax, gotMin, gotMax, c.wantMin, c.wantMax)
		}
	}
}

func TestDataMaskTuple(t *testing.T) {
	d := New(testVolume())

	data, err := d.Data("reflectivity", 0, &MaskSpec{Field: "normalized_coherent_power", Threshold: 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsNaN(data[0][0]) {
		t.Errorf("low-quality gate not masked: got %g", data[0][0])
	}
	if data[0][1] != 70 || data[1][0] != 30 {
		t.Errorf("good gates altered: got %g, %g", data[0][1], data[1][0])
	}

	// source data must not be mutated
	if src := d.Volume().Sweeps[0].Fields["reflectivity"][0][0]; src != 10 {
		t.Errorf("source data mutated: got %g", src)
	}
}

func TestDataUnknownField(t *testing.T) {
	d := New(testVolume())
	if _, err := d.Data("bogus", 0, nil); err == nil {
		t.Error("unknown field did not fail")
	}
	if _, err := d.Data("reflectivity", 0, &MaskSpec{Field: "bogus", Threshold: 0.5}); err == nil {
		t.Error("unknown mask field did not fail")
	}
}

func TestMaskOutside(t *testing.T) {
	data := [][]float64{{10, 70}, {30, -20}}
	MaskOutside(data, -4, 64)

	if !math.IsNaN(data[0][1]) {
		t.Errorf("value above vmax not masked: got %g", data[0][1])
	}
	if !math.IsNaN(data[1][1]) {
		t.Errorf("value below vmin not masked: got %g", data[1][1])
	}
	if data[0][0] != 10 || data[1][0] != 30 {
		t.Errorf("in-range values altered: got %g, %g", data[0][0], data[1][0])
	}
}

func TestTitle(t *testing.T) {
	d := New(testVolume())

	if got := d.Title("reflectivity", 0, "Custom"); got != "Custom" {
		t.Errorf("override ignored: got %q", got)
	}

	got := d.Title("reflectivity", 0, "")
	for _, part := range []string{"TEST", "0.5", "reflectivity factor"} {
		if !strings.Contains(got, part) {
			t.Errorf("synthesized title %q missing %q", got, part)
		}
	}
}

func TestParseCanvas(t *testing.T) {
	d := New(testVolume())

	first := d.ParseCanvas(nil)
	if first == nil {
		t.Fatal("nil canvas was not resolved to a default")
	}
	if d.ParseCanvas(nil) != first {
		t.Error("current canvas not reused")
	}

	explicit := render.NewCanvas(10, 5)
	if d.ParseCanvas(explicit) != explicit {
		t.Error("explicit canvas not used")
	}
	if d.Canvas() != explicit {
		t.Error("explicit canvas did not become current")
	}
}

func TestSetPlotLimits(t *testing.T) {
	d := New(testVolume())
	canvas := render.NewCanvas(10, 5)

	mesh := NewMeshArtifact("reflectivity", render.ColormapByName("refl"), -4, 64, canvas)
	mesh.Add(3, 2, 10)
	d.AddPlot(mesh, "reflectivity")

	before := canvas.Get(3, 2)
	if err := d.SetPlotLimits(0, 5, 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := canvas.Get(3, 2)

	if before.Style == after.Style {
		t.Error("cell color unchanged after limit change")
	}
	if mesh.VMin != 5 || mesh.VMax != 15 {
		t.Errorf("limits not recorded: got (%g, %g)", mesh.VMin, mesh.VMax)
	}

	if err := d.SetPlotLimits(3, 0, 1); err == nil {
		t.Error("out-of-range plot index did not fail")
	}
}

func TestAttachColorbar(t *testing.T) {
	d := New(testVolume())
	canvas := render.NewCanvas(40, 10)
	mesh := NewMeshArtifact("reflectivity", render.ColormapByName("refl"), -4, 64, canvas)

	cb := d.AttachColorbar(canvas, mesh, "")
	if cb == nil {
		t.Fatal("colorbar not drawn")
	}
	if len(d.Colorbars) != 1 {
		t.Fatalf("got %d colorbar artifacts, expected 1", len(d.Colorbars))
	}
	if !strings.Contains(cb.Label, "dBZ") {
		t.Errorf("synthesized label %q missing units", cb.Label)
	}

	// the ramp row holds colored cells
	if canvas.Get(cb.X, cb.Y).Char != '█' {
		t.Errorf("ramp cell not drawn at (%d, %d)", cb.X, cb.Y)
	}
}
