package render

import (
	"math"
	"testing"
)

func TestColormapClamping(t *testing.T) {
	cm := ColormapByName("refl")

	if cm.At(-100, 0, 10) != cm.At(0, 0, 10) {
		t.Error("value below vmin did not clamp to the low end")
	}
	if cm.At(100, 0, 10) != cm.At(10, 0, 10) {
		t.Error("value above vmax did not clamp to the high end")
	}
	// NaN falls back to the low end rather than poisoning the lookup
	if cm.At(math.NaN(), 0, 10) != cm.At(0, 0, 10) {
		t.Error("NaN value did not clamp to the low end")
	}
	// degenerate range is safe
	if cm.At(5, 10, 10) != cm.At(0, 0, 1) {
		t.Error("vmin == vmax did not fall back to the low end")
	}
}

func TestColormapInterior(t *testing.T) {
	cm := ColormapByName("velocity")
	low := cm.At(0, 0, 10)
	mid := cm.At(5, 0, 10)
	high := cm.At(10, 0, 10)

	if low == mid || mid == high || low == high {
		t.Errorf("ramp not monotone enough: %v, %v, %v", low, mid, high)
	}
}

func TestColormapByNameFallback(t *testing.T) {
	if ColormapByName("no_such_map").Name() != "refl" {
		t.Error("unknown colormap did not fall back to refl")
	}
	if ColormapByName("gray").Name() != "gray" {
		t.Error("known colormap not returned")
	}
}

func TestLevels(t *testing.T) {
	cm := ColormapByName("gray")

	levels := cm.Levels(10)
	if len(levels) != 10 {
		t.Fatalf("got %d levels, expected 10", len(levels))
	}
	if levels[0] == levels[9] {
		t.Error("ramp ends are identical")
	}

	if got := cm.Levels(0); len(got) != 2 {
		t.Errorf("got %d levels for n=0, expected the 2-level minimum", len(got))
	}
}
