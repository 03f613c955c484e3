package config

import (
	"testing"

	"radarmap/internal/geo"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()

	if n := len(p.LatLines); n != 16 {
		t.Errorf("got %d lat lines, expected 16", n)
	}
	if p.LatLines[0] != 30 || p.LatLines[len(p.LatLines)-1] != 45 {
		t.Errorf("lat lines span %g to %g, expected 30 to 45", p.LatLines[0], p.LatLines[len(p.LatLines)-1])
	}

	if n := len(p.LonLines); n != 35 {
		t.Errorf("got %d lon lines, expected 35", n)
	}
	if p.LonLines[0] != -110 || p.LonLines[len(p.LonLines)-1] != -76 {
		t.Errorf("lon lines span %g to %g, expected -110 to -76", p.LonLines[0], p.LonLines[len(p.LonLines)-1])
	}

	if p.MinLon != -92 || p.MaxLon != -86 || p.MinLat != 40 || p.MaxLat != 44 {
		t.Errorf("default extent lon[%g %g] lat[%g %g], expected lon[-92 -86] lat[40 44]",
			p.MinLon, p.MaxLon, p.MinLat, p.MaxLat)
	}

	if p.ResolutionTier() != geo.ResLow {
		t.Errorf("got resolution %v, expected %v", p.ResolutionTier(), geo.ResLow)
	}
}

func TestActiveProfile(t *testing.T) {
	cfg := &Config{
		ProfileName: "europe",
		Profiles: map[string]Profile{
			"europe": {MinLon: -10, MaxLon: 30, MinLat: 35, MaxLat: 60, Resolution: "i"},
		},
	}

	p := cfg.ActiveProfile("")
	if p.MinLon != -10 || p.ResolutionTier() != geo.ResIntermediate {
		t.Errorf("configured profile not selected: %+v", p)
	}

	if got := cfg.ActiveProfile("missing"); got.MinLon != -92 {
		t.Errorf("unknown profile did not fall back to the default: %+v", got)
	}
}
