package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap maps a data value within [vmin, vmax] to a terminal color by
// blending between fixed control colors in Lab space.
type Colormap struct {
	name  string
	stops []colorful.Color
}

var colormaps = map[string]*Colormap{
	// NWS-style reflectivity ramp: gray → cyan → green → yellow → red → magenta
	"refl": newColormap("refl",
		rgb(0x60, 0x60, 0x60),
		rgb(0x00, 0xbf, 0xbf),
		rgb(0x00, 0x9f, 0xf4),
		rgb(0x00, 0xc0, 0x00),
		rgb(0xff, 0xff, 0x00),
		rgb(0xff, 0x90, 0x00),
		rgb(0xe0, 0x00, 0x00),
		rgb(0xff, 0x00, 0xff),
		rgb(0xff, 0xff, 0xff),
	),
	// diverging ramp for Doppler velocity: toward (green) / away (red)
	"velocity": newColormap("velocity",
		rgb(0x00, 0x80, 0x00),
		rgb(0x60, 0xd0, 0x60),
		rgb(0xd0, 0xd0, 0xd0),
		rgb(0xd0, 0x60, 0x60),
		rgb(0x80, 0x00, 0x00),
	),
	"gray": newColormap("gray",
		rgb(0x10, 0x10, 0x10),
		rgb(0xf0, 0xf0, 0xf0),
	),
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func newColormap(name string, stops ...colorful.Color) *Colormap {
	return &Colormap{name: name, stops: stops}
}

// ColormapByName returns the named colormap, falling back to the
// reflectivity ramp for unknown names.
func ColormapByName(name string) *Colormap {
	if cm, ok := colormaps[name]; ok {
		return cm
	}
	return colormaps["refl"]
}

// Name returns the colormap name.
func (c *Colormap) Name() string {
	return c.name
}

// At returns the color for value v scaled into [vmin, vmax]. Values outside
// the range clamp to the end colors.
func (c *Colormap) At(v, vmin, vmax float64) tcell.Color {
	frac := 0.0
	if vmax > vmin {
		frac = (v - vmin) / (vmax - vmin)
	}
	if frac < 0 || math.IsNaN(frac) {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}

	pos := frac * float64(len(c.stops)-1)
	i := int(pos)
	if i >= len(c.stops)-1 {
		return toTcell(c.stops[len(c.stops)-1])
	}
	return toTcell(c.stops[i].BlendLab(c.stops[i+1], pos-float64(i)).Clamped())
}

// Levels returns n evenly spaced colors from the ramp, low to high. Used for
// colorbar rendering.
func (c *Colormap) Levels(n int) []tcell.Color {
	if n < 2 {
		n = 2
	}
	out := make([]tcell.Color, n)
	for i := 0; i < n; i++ {
		out[i] = c.At(float64(i), 0, float64(n-1))
	}
	return out
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
