package display

import (
	"fmt"
	"math"

	"radarmap/internal/radar"
	"radarmap/internal/render"
)

// Display is the non-geographic base display for one radar volume: it
// resolves target canvases and color limits, fetches masked field data and
// gate coordinates, synthesizes titles, and keeps the ordered artifact lists
// that later indexed mutation operates on. Geographic renderers compose a
// Display rather than subclassing it.
//
// Not goroutine-safe; intended for single-threaded interactive use.
type Display struct {
	vol     *radar.Volume
	current *render.Canvas

	// Ordered artifact lists, appended on each draw call. Insertion order
	// matches draw order and is significant for SetPlotLimits.
	Plots     []*MeshArtifact
	PlotVars  []string
	Colorbars []*ColorbarArtifact
}

// MaskSpec excludes samples whose companion field falls below a threshold,
// e.g. {Field: "normalized_coherent_power", Threshold: 0.5}.
type MaskSpec struct {
	Field     string
	Threshold float64
}

// New creates a display for the given volume.
func New(vol *radar.Volume) *Display {
	return &Display{vol: vol}
}

// Volume returns the displayed volume.
func (d *Display) Volume() *radar.Volume {
	return d.vol
}

// ParseCanvas resolves the target canvas: the given one when non-nil,
// otherwise the current canvas, created at a default terminal size on first
// use. A non-nil canvas becomes the new current canvas.
func (d *Display) ParseCanvas(c *render.Canvas) *render.Canvas {
	if c != nil {
		d.current = c
		return c
	}
	if d.current == nil {
		d.current = render.NewCanvas(80, 24)
	}
	return d.current
}

// Canvas returns the current canvas, which may be nil before any draw call.
func (d *Display) Canvas() *render.Canvas {
	return d.current
}

// ParseVminVmax resolves color scale limits: NaN limits are replaced by the
// field's defaults from the field table.
func (d *Display) ParseVminVmax(field string, vmin, vmax float64) (float64, float64) {
	info := FieldInfo(field)
	if math.IsNaN(vmin) {
		vmin = info.VMin
	}
	if math.IsNaN(vmax) {
		vmax = info.VMax
	}
	return vmin, vmax
}

// Data returns a copy of the named field's [ray][gate] data for one sweep,
// with samples masked to NaN where the companion field in mask falls below
// its threshold. A nil mask applies no masking.
func (d *Display) Data(field string, sweep int, mask *MaskSpec) ([][]float64, error) {
	s, err := d.vol.Sweep(sweep)
	if err != nil {
		return nil, err
	}
	src, err := s.Field(field)
	if err != nil {
		return nil, err
	}

	var companion [][]float64
	if mask != nil {
		companion, err = s.Field(mask.Field)
		if err != nil {
			return nil, fmt.Errorf("mask field: %w", err)
		}
	}

	out := make([][]float64, len(src))
	for i, ray := range src {
		out[i] = make([]float64, len(ray))
		copy(out[i], ray)
		if companion == nil {
			continue
		}
		for j := range ray {
			if companion[i][j] < mask.Threshold {
				out[i][j] = math.NaN()
			}
		}
	}
	return out, nil
}

// MaskOutside masks samples outside [vmin, vmax] to NaN, in place.
func MaskOutside(data [][]float64, vmin, vmax float64) {
	for i := range data {
		for j, v := range data[i] {
			if v < vmin || v > vmax {
				data[i][j] = math.NaN()
			}
		}
	}
}

// GateXY returns the sweep's radar-centered Cartesian gate coordinates in
// meters, one row per ray.
func (d *Display) GateXY(sweep int) (xs, ys [][]float64, err error) {
	s, err := d.vol.Sweep(sweep)
	if err != nil {
		return nil, nil, err
	}
	xs, ys = s.GateXY()
	return xs, ys, nil
}

// Title returns the override when set, otherwise a title synthesized from
// the site name, sweep elevation angle and field label.
func (d *Display) Title(field string, sweep int, override string) string {
	if override != "" {
		return override
	}
	angle := 0.0
	if s, err := d.vol.Sweep(sweep); err == nil {
		angle = s.FixedAngle
	}
	return fmt.Sprintf("%s %.1f Deg. %s", d.vol.Name, angle, FieldInfo(field).Label)
}

// AddPlot appends a mesh artifact and its field name to the ordered lists.
func (d *Display) AddPlot(m *MeshArtifact, field string) {
	d.Plots = append(d.Plots, m)
	d.PlotVars = append(d.PlotVars, field)
}

// SetPlotLimits changes the color limits of a previously recorded mesh by
// list index and re-colors its cells in place.
func (d *Display) SetPlotLimits(index int, vmin, vmax float64) error {
	if index < 0 || index >= len(d.Plots) {
		return fmt.Errorf("plot index %d out of range (0-%d)", index, len(d.Plots)-1)
	}
	d.Plots[index].SetLimits(vmin, vmax)
	return nil
}
