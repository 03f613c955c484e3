package radar

import (
	"fmt"
	"math"
	"sort"
)

// Sweep is one antenna rotation at a roughly constant elevation angle.
// Field data is stored per ray, per gate.
type Sweep struct {
	FixedAngle float64              // nominal elevation, degrees
	Azimuths   []float64            // per-ray azimuth, degrees clockwise from north
	Elevations []float64            // per-ray elevation, degrees
	Ranges     []float64            // gate center ranges, meters
	Fields     map[string][][]float64 // field name -> [ray][gate]
}

// Volume is one complete radar scan: the site and its sweeps.
type Volume struct {
	Name      string
	Latitude  float64 // site latitude, decimal degrees
	Longitude float64 // site longitude, decimal degrees
	Altitude  float64 // site altitude, meters
	Sweeps    []*Sweep
}

// NumSweeps returns the number of sweeps in the volume
func (v *Volume) NumSweeps() int {
	return len(v.Sweeps)
}

// Sweep returns the sweep at the given index
func (v *Volume) Sweep(idx int) (*Sweep, error) {
	if idx < 0 || idx >= len(v.Sweeps) {
		return nil, fmt.Errorf("sweep index %d out of range (0-%d)", idx, len(v.Sweeps)-1)
	}
	return v.Sweeps[idx], nil
}

// FieldNames returns the sorted field names present in the first sweep.
func (v *Volume) FieldNames() []string {
	if len(v.Sweeps) == 0 {
		return nil
	}
	names := make([]string, 0, len(v.Sweeps[0].Fields))
	for name := range v.Sweeps[0].Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumRays returns the ray count of the sweep
func (s *Sweep) NumRays() int {
	return len(s.Azimuths)
}

// NumGates returns the gate count per ray
func (s *Sweep) NumGates() int {
	return len(s.Ranges)
}

// MaxRange returns the range of the farthest gate in meters
func (s *Sweep) MaxRange() float64 {
	if len(s.Ranges) == 0 {
		return 0
	}
	return s.Ranges[len(s.Ranges)-1]
}

// Field returns the [ray][gate] data of the named field
func (s *Sweep) Field(name string) ([][]float64, error) {
	data, ok := s.Fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %s", name)
	}
	return data, nil
}

// GateXY returns the radar-centered Cartesian gate coordinates in meters,
// one row per ray: x east, y north. The per-ray elevation foreshortens the
// ground-projected range.
func (s *Sweep) GateXY() (xs, ys [][]float64) {
	xs = make([][]float64, len(s.Azimuths))
	ys = make([][]float64, len(s.Azimuths))
	for i, az := range s.Azimuths {
		el := s.FixedAngle
		if i < len(s.Elevations) {
			el = s.Elevations[i]
		}
		sinAz := math.Sin(az * math.Pi / 180)
		cosAz := math.Cos(az * math.Pi / 180)
		cosEl := math.Cos(el * math.Pi / 180)

		xs[i] = make([]float64, len(s.Ranges))
		ys[i] = make([]float64, len(s.Ranges))
		for j, r := range s.Ranges {
			xs[i][j] = r * sinAz * cosEl
			ys[i][j] = r * cosAz * cosEl
		}
	}
	return xs, ys
}

// Validate checks the internal consistency of the sweep's ray and gate
// dimensions.
func (s *Sweep) Validate() error {
	if len(s.Azimuths) == 0 {
		return fmt.Errorf("sweep has no rays")
	}
	if len(s.Ranges) == 0 {
		return fmt.Errorf("sweep has no gates")
	}
	for name, data := range s.Fields {
		if len(data) != len(s.Azimuths) {
			return fmt.Errorf("field %s: %d rays, expected %d", name, len(data), len(s.Azimuths))
		}
		for i, ray := range data {
			if len(ray) != len(s.Ranges) {
				return fmt.Errorf("field %s ray %d: %d gates, expected %d", name, i, len(ray), len(s.Ranges))
			}
		}
	}
	return nil
}
