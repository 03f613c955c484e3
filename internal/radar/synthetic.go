package radar

import "math"

// Synthetic builds a deterministic demo volume so the viewer runs without a
// recorded volume file: two storm cells in reflectivity, a rotation couplet
// in velocity, and a correlation field that degrades toward the cell edges.
func Synthetic() *Volume {
	const (
		rays        = 360
		gates       = 200
		gateSpacing = 500.0 // meters
	)
	angles := []float64{0.5, 1.5, 3.1}

	vol := &Volume{
		Name:      "XDEM",
		Latitude:  42.0,
		Longitude: -89.0,
		Altitude:  300.0,
	}

	ranges := make([]float64, gates)
	for j := range ranges {
		ranges[j] = gateSpacing * float64(j+1)
	}

	for _, angle := range angles {
		sweep := &Sweep{
			FixedAngle: angle,
			Azimuths:   make([]float64, rays),
			Elevations: make([]float64, rays),
			Ranges:     ranges,
			Fields:     make(map[string][][]float64),
		}

		refl := make([][]float64, rays)
		vel := make([][]float64, rays)
		rho := make([][]float64, rays)

		// storm cells fade with elevation
		fade := 1.0 / (1.0 + (angle-angles[0])/2.0)

		for i := 0; i < rays; i++ {
			az := float64(i)
			sweep.Azimuths[i] = az
			sweep.Elevations[i] = angle

			refl[i] = make([]float64, gates)
			vel[i] = make([]float64, gates)
			rho[i] = make([]float64, gates)

			for j := 0; j < gates; j++ {
				r := ranges[j]
				cell := stormCell(az, r, 45, 40000, 25, 12000, 55) +
					stormCell(az, r, 210, 70000, 18, 9000, 42)
				refl[i][j] = -4 + cell*fade

				// couplet: inbound on one side of the cell, outbound on the other
				vel[i][j] = 14 * math.Sin((az-45)*deg2rad) * math.Exp(-sq((r-40000)/20000))

				rho[i][j] = 1.0 - 0.4*math.Exp(-cell*fade/10)
			}
		}

		sweep.Fields["reflectivity"] = refl
		sweep.Fields["velocity"] = vel
		sweep.Fields["cross_correlation_ratio"] = rho
		vol.Sweeps = append(vol.Sweeps, sweep)
	}

	return vol
}

const deg2rad = math.Pi / 180

// stormCell evaluates a Gaussian bump centered at (azC degrees, rC meters)
// with the given angular/radial widths and peak dBZ.
func stormCell(az, r, azC, rC, azWidth, rWidth, peak float64) float64 {
	dAz := math.Mod(az-azC+540, 360) - 180
	return peak * math.Exp(-(sq(dAz/azWidth)+sq((r-rC)/rWidth))/2)
}

func sq(x float64) float64 { return x * x }
