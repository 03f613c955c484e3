package geo

import (
	"math"
)

// GRS80 ellipsoid parameters (NAD83 datum)
const (
	semiMajorM = 6378137.0
	ecc2       = 0.00669438002290
)

const deg2rad = math.Pi / 180.0

// LCCProjection is a Lambert Conformal Conic projection anchored at a radar's
// geographic origin: the standard parallel and latitude of origin are the
// radar latitude, the central meridian is the radar longitude, and the false
// origin is (0,0) so the radar sits at projected coordinate (0,0).
//
// Forward maps radar-centered Cartesian meters to lon/lat degrees; Inverse is
// its exact mathematical inverse. The projection is fixed at construction and
// never mutated, so every drawing primitive that shares it stays
// geometrically consistent.
type LCCProjection struct {
	originLat float64
	originLon float64
	n         float64 // cone constant
	f         float64 // mapping factor
	rho0      float64 // cone radius at the origin latitude, meters
}

// NewLCCProjection creates the projection for a radar at the given origin
// in decimal degrees. Pure parameter setup, no failure modes.
func NewLCCProjection(originLat, originLon float64) *LCCProjection {
	phi0 := originLat * deg2rad

	// Tangent case: single standard parallel at the origin latitude.
	n := math.Sin(phi0)
	t0 := lccT(phi0)
	f := lccM(phi0) / (n * math.Pow(t0, n))

	return &LCCProjection{
		originLat: originLat,
		originLon: originLon,
		n:         n,
		f:         f,
		rho0:      semiMajorM * f * math.Pow(t0, n),
	}
}

// lccM is the ellipsoidal scale function m(phi).
func lccM(phi float64) float64 {
	s := math.Sin(phi)
	return math.Cos(phi) / math.Sqrt(1-ecc2*s*s)
}

// lccT is the ellipsoidal isometric function t(phi).
func lccT(phi float64) float64 {
	e := math.Sqrt(ecc2)
	s := math.Sin(phi)
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-e*s)/(1+e*s), e/2)
}

// Origin returns the radar origin in decimal degrees.
func (p *LCCProjection) Origin() (lat, lon float64) {
	return p.originLat, p.originLon
}

// Forward converts radar-centered Cartesian meters to geographic degrees.
func (p *LCCProjection) Forward(xM, yM float64) (lon, lat float64) {
	sign := 1.0
	if p.n < 0 {
		sign = -1.0
	}

	dy := p.rho0 - yM
	rho := sign * math.Hypot(xM, dy)
	theta := math.Atan2(sign*xM, sign*dy)

	lon = (theta/p.n)/deg2rad + p.originLon

	if rho == 0 {
		// Apex of the cone: the pole on the origin's side.
		return lon, math.Copysign(90, p.n)
	}

	t := math.Pow(rho/(semiMajorM*p.f), 1/p.n)
	lat = lccPhiFromT(t) / deg2rad
	return lon, lat
}

// lccPhiFromT inverts the isometric function t(phi) by fixed-point iteration.
func lccPhiFromT(t float64) float64 {
	e := math.Sqrt(ecc2)
	phi := math.Pi/2 - 2*math.Atan(t)
	for i := 0; i < 15; i++ {
		s := math.Sin(phi)
		next := math.Pi/2 - 2*math.Atan(t*math.Pow((1-e*s)/(1+e*s), e/2))
		if math.Abs(next-phi) < 1e-12 {
			return next
		}
		phi = next
	}
	return phi
}

// Inverse converts geographic degrees back to radar-centered Cartesian
// meters. Exact inverse of Forward within floating-point tolerance.
func (p *LCCProjection) Inverse(lon, lat float64) (xM, yM float64) {
	t := lccT(lat * deg2rad)
	rho := semiMajorM * p.f * math.Pow(t, p.n)
	theta := p.n * (lon - p.originLon) * deg2rad

	xM = rho * math.Sin(theta)
	yM = p.rho0 - rho*math.Cos(theta)
	return xM, yM
}

// ForwardSlice converts equal-length coordinate arrays. NaN inputs (masked
// gates) propagate as NaN outputs rather than poisoning the whole slice.
func (p *LCCProjection) ForwardSlice(xs, ys []float64) (lons, lats []float64) {
	if len(xs) != len(ys) {
		panic("geo: ForwardSlice requires equal-length arrays")
	}
	lons = make([]float64, len(xs))
	lats = make([]float64, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			lons[i], lats[i] = math.NaN(), math.NaN()
			continue
		}
		lons[i], lats[i] = p.Forward(xs[i], ys[i])
	}
	return lons, lats
}

// InverseSlice converts equal-length lon/lat arrays to Cartesian meters.
func (p *LCCProjection) InverseSlice(lons, lats []float64) (xs, ys []float64) {
	if len(lons) != len(lats) {
		panic("geo: InverseSlice requires equal-length arrays")
	}
	xs = make([]float64, len(lons))
	ys = make([]float64, len(lons))
	for i := range lons {
		xs[i], ys[i] = p.Inverse(lons[i], lats[i])
	}
	return xs, ys
}
