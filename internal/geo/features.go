package geo

// FeatureType identifies a map background layer
type FeatureType int

const (
	FeatureCoastline FeatureType = iota
	FeatureCountryBorder
	FeatureStateBorder
	FeatureUserShape
	FeatureAirport
)

// String returns a string representation of the feature type
func (f FeatureType) String() string {
	switch f {
	case FeatureCoastline:
		return "Coastline"
	case FeatureCountryBorder:
		return "CountryBorder"
	case FeatureStateBorder:
		return "StateBorder"
	case FeatureUserShape:
		return "UserShape"
	case FeatureAirport:
		return "Airport"
	default:
		return "Unknown"
	}
}

// Resolution is a map background quality tier, coarsest to finest. Higher
// tiers load larger Natural Earth datasets and cost more render time.
type Resolution int

const (
	ResCrude Resolution = iota
	ResLow
	ResIntermediate
	ResHigh
	ResFull
)

// Scale maps the tier to a Natural Earth dataset scale.
func (r Resolution) Scale() string {
	switch r {
	case ResCrude, ResLow:
		return "110m"
	case ResIntermediate:
		return "50m"
	default:
		return "10m"
	}
}

// String returns the single-letter tier name.
func (r Resolution) String() string {
	switch r {
	case ResCrude:
		return "c"
	case ResLow:
		return "l"
	case ResIntermediate:
		return "i"
	case ResHigh:
		return "h"
	default:
		return "f"
	}
}

// ParseResolution parses a tier name, accepting both the single-letter form
// and the full word.
func ParseResolution(s string) (Resolution, bool) {
	switch s {
	case "c", "crude":
		return ResCrude, true
	case "l", "low":
		return ResLow, true
	case "i", "intermediate":
		return ResIntermediate, true
	case "h", "high":
		return ResHigh, true
	case "f", "full":
		return ResFull, true
	}
	return ResLow, false
}

// LatLon represents a geographic coordinate
type LatLon struct {
	Lat float64
	Lon float64
}

// Feature represents one geographic feature: a polyline for borders and
// coastlines, or a single labeled point for airports.
type Feature struct {
	Type   FeatureType
	Points []LatLon // polyline vertices, empty for point features
	Point  *LatLon  // single point, nil for line features
	Name   string   // label for point features
}

// NewLineFeature creates a polyline feature
func NewLineFeature(ftype FeatureType, points []LatLon) *Feature {
	return &Feature{Type: ftype, Points: points}
}

// NewPointFeature creates a labeled point feature
func NewPointFeature(ftype FeatureType, point LatLon, name string) *Feature {
	return &Feature{Type: ftype, Point: &point, Name: name}
}

// IsPoint returns true if this is a point feature
func (f *Feature) IsPoint() bool {
	return f.Point != nil
}

// Bounds represents a geographic bounding box
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains checks if a point is within the bounds
func (b *Bounds) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lon >= b.MinLon && lon <= b.MaxLon
}

// FilterByBounds filters features to those with at least one vertex inside
// the bounds. Lines are not clipped; the renderer clips at the canvas edge.
func FilterByBounds(features []*Feature, bounds *Bounds) []*Feature {
	filtered := make([]*Feature, 0)
	for _, feature := range features {
		if feature.IsPoint() {
			if bounds.Contains(feature.Point.Lat, feature.Point.Lon) {
				filtered = append(filtered, feature)
			}
			continue
		}
		for _, point := range feature.Points {
			if bounds.Contains(point.Lat, point.Lon) {
				filtered = append(filtered, feature)
				break
			}
		}
	}
	return filtered
}
