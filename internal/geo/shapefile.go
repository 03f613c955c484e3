package geo

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
)

// Loader loads ESRI shapefiles from a data directory
type Loader struct {
	dataDir string
}

// NewLoader creates a shapefile loader rooted at dataDir
func NewLoader(dataDir string) *Loader {
	return &Loader{dataDir: dataDir}
}

// baseLayers lists the Natural Earth datasets that make up the map
// background, in draw order.
var baseLayers = []struct {
	ftype    FeatureType
	category string
	name     string
}{
	{FeatureCoastline, "physical", "coastline"},
	{FeatureCountryBorder, "cultural", "admin_0_boundary_lines_land"},
	{FeatureStateBorder, "cultural", "admin_1_states_provinces_lines"},
}

// DatasetBase returns the base filename (no extension) of a Natural Earth
// layer at a resolution tier, e.g. "ne_50m_coastline".
func DatasetBase(scale, name string) string {
	return fmt.Sprintf("ne_%s_%s", scale, name)
}

// BaseDatasets returns the (category, base filename) pairs needed for one
// resolution tier, in draw order.
func BaseDatasets(res Resolution) [][2]string {
	out := make([][2]string, 0, len(baseLayers))
	for _, layer := range baseLayers {
		out = append(out, [2]string{layer.category, DatasetBase(res.Scale(), layer.name)})
	}
	return out
}

// LoadBase loads the coastline and border layers for a resolution tier.
// A missing dataset is skipped with a warning so a partially populated cache
// still produces a usable map.
func (l *Loader) LoadBase(res Resolution) map[FeatureType][]*Feature {
	features := make(map[FeatureType][]*Feature)
	for _, layer := range baseLayers {
		path := fmt.Sprintf("%s/%s.shp", l.dataDir, DatasetBase(res.Scale(), layer.name))
		feats, err := LoadShapefile(path, layer.ftype)
		if err != nil {
			fmt.Printf("Warning: failed to load %s: %v\n", layer.name, err)
			features[layer.ftype] = []*Feature{}
			continue
		}
		features[layer.ftype] = feats
	}
	return features
}

// LoadShapefile loads one shapefile and converts its shapes to features.
// Polygons are reduced to their outlines; point shapes become unlabeled
// point features.
func LoadShapefile(path string, ftype FeatureType) ([]*Feature, error) {
	shape, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open shapefile: %w", err)
	}
	defer shape.Close()

	features := make([]*Feature, 0)
	for shape.Next() {
		_, p := shape.Shape()

		switch geom := p.(type) {
		case *shp.PolyLine:
			if pts := shapePoints(geom.Points); len(pts) > 1 {
				features = append(features, NewLineFeature(ftype, pts))
			}
		case *shp.Polygon:
			if pts := shapePoints(geom.Points); len(pts) > 1 {
				features = append(features, NewLineFeature(ftype, pts))
			}
		case *shp.Point:
			features = append(features, NewPointFeature(ftype, LatLon{Lat: geom.Y, Lon: geom.X}, ""))
		}
	}
	return features, nil
}

func shapePoints(points []shp.Point) []LatLon {
	out := make([]LatLon, len(points))
	for i, point := range points {
		out[i] = LatLon{Lat: point.Y, Lon: point.X}
	}
	return out
}
