package mapdisplay

import (
	"fmt"
	"math"

	"radarmap/internal/config"
	"radarmap/internal/debug"
	"radarmap/internal/display"
	"radarmap/internal/geo"
	"radarmap/internal/render"
)

// MapDisplay renders geographic PPI plots for one radar volume. It composes
// the base Display for data access and artifact bookkeeping, owns a Lambert
// Conformal Conic projection fixed at the radar site, and holds the current
// basemap that overlay operations draw on.
//
// Not goroutine-safe; intended for single-threaded interactive use.
type MapDisplay struct {
	disp   *display.Display
	proj   *geo.LCCProjection
	loader *geo.Loader

	basemap   *Basemap
	baseCache map[geo.Resolution]map[geo.FeatureType][]*geo.Feature
}

// PPIMapOptions configures one PlotPPIMap call. Zero values mean "unset":
// NaN limits resolve to the field's defaults, nil graticule arrays resolve
// to the default profile's, a nil canvas resolves to the display's current
// canvas, and an empty Cmap resolves to the field's default colormap.
type PPIMapOptions struct {
	// masking
	MaskField     string
	MaskThreshold float64
	MaskOutside   bool

	// color scaling
	VMin float64
	VMax float64
	Cmap string

	// map extent
	AutoRange bool
	MinLon    float64
	MaxLon    float64
	MinLat    float64
	MaxLat    float64

	// graticule
	LatLines []float64
	LonLines []float64

	// background
	Resolution geo.Resolution

	// decoration
	TitleFlag     bool
	Title         string
	ColorbarFlag  bool
	ColorbarLabel string
	Shapefile     string

	// target surface
	Canvas *render.Canvas
}

// OptionsFromProfile builds plot options from a regional profile.
func OptionsFromProfile(p config.Profile) PPIMapOptions {
	return PPIMapOptions{
		MaskOutside:  true,
		VMin:         math.NaN(),
		VMax:         math.NaN(),
		AutoRange:    true,
		MinLon:       p.MinLon,
		MaxLon:       p.MaxLon,
		MinLat:       p.MinLat,
		MaxLat:       p.MaxLat,
		LatLines:     p.LatLines,
		LonLines:     p.LonLines,
		Resolution:   p.ResolutionTier(),
		TitleFlag:    true,
		ColorbarFlag: true,
	}
}

// DefaultPPIMapOptions returns the options of the built-in north-america
// profile.
func DefaultPPIMapOptions() PPIMapOptions {
	return OptionsFromProfile(config.DefaultProfile())
}

// New creates a map display for a volume. The projection origin is the
// radar site. The loader supplies background shapefiles per resolution tier
// and may be nil, in which case plots have no coastline or border layers.
func New(disp *display.Display, loader *geo.Loader) *MapDisplay {
	vol := disp.Volume()
	return &MapDisplay{
		disp:      disp,
		proj:      geo.NewLCCProjection(vol.Latitude, vol.Longitude),
		loader:    loader,
		baseCache: make(map[geo.Resolution]map[geo.FeatureType][]*geo.Feature),
	}
}

// Display returns the composed base display.
func (m *MapDisplay) Display() *display.Display {
	return m.disp
}

// Projection returns the fixed site projection shared by every drawing
// primitive.
func (m *MapDisplay) Projection() *geo.LCCProjection {
	return m.proj
}

// Basemap returns the most recently drawn basemap, nil before the first
// PlotPPIMap call.
func (m *MapDisplay) Basemap() *Basemap {
	return m.basemap
}

// PlotPPIMap draws one complete geographic PPI plot of a field and sweep:
// background layers and graticule for the extent, the pseudocolor mesh, and
// optionally a user shapefile, title and colorbar. The mesh artifact and
// field name are appended to the display's ordered lists, and the new
// basemap replaces the previous one as the target of overlay operations.
func (m *MapDisplay) PlotPPIMap(field string, sweep int, opts PPIMapOptions) error {
	canvas := m.disp.ParseCanvas(opts.Canvas)
	vmin, vmax := m.disp.ParseVminVmax(field, opts.VMin, opts.VMax)

	var mask *display.MaskSpec
	if opts.MaskField != "" {
		mask = &display.MaskSpec{Field: opts.MaskField, Threshold: opts.MaskThreshold}
	}
	data, err := m.disp.Data(field, sweep, mask)
	if err != nil {
		return fmt.Errorf("field data: %w", err)
	}
	if opts.MaskOutside {
		display.MaskOutside(data, vmin, vmax)
	}

	xs, ys, err := m.disp.GateXY(sweep)
	if err != nil {
		return fmt.Errorf("gate coordinates: %w", err)
	}
	if len(xs) == 0 || len(xs[0]) == 0 {
		return fmt.Errorf("sweep %d has no gate coordinates", sweep)
	}

	lons := make([][]float64, len(xs))
	lats := make([][]float64, len(xs))
	for i := range xs {
		lons[i], lats[i] = m.proj.ForwardSlice(xs[i], ys[i])
	}

	bounds := geo.Bounds{MinLat: opts.MinLat, MaxLat: opts.MaxLat, MinLon: opts.MinLon, MaxLon: opts.MaxLon}
	if opts.AutoRange {
		bounds = boundsOf(lons, lats)
	}
	if err := checkBounds(bounds); err != nil {
		return err
	}
	debug.Log("PPI map %s sweep %d: extent lon[%.3f %.3f] lat[%.3f %.3f] res %s",
		field, sweep, bounds.MinLon, bounds.MaxLon, bounds.MinLat, bounds.MaxLat, opts.Resolution)

	bm := NewBasemap(bounds, opts.Resolution, canvas)
	bm.DrawBase(m.baseFeatures(opts.Resolution))

	latLines, lonLines := opts.LatLines, opts.LonLines
	if latLines == nil {
		latLines = config.DefaultProfile().LatLines
	}
	if lonLines == nil {
		lonLines = config.DefaultProfile().LonLines
	}
	bm.DrawGraticule(latLines, lonLines)

	cmapName := opts.Cmap
	if cmapName == "" {
		cmapName = display.FieldInfo(field).Cmap
	}
	mesh := display.NewMeshArtifact(field, render.ColormapByName(cmapName), vmin, vmax, canvas)
	for i := range data {
		for j, v := range data[i] {
			if math.IsNaN(v) {
				continue
			}
			x, y := bm.CellOf(lons[i][j], lats[i][j])
			mesh.Add(x, y, v)
		}
	}

	if opts.Shapefile != "" {
		shapes, err := geo.LoadShapefile(opts.Shapefile, geo.FeatureUserShape)
		if err != nil {
			return fmt.Errorf("shapefile overlay: %w", err)
		}
		bm.DrawLayer(geo.FeatureUserShape, shapes)
	}

	if opts.TitleFlag {
		title := m.disp.Title(field, sweep, opts.Title)
		canvas.DrawText((canvas.Width()-len(title))/2, 0, title, render.StyleTitle)
	}

	m.disp.AddPlot(mesh, field)
	if opts.ColorbarFlag {
		m.disp.AttachColorbar(canvas, mesh, opts.ColorbarLabel)
	}

	m.basemap = bm
	return nil
}

// baseFeatures returns the background layers for a tier, loading and caching
// them on first use.
func (m *MapDisplay) baseFeatures(res geo.Resolution) map[geo.FeatureType][]*geo.Feature {
	if features, ok := m.baseCache[res]; ok {
		return features
	}
	features := make(map[geo.FeatureType][]*geo.Feature)
	if m.loader != nil {
		features = m.loader.LoadBase(res)
	}
	m.baseCache[res] = features
	return features
}

// boundsOf computes the componentwise min/max of projected coordinates,
// ignoring NaN entries from masked gates.
func boundsOf(lons, lats [][]float64) geo.Bounds {
	b := geo.Bounds{
		MinLat: math.Inf(1), MaxLat: math.Inf(-1),
		MinLon: math.Inf(1), MaxLon: math.Inf(-1),
	}
	for i := range lons {
		for j := range lons[i] {
			lon, lat := lons[i][j], lats[i][j]
			if math.IsNaN(lon) || math.IsNaN(lat) {
				continue
			}
			b.MinLon = math.Min(b.MinLon, lon)
			b.MaxLon = math.Max(b.MaxLon, lon)
			b.MinLat = math.Min(b.MinLat, lat)
			b.MaxLat = math.Max(b.MaxLat, lat)
		}
	}
	return b
}

// checkBounds rejects non-finite or zero-area extents before they reach the
// basemap's cell transform.
func checkBounds(b geo.Bounds) error {
	for _, v := range []float64{b.MinLat, b.MaxLat, b.MinLon, b.MaxLon} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("map extent is not finite: lon[%g %g] lat[%g %g]", b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
		}
	}
	if b.MaxLon <= b.MinLon || b.MaxLat <= b.MinLat {
		return fmt.Errorf("map extent is degenerate: lon[%g %g] lat[%g %g]", b.MinLon, b.MaxLon, b.MinLat, b.MaxLat)
	}
	return nil
}
