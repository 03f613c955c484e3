package display

// FieldProfile describes a radar field's display defaults.
type FieldProfile struct {
	Label string
	Units string
	VMin  float64
	VMax  float64
	Cmap  string
}

// fieldTable holds the per-field default limits, labels and colormaps.
var fieldTable = map[string]FieldProfile{
	"reflectivity":              {"Equivalent reflectivity factor", "dBZ", -4, 64, "refl"},
	"velocity":                  {"Mean Doppler velocity", "m/s", -16, 16, "velocity"},
	"spectrum_width":            {"Doppler spectrum width", "m/s", 0, 4, "gray"},
	"differential_reflectivity": {"Differential reflectivity", "dB", -1, 8, "refl"},
	"cross_correlation_ratio":   {"Cross correlation ratio", "", 0.5, 1.05, "gray"},
	"normalized_coherent_power": {"Normalized coherent power", "", 0, 1, "gray"},
}

// FieldInfo returns the display defaults for a field, falling back to a
// generic grayscale profile for unknown field names.
func FieldInfo(name string) FieldProfile {
	if info, ok := fieldTable[name]; ok {
		return info
	}
	return FieldProfile{Label: name, VMin: 0, VMax: 1, Cmap: "gray"}
}
