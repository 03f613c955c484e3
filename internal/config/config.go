package config

// this file contains all the code that directly uses the viper package.

import (
	"os"
	"path/filepath"

	"radarmap/internal/geo"

	"github.com/spf13/viper"
)

// Profile is a named regional map configuration: the graticule line
// positions, the explicit extent used when auto-ranging is off, and the
// background resolution tier.
type Profile struct {
	LatLines   []float64 `mapstructure:"lat_lines"`
	LonLines   []float64 `mapstructure:"lon_lines"`
	MinLon     float64   `mapstructure:"min_lon"`
	MaxLon     float64   `mapstructure:"max_lon"`
	MinLat     float64   `mapstructure:"min_lat"`
	MaxLat     float64   `mapstructure:"max_lat"`
	Resolution string    `mapstructure:"resolution"`
}

// ResolutionTier parses the profile's resolution name, falling back to the
// low tier when it is missing or unrecognized.
func (p Profile) ResolutionTier() geo.Resolution {
	res, _ := geo.ParseResolution(p.Resolution)
	return res
}

// Config is the application configuration.
type Config struct {
	CacheDir       string
	ProfileName    string
	Profiles       map[string]Profile
	FieldColormaps map[string]string
}

// Load reads configuration from a file called 'radarmap' (any format viper
// understands) in the working directory or in ~/.radarmap. Returns the
// configuration and whether a file was actually read; when no file is found
// the built-in defaults are returned.
func Load() (*Config, bool) {
	cfg := &Config{
		ProfileName: "north-america",
		Profiles:    make(map[string]Profile),
	}

	viper.SetConfigName("radarmap")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".radarmap"))
	}
	if err := viper.ReadInConfig(); err != nil {
		return cfg, false
	}

	if viper.IsSet("cache_dir") {
		cfg.CacheDir = viper.GetString("cache_dir")
	}
	if viper.IsSet("profile") {
		cfg.ProfileName = viper.GetString("profile")
	}
	viper.UnmarshalKey("profiles", &cfg.Profiles)
	viper.UnmarshalKey("field_colormaps", &cfg.FieldColormaps)
	return cfg, true
}

// ActiveProfile resolves a profile by name, preferring the config file's
// profiles and falling back to the built-in default. An empty name selects
// the configured profile.
func (c *Config) ActiveProfile(name string) Profile {
	if name == "" {
		name = c.ProfileName
	}
	if p, ok := c.Profiles[name]; ok {
		return p
	}
	return DefaultProfile()
}

// DefaultProfile returns the built-in "north-america" profile: 1 degree
// graticule spacing over the continental US and a midwestern default extent.
// Other regions supply their own profile through the config file.
func DefaultProfile() Profile {
	return Profile{
		LatLines:   seq(30, 46, 1),
		LonLines:   seq(-110, -75, 1),
		MinLon:     -92,
		MaxLon:     -86,
		MinLat:     40,
		MaxLat:     44,
		Resolution: "l",
	}
}

// seq returns the half-open arithmetic sequence [from, to) with the given
// step.
func seq(from, to, step float64) []float64 {
	var out []float64
	for v := from; v < to; v += step {
		out = append(out, v)
	}
	return out
}
