package main

import (
	"flag"
	"fmt"
	"os"

	"radarmap/internal/cache"
	"radarmap/internal/config"
	"radarmap/internal/debug"
	"radarmap/internal/display"
	"radarmap/internal/geo"
	"radarmap/internal/mapdisplay"
	"radarmap/internal/radar"
	"radarmap/internal/ui"
)

func main() {
	// Parse command line flags
	help := flag.Bool("h", false, "Show help message")
	volumePath := flag.String("volume", "", "Radar volume archive (.json or .json.gz); omit for a synthetic demo volume")
	cacheDir := flag.String("cache", "", "Cache directory for map data (default: ~/.radarmap/data)")
	debugLog := flag.String("d", "", "Debug log file (e.g., debug.log)")
	profileName := flag.String("profile", "", "Region profile name from the config file (default: north-america)")
	resolution := flag.String("resolution", "", "Background resolution tier: c, l, i, h or f (overrides profile)")
	shapefilePath := flag.String("shapefile", "", "Extra boundary shapefile to overlay on the map")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("radarmap - Terminal-based weather radar PPI viewer")
		fmt.Println("\nUsage: radarmap [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	// Set up debug logging if requested
	if *debugLog != "" {
		debug.SetFile(*debugLog)
		debug.Log("radarmap debug log started")
		fmt.Printf("Debug logging enabled: %s\n", *debugLog)
	}

	// Load configuration and resolve the region profile
	cfg, found := config.Load()
	if found {
		debug.Log("config file loaded, profile %q", cfg.ProfileName)
	}
	profile := cfg.ActiveProfile(*profileName)
	if *resolution != "" {
		res, ok := geo.ParseResolution(*resolution)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown resolution tier %q (want c, l, i, h or f)\n", *resolution)
			os.Exit(1)
		}
		profile.Resolution = res.String()
	}
	if *cacheDir == "" {
		*cacheDir = cfg.CacheDir
	}

	// Initialize cache manager
	fmt.Println("Initializing map data cache...")
	cacheManager, err := cache.NewManager(*cacheDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize cache: %v\n", err)
		os.Exit(1)
	}

	// Ensure Natural Earth data is available for the chosen tier
	fmt.Println("Checking Natural Earth data...")
	if err := cacheManager.EnsureData(profile.ResolutionTier()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to download map data: %v\n", err)
		os.Exit(1)
	}

	loader := geo.NewLoader(cacheManager.DataDir())

	airports, err := geo.LoadAirports(cacheManager.AirportCSVPath())
	if err != nil {
		fmt.Printf("Warning: airports unavailable: %v\n", err)
	}

	// Load the radar volume
	var vol *radar.Volume
	if *volumePath != "" {
		fmt.Printf("Loading volume %s...\n", *volumePath)
		vol, err = radar.ReadVolume(*volumePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load volume: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println("No volume given, using synthetic demo volume")
		vol = radar.Synthetic()
	}
	fmt.Printf("Site %s: %d sweeps, fields %v\n", vol.Name, vol.NumSweeps(), vol.FieldNames())

	md := mapdisplay.New(display.New(vol), loader)
	opts := mapdisplay.OptionsFromProfile(profile)
	opts.Shapefile = *shapefilePath

	// Create and run application
	app, err := ui.NewApp(md, airports, opts, cfg.FieldColormaps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create application: %v\n", err)
		os.Exit(1)
	}

	// Run with panic recovery to ensure terminal is always restored
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\nPanic: %v\n", r)
			}
		}()

		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}()

	fmt.Println("\nGoodbye!")
}
