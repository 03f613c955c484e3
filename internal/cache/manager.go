package cache

import (
	"archive/zip"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"radarmap/internal/geo"
)

const naturalEarthBase = "https://naciscdn.org/naturalearth"

// Manager handles downloading and caching Natural Earth data
type Manager struct {
	cacheDir string
}

// NewManager creates a new cache manager
// If cacheDir is empty, uses ~/.radarmap/data
func NewManager(cacheDir string) (*Manager, error) {
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".radarmap", "data")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &Manager{cacheDir: cacheDir}, nil
}

// EnsureData ensures the Natural Earth layers for a resolution tier are
// available, downloading missing ones. Every layer is optional: a failed
// download is skipped with a warning so the map degrades instead of the app
// refusing to start.
func (m *Manager) EnsureData(res geo.Resolution) error {
	for _, dataset := range geo.BaseDatasets(res) {
		category, base := dataset[0], dataset[1]
		if err := m.ensureDataset(res, category, base); err != nil {
			fmt.Printf("Warning: Skipping %s (optional): %v\n", base, err)
		}
	}

	if err := m.EnsureAirportData(); err != nil {
		fmt.Printf("Warning: Failed to download airports (optional): %v\n", err)
	}

	return nil
}

// ensureDataset checks if a layer's shapefile exists, downloads if needed
func (m *Manager) ensureDataset(res geo.Resolution, category, base string) error {
	shpPath := filepath.Join(m.cacheDir, base+".shp")
	if _, err := os.Stat(shpPath); err == nil {
		return nil
	}

	url := fmt.Sprintf("%s/%s/%s/%s.zip", naturalEarthBase, res.Scale(), category, base)
	fmt.Printf("Downloading %s...\n", base)

	client := &http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; radarmap/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %s (URL: %s)", resp.Status, url)
	}

	tmpFile, err := os.CreateTemp("", "ne_*.zip")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return fmt.Errorf("failed to save download: %w", err)
	}

	tmpFile.Close()

	if err := m.extractZip(tmpFile.Name(), m.cacheDir); err != nil {
		return fmt.Errorf("failed to extract: %w", err)
	}

	fmt.Printf("Downloaded and extracted %s\n", base)
	return nil
}

func (m *Manager) extractZip(zipPath, destDir string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() || strings.HasPrefix(filepath.Base(f.Name), ".") {
			continue
		}

		destPath := filepath.Join(destDir, filepath.Base(f.Name))
		rc, err := f.Open()
		if err != nil {
			return err
		}

		outFile, err := os.Create(destPath)
		if err != nil {
			rc.Close()
			return err
		}

		_, err = io.Copy(outFile, rc)
		outFile.Close()
		rc.Close()

		if err != nil {
			return err
		}
	}

	return nil
}

// DataDir returns the cache directory shapefiles are extracted into.
func (m *Manager) DataDir() string {
	return m.cacheDir
}

// EnsureAirportData downloads the OurAirports CSV if not already cached
func (m *Manager) EnsureAirportData() error {
	csvPath := m.AirportCSVPath()

	if _, err := os.Stat(csvPath); err == nil {
		return nil
	}

	fmt.Println("Downloading airport database from OurAirports...")

	url := "https://davidmegginson.github.io/ourairports-data/airports.csv"

	client := &http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; radarmap/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download airports: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status: %s", resp.Status)
	}

	outFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to save airports CSV: %w", err)
	}

	fmt.Println("Downloaded airport database successfully")
	return nil
}

// AirportCSVPath returns the path to the airports CSV file
func (m *Manager) AirportCSVPath() string {
	return filepath.Join(m.cacheDir, "airports.csv")
}
