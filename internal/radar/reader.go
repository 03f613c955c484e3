package radar

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// ReadVolume loads a volume from a JSON archive, gzip-compressed when the
// path ends in .gz. The archive mirrors the Volume structure directly.
func ReadVolume(path string) (*Volume, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open volume: %w", err)
	}
	defer file.Close()

	var vol Volume
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read gzip header: %w", err)
		}
		defer zr.Close()
		err = json.NewDecoder(zr).Decode(&vol)
		if err != nil {
			return nil, fmt.Errorf("failed to decode volume: %w", err)
		}
	} else {
		if err := json.NewDecoder(file).Decode(&vol); err != nil {
			return nil, fmt.Errorf("failed to decode volume: %w", err)
		}
	}

	if len(vol.Sweeps) == 0 {
		return nil, fmt.Errorf("volume %s contains no sweeps", path)
	}
	for i, sweep := range vol.Sweeps {
		if err := sweep.Validate(); err != nil {
			return nil, fmt.Errorf("sweep %d: %w", i, err)
		}
	}
	return &vol, nil
}

// WriteVolume saves a volume as a gzip-compressed JSON archive.
func WriteVolume(vol *Volume, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create volume file: %w", err)
	}
	defer file.Close()

	zw := gzip.NewWriter(file)
	if err := json.NewEncoder(zw).Encode(vol); err != nil {
		zw.Close()
		return fmt.Errorf("failed to encode volume: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush volume file: %w", err)
	}
	return nil
}
