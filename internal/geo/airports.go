package geo

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadAirports loads point features from an OurAirports CSV file. Only
// medium and large airports are kept for reasonable marker density; the IATA
// code is preferred as the label, falling back to the ICAO ident.
func LoadAirports(csvPath string) ([]*Feature, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open airports CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	col := make(map[string]int)
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{"type", "name", "latitude_deg", "longitude_deg", "iata_code", "ident"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}

	var airports []*Feature
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		kind := record[col["type"]]
		if kind != "medium_airport" && kind != "large_airport" {
			continue
		}

		lat, err := strconv.ParseFloat(record[col["latitude_deg"]], 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(record[col["longitude_deg"]], 64)
		if err != nil {
			continue
		}

		label := record[col["iata_code"]]
		if label == "" {
			label = record[col["ident"]]
		}
		if label == "" {
			label = record[col["name"]]
		}

		airports = append(airports, NewPointFeature(FeatureAirport, LatLon{Lat: lat, Lon: lon}, label))
	}
	return airports, nil
}

// AirportsInBounds filters a loaded airport list to a geographic window.
func AirportsInBounds(airports []*Feature, bounds *Bounds) []*Feature {
	var filtered []*Feature
	for _, airport := range airports {
		if airport.Point != nil && bounds.Contains(airport.Point.Lat, airport.Point.Lon) {
			filtered = append(filtered, airport)
		}
	}
	return filtered
}
