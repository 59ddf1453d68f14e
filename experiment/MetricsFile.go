package experiment

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveMetrics gob-encodes the metrics of a run to disk so separate
// runs can be compared later.
func SaveMetrics(filename string, metrics []Metrics) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveMetrics: could not open save file: %v", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(metrics); err != nil {
		return fmt.Errorf("saveMetrics: could not encode metrics: %v", err)
	}
	return nil
}

// LoadMetrics reads back metrics written by SaveMetrics.
func LoadMetrics(filename string) ([]Metrics, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadMetrics: could not open file: %v", err)
	}
	defer file.Close()

	var metrics []Metrics
	if err := gob.NewDecoder(file).Decode(&metrics); err != nil {
		return nil, fmt.Errorf("loadMetrics: could not decode metrics: %v",
			err)
	}
	return metrics, nil
}
