package routes

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed routes.yaml
var rawRoutesYAML []byte

// routesFile is the on-disk / embedded shape of a route dataset.
type routesFile struct {
	Routes []Route `yaml:"routes"`
}

// Embedded default table, parsed exactly once.
var (
	defaultOnce  sync.Once //nolint:gochecknoglobals // Guards one-time parse of embedded data
	defaultTable *Table    //nolint:gochecknoglobals // Immutable after defaultOnce
	defaultErr   error     //nolint:gochecknoglobals // Immutable after defaultOnce
)

// Default returns the table built from the embedded route dataset.
// The dataset is parsed and validated on first use; subsequent calls return
// the same table.
func Default() (*Table, error) {
	defaultOnce.Do(func() {
		defaultTable, defaultErr = Parse(rawRoutesYAML)
	})
	return defaultTable, defaultErr
}

// Parse builds a Table from YAML route data. The expected shape is a
// top-level "routes" list of {origin, destination, distance_km} records.
func Parse(data []byte) (*Table, error) {
	var f routesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse route data: %w", err)
	}
	return NewTable(f.Routes)
}
