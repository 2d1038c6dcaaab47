// Package countrynames builds the numeric country code to name table used by
// the globe frontend from a GeoJSON country-boundaries file.
//
// The table is produced at build time:
//
//	rep, err := countrynames.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d countries written\n", rep.Entries)
//
// Only feature properties are read. Geometry is ignored.
package countrynames

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default locations, relative to the frontend project root.
const (
	DefaultInputPath  = "public/geojson/countries.geojson"
	DefaultOutputPath = "public/country_names_by_id.json"
)

// Config holds the input and output locations for Generate.
type Config struct {
	InputPath  string // GeoJSON feature collection (default: DefaultInputPath)
	OutputPath string // Generated lookup table (default: DefaultOutputPath)
}

// Option is a functional option for configuring Generate.
type Option func(*Config)

// WithInputPath sets the GeoJSON file to read.
func WithInputPath(path string) Option {
	return func(c *Config) {
		c.InputPath = path
	}
}

// WithOutputPath sets where the lookup table is written.
func WithOutputPath(path string) Option {
	return func(c *Config) {
		c.OutputPath = path
	}
}

func defaultConfig() *Config {
	return &Config{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Generate reads the feature collection, builds the lookup table and writes it.
// Nothing is written if any step fails, so a previous output file survives.
func Generate(opts ...Option) (Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := LoadFeatureCollection(cfg.InputPath)
	if err != nil {
		return Report{}, err
	}
	lookup, rep, err := Build(doc)
	if err != nil {
		return rep, fmt.Errorf("building lookup from %s: %w", cfg.InputPath, err)
	}
	if err := WriteLookup(cfg.OutputPath, lookup); err != nil {
		return rep, err
	}
	return rep, nil
}

// LoadFeatureCollection reads the whole GeoJSON document into memory.
func LoadFeatureCollection(path string) ([]byte, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feature collection: %w", err)
	}
	return doc, nil
}

// WriteLookup encodes the table and replaces the file at path.
//
// The data goes to a temporary file in the same directory which is renamed
// over path only after a successful write, so readers never observe a
// truncated table.
func WriteLookup(path string, l Lookup) error {
	data, err := l.MarshalIndent()
	if err != nil {
		return fmt.Errorf("encoding lookup: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath) // best-effort cleanup of partial file
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	// CreateTemp uses 0600.
	if err := tmp.Chmod(0644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	success = true
	return nil
}

// ReadLookup loads a table previously written by WriteLookup.
func ReadLookup(path string) (Lookup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lookup: %w", err)
	}
	return UnmarshalLookup(data)
}
