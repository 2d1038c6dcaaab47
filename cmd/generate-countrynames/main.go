// Command generate-countrynames regenerates the country name lookup table
// from the GeoJSON country boundaries.
//
// Usage, from the frontend project root:
//
//	go run ./cmd/generate-countrynames
//
// This reads public/geojson/countries.geojson and writes
// public/country_names_by_id.json.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/andreiashu/countrynames"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.TimeOnly,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))

	slog.Info("generating country names", "input", countrynames.DefaultInputPath)

	rep, err := countrynames.Generate()
	if err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}

	if rep.Skipped > 0 {
		slog.Warn("skipped features without an integer ISO_N3", "count", rep.Skipped)
	}
	slog.Info("country names written",
		"output", countrynames.DefaultOutputPath,
		"features", rep.Features,
		"entries", rep.Entries,
		"overwritten", rep.Overwritten,
	)
}
