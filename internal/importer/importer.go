// Package importer converts game data from another format into a catalog
// YAML file the describer can load.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
)

// Importer orchestrates catalog import from a Source to an output file.
type Importer struct {
	source Source
}

// New constructs an Importer backed by the given Source.
//
// Precondition: source must be non-nil.
func New(source Source) *Importer {
	return &Importer{source: source}
}

// Stats summarizes a written catalog.
type Stats struct {
	Monsters int
	Objects  int
	Warnings int
	MaxGlyph glyph.Glyph
}

// Run loads the tables from sourceDir, validates them and writes them as
// catalog YAML to outputPath.
//
// Precondition: outputPath's directory must exist or be creatable.
// Postcondition: a loadable catalog is written to outputPath, or an error is
// returned and nothing is written.
func (imp *Importer) Run(sourceDir, outputPath string) (Stats, error) {
	overall := time.Now()

	data, err := imp.source.Load(sourceDir)
	if err != nil {
		return Stats{}, fmt.Errorf("loading source: %w", err)
	}
	if len(data.Catalog.Warnings) == 0 {
		data.Catalog.Warnings = append([]string(nil), glyph.DefaultWarnings...)
	}

	out, err := yaml.Marshal(data)
	if err != nil {
		return Stats{}, fmt.Errorf("serialising catalog: %w", err)
	}

	// Validate output is loadable before writing.
	cat, err := glyph.LoadCatalogFromBytes(out)
	if err != nil {
		return Stats{}, fmt.Errorf("catalog failed validation: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return Stats{}, fmt.Errorf("creating output directory for %s: %w", outputPath, err)
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return Stats{}, fmt.Errorf("writing catalog to %s: %w", outputPath, err)
	}

	stats := Stats{
		Monsters: len(cat.Monsters),
		Objects:  len(cat.Objects),
		Warnings: len(cat.Warnings),
		MaxGlyph: cat.Layout().MaxGlyph,
	}
	fmt.Printf("wrote   %s  (%s, %d monsters, %d objects, max glyph %d)  in %s\n",
		outputPath, humanize.Bytes(uint64(len(out))), stats.Monsters, stats.Objects, stats.MaxGlyph,
		time.Since(overall).Round(time.Millisecond))
	return stats, nil
}
