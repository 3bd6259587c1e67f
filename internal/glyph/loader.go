package glyph

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlCatalogFile is the top-level YAML structure of a catalog file.
type yamlCatalogFile struct {
	Catalog yamlCatalog `yaml:"catalog"`
}

type yamlCatalog struct {
	Monsters []string     `yaml:"monsters"`
	Objects  []yamlObject `yaml:"objects"`
	Warnings []string     `yaml:"warnings"`
}

type yamlObject struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Class       string `yaml:"class"`
}

// LoadCatalogFromFile reads and validates a catalog YAML file.
//
// Precondition: path must point to a catalog YAML file.
// Postcondition: Returns a validated Catalog or a non-nil error.
func LoadCatalogFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %s: %w", path, err)
	}
	return LoadCatalogFromBytes(data)
}

// LoadCatalogFromBytes parses and validates a catalog from YAML bytes.
// Table order is significant: a monster's position is its monster index.
//
// Precondition: data must be YAML conforming to the catalog schema.
// Postcondition: Returns a validated Catalog or a non-nil error.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}

	cat, err := convertYAMLCatalog(file.Catalog)
	if err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return cat, nil
}

func convertYAMLCatalog(yc yamlCatalog) (*Catalog, error) {
	cat := &Catalog{
		Monsters: make([]Monster, 0, len(yc.Monsters)),
		Objects:  make([]Object, 0, len(yc.Objects)),
		Warnings: yc.Warnings,
	}
	for _, name := range yc.Monsters {
		cat.Monsters = append(cat.Monsters, Monster{Name: name})
	}
	for i, yo := range yc.Objects {
		class, err := ParseObjectClass(yo.Class)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, yo.Name, err)
		}
		cat.Objects = append(cat.Objects, Object{
			Name:        yo.Name,
			Description: yo.Description,
			Class:       class,
		})
	}
	if len(cat.Warnings) == 0 {
		cat.Warnings = append([]string(nil), DefaultWarnings...)
	}
	return cat, nil
}
