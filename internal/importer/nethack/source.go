// Package nethack imports the monster and object tables from a NetHack
// source tree.
package nethack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cory-johannsen/glyphspeak/internal/importer"
)

// DefaultDefines are the compile options of a stock build that change the
// object table.
var DefaultDefines = []string{"MAIL"}

// Source reads monst.c and objects.c.
type Source struct {
	defines map[string]bool
}

// NewSource creates a Source that resolves conditional blocks as if the given
// symbols were defined.
func NewSource(defines []string) *Source {
	set := make(map[string]bool, len(defines))
	for _, d := range defines {
		set[d] = true
	}
	return &Source{defines: set}
}

// Load reads the tables from sourceDir, which may be the source tree root or
// its src directory.
//
// Precondition: sourceDir must contain monst.c and objects.c, directly or under src/.
// Postcondition: Returns catalog data with monsters and objects in table order.
func (s *Source) Load(sourceDir string) (*importer.CatalogData, error) {
	dir, err := findSourceDir(sourceDir)
	if err != nil {
		return nil, err
	}

	monst, err := os.ReadFile(filepath.Join(dir, "monst.c"))
	if err != nil {
		return nil, fmt.Errorf("reading monster table: %w", err)
	}
	monsters, err := ParseMonsters(string(monst), s.defines)
	if err != nil {
		return nil, fmt.Errorf("parsing monst.c: %w", err)
	}

	objSrc, err := os.ReadFile(filepath.Join(dir, "objects.c"))
	if err != nil {
		return nil, fmt.Errorf("reading object table: %w", err)
	}
	objects, err := ParseObjects(string(objSrc), s.defines)
	if err != nil {
		return nil, fmt.Errorf("parsing objects.c: %w", err)
	}

	return &importer.CatalogData{Catalog: importer.CatalogSpec{
		Monsters: monsters,
		Objects:  objects,
	}}, nil
}

func findSourceDir(root string) (string, error) {
	for _, dir := range []string{root, filepath.Join(root, "src")} {
		if _, err := os.Stat(filepath.Join(dir, "monst.c")); err == nil {
			return dir, nil
		}
	}
	return "", fmt.Errorf("monst.c not found in %s or %s", root, filepath.Join(root, "src"))
}
