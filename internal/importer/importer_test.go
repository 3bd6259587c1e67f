package importer_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/glyphspeak/internal/glyph"
	"github.com/cory-johannsen/glyphspeak/internal/importer"
)

type stubSource struct {
	data *importer.CatalogData
	err  error
}

func (s stubSource) Load(string) (*importer.CatalogData, error) {
	return s.data, s.err
}

func smallCatalog() *importer.CatalogData {
	return &importer.CatalogData{Catalog: importer.CatalogSpec{
		Monsters: []string{"giant ant", "little dog"},
		Objects: []importer.ObjectSpec{
			{Name: "strange object", Class: "illegal"},
			{Name: "teleportation", Description: "VENZAR BORGAVVE", Class: "scroll"},
			{Description: "FOOBIE BLETCH", Class: "scroll"},
		},
	}}
}

func TestImporter_Run_WritesCatalog(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "catalog.yaml")

	stats, err := importer.New(stubSource{data: smallCatalog()}).Run("ignored", out)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Monsters)
	assert.Equal(t, 3, stats.Objects)
	assert.Equal(t, len(glyph.DefaultWarnings), stats.Warnings)

	cat, err := glyph.LoadCatalogFromFile(out)
	require.NoError(t, err)
	assert.Equal(t, "little dog", cat.MonsterName(1))
	assert.Equal(t, glyph.ClassScroll, cat.Objects[2].Class)
	assert.Equal(t, "FOOBIE BLETCH", cat.Objects[2].Description)
	assert.Equal(t, cat.Layout().MaxGlyph, stats.MaxGlyph)
}

func TestImporter_Run_SourceError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "catalog.yaml")
	_, err := importer.New(stubSource{err: errors.New("boom")}).Run("src", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestImporter_Run_InvalidCatalogNotWritten(t *testing.T) {
	data := smallCatalog()
	data.Catalog.Objects[0].Class = "gadget"
	out := filepath.Join(t.TempDir(), "catalog.yaml")

	_, err := importer.New(stubSource{data: data}).Run("src", out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

// Property: any non-empty table set round-trips through the written file in
// order.
func TestPropertyImporterPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	classes := []string{"weapon", "armor", "ring", "potion", "scroll", "gem"}
	i := 0
	rapid.Check(t, func(rt *rapid.T) {
		nMon := rapid.IntRange(1, 20).Draw(rt, "monsters")
		nObj := rapid.IntRange(1, 20).Draw(rt, "objects")
		data := &importer.CatalogData{}
		for m := 0; m < nMon; m++ {
			data.Catalog.Monsters = append(data.Catalog.Monsters, fmt.Sprintf("monster %d", m))
		}
		for o := 0; o < nObj; o++ {
			class := rapid.SampledFrom(classes).Draw(rt, "class")
			data.Catalog.Objects = append(data.Catalog.Objects, importer.ObjectSpec{
				Name:  fmt.Sprintf("object %d", o),
				Class: class,
			})
		}

		i++
		out := filepath.Join(dir, fmt.Sprintf("catalog-%d.yaml", i))
		stats, err := importer.New(stubSource{data: data}).Run("src", out)
		if err != nil {
			rt.Fatalf("run: %v", err)
		}
		cat, err := glyph.LoadCatalogFromFile(out)
		if err != nil {
			rt.Fatalf("reload: %v", err)
		}
		if stats.Monsters != nMon || stats.Objects != nObj {
			rt.Fatalf("stats %+v, want %d/%d", stats, nMon, nObj)
		}
		for o := range cat.Objects {
			if cat.Objects[o].Name != data.Catalog.Objects[o].Name {
				rt.Fatalf("object %d reordered", o)
			}
		}
	})
}
