package importer

// CatalogData is the common intermediate format produced by all Source
// implementations. Its YAML tags match the catalog file schema exactly, so it
// can be marshalled directly and validated by glyph.LoadCatalogFromBytes.
type CatalogData struct {
	Catalog CatalogSpec `yaml:"catalog"`
}

// CatalogSpec holds the three game tables in game order.
type CatalogSpec struct {
	Monsters []string     `yaml:"monsters"`
	Objects  []ObjectSpec `yaml:"objects"`
	Warnings []string     `yaml:"warnings,omitempty"`
}

// ObjectSpec holds one object table entry.
type ObjectSpec struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Class       string `yaml:"class"`
}

// Source loads game tables from a format-specific source directory.
//
// Precondition: sourceDir must exist and contain the expected layout for the format.
// Postcondition: returns CatalogData with at least one monster and one
// object, or a non-nil error.
type Source interface {
	Load(sourceDir string) (*CatalogData, error)
}
