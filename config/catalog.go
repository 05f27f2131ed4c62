package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"blockpuzzle/game"
)

// CatalogFile is the YAML layout of a piece catalog.
type CatalogFile struct {
	Pieces []PieceConfig `yaml:"pieces"`
}

// PieceConfig is one template: rows of 0/1 cells.
type PieceConfig struct {
	Name  string  `yaml:"name"`
	Shape [][]int `yaml:"shape"`
}

// LoadCatalog reads a catalog from a YAML file and checks every piece fits a
// rows×cols grid.
func LoadCatalog(path string, rows, cols int) (*game.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data, rows, cols)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte, rows, cols int) (*game.Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	if len(file.Pieces) == 0 {
		return nil, errors.New("invalid catalog: no pieces")
	}

	pieces := make([]game.Piece, 0, len(file.Pieces))
	for i, pc := range file.Pieces {
		name := pc.Name
		if name == "" {
			name = fmt.Sprintf("piece-%d", i)
		}
		p, err := game.NewPiece(name, pc.Shape)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog piece %q: %w", name, err)
		}
		if p.Size() == 0 {
			return nil, fmt.Errorf("invalid catalog piece %q: no occupied cells", name)
		}
		if p.Height() > rows || p.Width() > cols {
			return nil, fmt.Errorf("invalid catalog piece %q: %dx%d does not fit a %dx%d grid",
				name, p.Height(), p.Width(), rows, cols)
		}
		pieces = append(pieces, p)
	}
	return game.NewCatalog(pieces...)
}
