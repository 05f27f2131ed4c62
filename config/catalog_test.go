package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(`
pieces:
  - shape:
      - [1, 1, 1]
  - name: tee
    shape:
      - [1, 1, 1]
      - [0, 1, 0]
`), 10, 10)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "piece-0", c.At(0).Name())
	assert.Equal(t, 4, c.At(1).Size())
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "pieces: [", "failed to parse catalog YAML"},
		{"no pieces", "pieces: []", "no pieces"},
		{"ragged", "pieces:\n  - name: r\n    shape: [[1, 1], [1]]", "width"},
		{"not binary", "pieces:\n  - name: b\n    shape: [[2]]", "want 0 or 1"},
		{"blank", "pieces:\n  - name: z\n    shape: [[0, 0]]", "no occupied cells"},
		{"too wide", "pieces:\n  - name: w\n    shape: [[1, 1, 1, 1]]", "does not fit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml), 3, 3)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"), 10, 10)
	assert.ErrorContains(t, err, "failed to read catalog file")
}
