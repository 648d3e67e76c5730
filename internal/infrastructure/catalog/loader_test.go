package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
services:
  - id: svc-1
    title: Sunset Yoga
    description: Evening flow on the beach
    category: wellness
    location: Beach
    price: 25
    rating: 4.8
    reviews: 132
    duration: 60 min
    image: yoga.jpg
    features:
      - mat included
      - all levels
  - id: svc-2
    title: City Tour
    category: tours
    price: 40
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	services, err := Load(path)
	require.NoError(t, err)
	require.Len(t, services, 2)

	assert.Equal(t, "svc-1", services[0].ID)
	assert.Equal(t, "Sunset Yoga", services[0].Title)
	assert.Equal(t, "wellness", services[0].Category)
	assert.Equal(t, 25.0, services[0].Price)
	assert.Equal(t, 132, services[0].Reviews)
	assert.Equal(t, []string{"mat included", "all levels"}, services[0].Features)

	// Optional fields may be absent.
	assert.Empty(t, services[1].Features)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("services: {not a list"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
