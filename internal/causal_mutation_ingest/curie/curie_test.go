package curie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	m := Default()

	iri, err := m.Expand("NCBIGene:396810")
	require.NoError(t, err)
	assert.Equal(t, "http://www.ncbi.nlm.nih.gov/gene/396810", iri)

	iri, err = m.Expand("NCBITaxon:9823")
	require.NoError(t, err)
	assert.Equal(t, "http://purl.obolibrary.org/obo/NCBITaxon_9823", iri)
}

func TestExpand_AssociationIDKeepsDelimiters(t *testing.T) {
	m := Default()

	iri, err := m.Expand("OMIA:9823;396810;000209")
	require.NoError(t, err)
	assert.Equal(t, "https://omia.org/OMIA9823;396810;000209", iri)
}

func TestExpand_Errors(t *testing.T) {
	m := Default()

	_, err := m.Expand("no-colon-here")
	assert.Error(t, err)

	_, err = m.Expand("WIBBLE:123")
	assert.Error(t, err)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curies.yaml")
	require.NoError(t, os.WriteFile(path, []byte("OMIA: http://example.org/omia/\nFOO: http://example.org/foo/\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)

	iri, err := m.Expand("OMIA:000209")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/omia/000209", iri)

	iri, err = m.Expand("FOO:1")
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/foo/1", iri)

	// untouched defaults survive the overlay
	_, err = m.Expand("NCBIGene:1")
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does/not/exist.yaml")
	assert.Error(t, err)
}
