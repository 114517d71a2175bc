package curie

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Map resolves identifier prefixes to full IRIs. It is configuration,
// not mapping logic: the record mapper never touches it, only the
// serializers do.
type Map map[string]string

// Default returns the prefix table for the namespaces this dataset
// emits, plus the vocabulary terms the N-Triples serializer needs.
func Default() Map {
	return Map{
		"OMIA":      "https://omia.org/OMIA",
		"NCBIGene":  "http://www.ncbi.nlm.nih.gov/gene/",
		"NCBITaxon": "http://purl.obolibrary.org/obo/NCBITaxon_",
		"RO":        "http://purl.obolibrary.org/obo/RO_",
		"OBAN":      "http://purl.org/oban/",
		"OIO":       "http://www.geneontology.org/formats/oboInOwl#",
		"rdf":       "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
		"rdfs":      "http://www.w3.org/2000/01/rdf-schema#",
	}
}

// Load reads a YAML file of prefix -> IRI pairs and overlays it on the
// defaults, so deployments can repoint namespaces without a rebuild.
func Load(path string) (Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read curie map: %w", err)
	}
	overrides := Map{}
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("parse curie map: %w", err)
	}
	m := Default()
	for prefix, iri := range overrides {
		m[prefix] = iri
	}
	return m, nil
}

// Expand turns a curie like "NCBIGene:396810" into a full IRI. The
// local part is everything after the first colon, so association ids
// with embedded delimiters expand intact.
func (m Map) Expand(curie string) (string, error) {
	prefix, local, ok := strings.Cut(curie, ":")
	if !ok {
		return "", fmt.Errorf("not a curie: %q", curie)
	}
	base, ok := m[prefix]
	if !ok {
		return "", fmt.Errorf("unknown curie prefix %q in %q", prefix, curie)
	}
	return base + local, nil
}
