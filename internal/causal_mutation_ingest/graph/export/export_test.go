package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/curie"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/graph"
)

func sampleAssociations() []*domain.Association {
	return []*domain.Association{
		{
			ID:           "OMIA:9823;396810;000209",
			Subject:      "NCBIGene:396810",
			SubjectLabel: "KIT",
			Predicate:    domain.PredicateCausalMutation,
			Object:       "OMIA:000209",
			ObjectLabel:  "Some disease",
			Taxon:        "NCBITaxon:9823",
			Xref:         "OMIA:000209/396810",
		},
		{
			ID:          "OMIA:9615;;000201",
			Predicate:   domain.PredicateCausalMutation,
			Object:      "OMIA:000201",
			ObjectLabel: "Coat color",
			Taxon:       "NCBITaxon:9615",
		},
	}
}

func TestToDOT(t *testing.T) {
	g := graph.FromAssociations(sampleAssociations())
	dot := ToDOT(g, "omia causal mutations")

	assert.True(t, strings.HasPrefix(dot, "digraph omia {"))
	assert.Contains(t, dot, `"NCBIGene:396810" [label="KIT"`)
	assert.Contains(t, dot, `"OMIA:000209" [label="Some disease"`)
	assert.Contains(t, dot, `"NCBIGene:396810" -> "OMIA:000209"`)
	assert.Contains(t, dot, `"NCBIGene:396810" -> "NCBITaxon:9823"`)
	assert.Contains(t, dot, `label="omia causal mutations"`)
}

func TestToDOT_Stable(t *testing.T) {
	g := graph.FromAssociations(sampleAssociations())
	assert.Equal(t, ToDOT(g, "t"), ToDOT(g, "t"), "dot output must be byte-stable")
}

func TestToNTriples(t *testing.T) {
	nt, err := ToNTriples(sampleAssociations(), curie.Default())
	require.NoError(t, err)

	assert.Contains(t, nt,
		"<https://omia.org/OMIA9823;396810;000209> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://purl.org/oban/association> .")
	assert.Contains(t, nt,
		"<https://omia.org/OMIA9823;396810;000209> <http://purl.org/oban/association_has_subject> <http://www.ncbi.nlm.nih.gov/gene/396810> .")
	assert.Contains(t, nt,
		"<https://omia.org/OMIA9823;396810;000209> <http://purl.org/oban/association_has_object> <https://omia.org/OMIA000209> .")
	assert.Contains(t, nt,
		"<http://www.ncbi.nlm.nih.gov/gene/396810> <http://purl.obolibrary.org/obo/RO_0004013> <https://omia.org/OMIA000209> .")
	assert.Contains(t, nt,
		"<http://www.ncbi.nlm.nih.gov/gene/396810> <http://purl.obolibrary.org/obo/RO_0002162> <http://purl.obolibrary.org/obo/NCBITaxon_9823> .")
	assert.Contains(t, nt,
		`<https://omia.org/OMIA000209> <http://www.w3.org/2000/01/rdf-schema#label> "Some disease" .`)
	assert.Contains(t, nt,
		`<https://omia.org/OMIA9823;396810;000209> <http://www.geneontology.org/formats/oboInOwl#hasDbXref> "OMIA:000209/396810" .`)
}

func TestToNTriples_SubjectlessOmitsSubjectTriples(t *testing.T) {
	nt, err := ToNTriples(sampleAssociations(), curie.Default())
	require.NoError(t, err)

	assert.Contains(t, nt,
		"<https://omia.org/OMIA9615;;000201> <http://purl.org/oban/association_has_object> <https://omia.org/OMIA000201> .")
	assert.NotContains(t, nt,
		"<https://omia.org/OMIA9615;;000201> <http://purl.org/oban/association_has_subject>")
}

func TestToNTriples_EscapesLiterals(t *testing.T) {
	assocs := []*domain.Association{{
		ID:          "OMIA:1;;2",
		Predicate:   domain.PredicateCausalMutation,
		Object:      "OMIA:2",
		ObjectLabel: `a "quoted" label` + "\nsecond line",
		Taxon:       "NCBITaxon:1",
	}}

	nt, err := ToNTriples(assocs, curie.Default())
	require.NoError(t, err)
	assert.Contains(t, nt, `"a \"quoted\" label\nsecond line"`)
}

func TestToNTriples_UnknownPrefixFails(t *testing.T) {
	assocs := []*domain.Association{{
		ID:        "WIBBLE:1",
		Predicate: domain.PredicateCausalMutation,
		Object:    "OMIA:2",
		Taxon:     "NCBITaxon:1",
	}}

	_, err := ToNTriples(assocs, curie.Default())
	require.Error(t, err)
}
