package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/curie"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

// OBAN reification vocabulary. Each association record becomes an
// explicit association node so its provenance can be tracked, since
// the gene->phene link itself has no natural identifier upstream.
const (
	obanAssociation  = "OBAN:association"
	obanHasSubject   = "OBAN:association_has_subject"
	obanHasPredicate = "OBAN:association_has_predicate"
	obanHasObject    = "OBAN:association_has_object"
	rdfType          = "rdf:type"
	rdfsLabel        = "rdfs:label"
	oioHasDbXref     = "OIO:hasDbXref"
)

// ToNTriples serializes the association records as N-Triples, one
// OBAN-style reified association per record plus the direct
// gene->phene and gene->taxon edges. Prefix expansion comes from the
// supplied curie map; an unknown prefix is a hard error because it
// would silently produce unresolvable IRIs.
func ToNTriples(assocs []*domain.Association, cm curie.Map) (string, error) {
	var b strings.Builder

	iri := func(c string) (string, error) {
		full, err := cm.Expand(c)
		if err != nil {
			return "", err
		}
		return "<" + full + ">", nil
	}

	for _, a := range assocs {
		assocIRI, err := iri(a.ID)
		if err != nil {
			return "", err
		}
		objIRI, err := iri(a.Object)
		if err != nil {
			return "", err
		}
		taxIRI, err := iri(a.Taxon)
		if err != nil {
			return "", err
		}
		predIRI, err := iri(a.Predicate)
		if err != nil {
			return "", err
		}
		typeIRI, err := iri(rdfType)
		if err != nil {
			return "", err
		}
		assocClassIRI, err := iri(obanAssociation)
		if err != nil {
			return "", err
		}

		writeTriple(&b, assocIRI, typeIRI, assocClassIRI)
		hasPred, _ := iri(obanHasPredicate)
		writeTriple(&b, assocIRI, hasPred, predIRI)
		hasObj, _ := iri(obanHasObject)
		writeTriple(&b, assocIRI, hasObj, objIRI)

		if a.ObjectLabel != "" {
			labelIRI, _ := iri(rdfsLabel)
			writeLiteral(&b, objIRI, labelIRI, a.ObjectLabel)
		}

		if a.HasSubject() {
			subjIRI, err := iri(a.Subject)
			if err != nil {
				return "", err
			}
			hasSubj, _ := iri(obanHasSubject)
			writeTriple(&b, assocIRI, hasSubj, subjIRI)
			// direct edge alongside the reified form
			writeTriple(&b, subjIRI, predIRI, objIRI)

			inTaxonIRI, _ := iri(domain.PredicateInTaxon)
			writeTriple(&b, subjIRI, inTaxonIRI, taxIRI)

			if a.SubjectLabel != "" {
				labelIRI, _ := iri(rdfsLabel)
				writeLiteral(&b, subjIRI, labelIRI, a.SubjectLabel)
			}
			if a.Xref != "" {
				xrefIRI, _ := iri(oioHasDbXref)
				writeLiteral(&b, assocIRI, xrefIRI, a.Xref)
			}
		}
	}

	return b.String(), nil
}

func WriteNTriples(path string, assocs []*domain.Association, cm curie.Map) error {
	nt, err := ToNTriples(assocs, cm)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(nt), 0644)
}

func writeTriple(b *strings.Builder, s, p, o string) {
	fmt.Fprintf(b, "%s %s %s .\n", s, p, o)
}

func writeLiteral(b *strings.Builder, s, p, lit string) {
	fmt.Fprintf(b, "%s %s \"%s\" .\n", s, p, escapeLiteral(lit))
}

func escapeLiteral(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
	return r.Replace(s)
}
