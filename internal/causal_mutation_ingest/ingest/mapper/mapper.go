package mapper

import (
	"fmt"
	"strings"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

// Column order of the causal-mutation table.
const (
	colGeneSymbol = iota
	colNCBIGeneID
	colOMIAID
	colNCBITaxID
	colOMIAURL
	colPheneName
	fieldCount
)

// Mapper turns one raw table row into one association record. It holds
// no state between rows; mapping is pure and idempotent, so re-running
// the same input yields identical association ids.
type Mapper struct {
	// Predicate is the controlled-vocabulary term attached to every
	// association. Opaque to the mapper.
	Predicate string
}

func New() *Mapper {
	return &Mapper{Predicate: domain.PredicateCausalMutation}
}

// MapFields validates and maps one raw record. A missing gene id (the
// literal "None") is not an error: the record is emitted without
// subject and xref. Structural violations return *MalformedRowError
// and no record; callers are expected to keep going.
func (m *Mapper) MapFields(line int, fields []string) (*domain.Association, error) {
	row, err := parseRow(line, fields)
	if err != nil {
		return nil, err
	}
	return m.MapRow(row)
}

// MapRow maps an already-split row.
func (m *Mapper) MapRow(row *domain.Row) (*domain.Association, error) {
	omiaID := strings.TrimSpace(row.OMIAID)
	taxID := strings.TrimSpace(row.NCBITaxID)
	if omiaID == "" {
		return nil, &domain.MalformedRowError{Line: row.Line, Field: "OMIA_id", Reason: "required identifier is empty"}
	}
	if taxID == "" {
		return nil, &domain.MalformedRowError{Line: row.Line, Field: "ncbi_tax_id", Reason: "required identifier is empty"}
	}

	geneID, present, err := normalizeGeneID(row)
	if err != nil {
		return nil, err
	}

	a := &domain.Association{
		ID:          associationID(taxID, geneID, omiaID),
		Predicate:   m.Predicate,
		Object:      domain.NamespacePhene + ":" + omiaID,
		ObjectLabel: row.PheneName,
		Taxon:       domain.NamespaceTaxon + ":" + taxID,
	}
	if present {
		a.Subject = domain.NamespaceGene + ":" + geneID
		a.Xref = domain.NamespacePhene + ":" + omiaID + "/" + geneID
		a.SubjectLabel = strings.TrimSpace(row.GeneSymbol)
	}
	return a, nil
}

// associationID builds the stable blank-node identifier for the
// association from the ordered (taxon, gene, OMIA) tuple. An absent
// gene id is encoded as an empty middle segment; the segments are
// numeric tokens that can never contain the delimiter, so positions
// stay unambiguous and distinct tuples never collide.
func associationID(taxID, geneID, omiaID string) string {
	return fmt.Sprintf("%s:%s;%s;%s", domain.NamespacePhene, taxID, geneID, omiaID)
}

// normalizeGeneID applies the absence rule: the exact literal "None"
// means no gene id. Anything else must be a non-empty numeric token.
func normalizeGeneID(row *domain.Row) (string, bool, error) {
	raw := strings.TrimSpace(row.NCBIGeneID)
	if raw == domain.AbsentGeneToken {
		return "", false, nil
	}
	if raw == "" {
		return "", false, &domain.MalformedRowError{
			Line: row.Line, Field: "ncbi_gene_id",
			Reason: fmt.Sprintf("empty gene id; expected a numeric id or the literal %q", domain.AbsentGeneToken),
		}
	}
	if !isDigits(raw) {
		return "", false, &domain.MalformedRowError{
			Line: row.Line, Field: "ncbi_gene_id",
			Reason: fmt.Sprintf("gene id %q is not numeric", raw),
		}
	}
	return raw, true, nil
}

func parseRow(line int, fields []string) (*domain.Row, error) {
	if len(fields) != fieldCount {
		return nil, &domain.MalformedRowError{
			Line: line, Field: "row",
			Reason: fmt.Sprintf("expected %d tab-separated fields, got %d", fieldCount, len(fields)),
		}
	}
	return &domain.Row{
		Line:       line,
		GeneSymbol: fields[colGeneSymbol],
		NCBIGeneID: fields[colNCBIGeneID],
		OMIAID:     fields[colOMIAID],
		NCBITaxID:  fields[colNCBITaxID],
		OMIAURL:    fields[colOMIAURL],
		PheneName:  fields[colPheneName],
	}, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
