package graph

import (
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

func ensureNode(g *domain.Graph, kind domain.NodeKind, id, label string) string {
	if n, ok := g.Nodes[id]; ok {
		// first non-empty label wins; later rows may repeat the node
		if n.Label == "" && label != "" {
			n.Label = label
		}
		return id
	}
	g.AddNode(&domain.Node{ID: id, Label: label, Kind: kind})
	return id
}

// FromAssociations materializes the association stream into a graph.
// Node identity is the curie, so a gene appearing in many rows for the
// same taxon collapses to one node. Subject-less associations still
// contribute their phene and taxon nodes. Duplicate rows collapse to a
// single CAUSES edge because the association id is deterministic.
func FromAssociations(assocs []*domain.Association) *domain.Graph {
	g := domain.NewGraph()

	seenCauses := map[string]bool{}
	seenInTaxon := map[string]bool{}

	for _, a := range assocs {
		phene := ensureNode(g, domain.NodePhene, a.Object, a.ObjectLabel)
		taxon := ensureNode(g, domain.NodeTaxon, a.Taxon, "")

		if !a.HasSubject() {
			continue
		}
		gene := ensureNode(g, domain.NodeGene, a.Subject, a.SubjectLabel)

		if !seenCauses[a.ID] {
			seenCauses[a.ID] = true
			g.AddEdge(&domain.Edge{
				From: gene,
				To:   phene,
				Kind: domain.EdgeCauses,
				Attrs: domain.Attrs{
					"association_id": a.ID,
					"predicate":      a.Predicate,
					"xref":           a.Xref,
				},
			})
		}

		inTaxKey := gene + "|" + taxon
		if !seenInTaxon[inTaxKey] {
			seenInTaxon[inTaxKey] = true
			g.AddEdge(&domain.Edge{
				From: gene,
				To:   taxon,
				Kind: domain.EdgeInTaxon,
				Attrs: domain.Attrs{
					"predicate": domain.PredicateInTaxon,
				},
			})
		}
	}

	return g
}
