package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
)

// ToDOT renders the gene/phene/taxon graph in Graphviz dot notation.
// Nodes are emitted in sorted id order so output is byte-stable across
// runs.
func ToDOT(g *domain.Graph, title string) string {
	var b strings.Builder
	b.WriteString("digraph omia {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, escapeDOT(title)))
		b.WriteString("\n")
	}

	ids := make([]string, 0, len(g.Nodes))
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		n := g.Nodes[id]
		label := n.Label
		if label == "" {
			label = n.ID
		}
		var style string
		switch n.Kind {
		case domain.NodeGene:
			style = `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
		case domain.NodePhene:
			style = `shape=ellipse,style="filled",fillcolor="#fff3cd"`
		case domain.NodeTaxon:
			style = `shape=cds,style="filled",fillcolor="#e6f4ea"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", %s];`+"\n", escapeDOT(n.ID), escapeDOT(label), style))
	}

	for _, e := range g.Edges {
		lbl := string(e.Kind)
		if e.Kind == domain.EdgeCauses {
			if x, ok := e.Attrs["xref"].(string); ok && x != "" {
				lbl = fmt.Sprintf("causes [%s]", x)
			}
		}
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s" [label="%s"];`+"\n",
			escapeDOT(e.From), escapeDOT(e.To), escapeDOT(lbl)))
	}

	b.WriteString("}\n")
	return b.String()
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
