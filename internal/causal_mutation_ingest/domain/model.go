package domain

import "time"

type Attrs map[string]any

// Row is one data line of the causal-mutation table, header excluded.
// Line is the 1-based line number in the source file, kept for error
// reporting.
type Row struct {
	Line       int
	GeneSymbol string
	NCBIGeneID string
	OMIAID     string
	NCBITaxID  string
	OMIAURL    string
	PheneName  string
}

// Association is one gene-to-phene causal link mapped from a single row.
// Subject and Xref are empty when the source row carries no gene id;
// such records are still valid and must be kept.
type Association struct {
	ID          string `json:"association_id"`
	Subject     string `json:"subject,omitempty"`
	Predicate   string `json:"predicate"`
	Object      string `json:"object"`
	ObjectLabel string `json:"object_label,omitempty"`
	Taxon       string `json:"taxon"`
	Xref        string `json:"xref,omitempty"`
	// SubjectLabel carries the gene symbol for display, like ObjectLabel
	// carries the phene name.
	SubjectLabel string `json:"subject_label,omitempty"`
}

// HasSubject reports whether the source row carried a gene id.
func (a *Association) HasSubject() bool {
	return a.Subject != ""
}

type Node struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Kind  NodeKind `json:"kind"`
	Attrs Attrs    `json:"attrs,omitempty"`
}

type Edge struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Kind  EdgeKind `json:"kind"`
	Attrs Attrs    `json:"attrs,omitempty"`
}

type Graph struct {
	Nodes map[string]*Node `json:"nodes"`
	Edges []*Edge          `json:"edges"`
	// adjacency for traversals
	Out map[string][]*Edge `json:"-"`
	In  map[string][]*Edge `json:"-"`
}

func NewGraph() *Graph {
	return &Graph{
		Nodes: map[string]*Node{},
		Edges: []*Edge{},
		Out:   map[string][]*Edge{},
		In:    map[string][]*Edge{},
	}
}

func (g *Graph) AddNode(n *Node) {
	if _, ok := g.Nodes[n.ID]; !ok {
		g.Nodes[n.ID] = n
	}
}

func (g *Graph) AddEdge(e *Edge) {
	g.Edges = append(g.Edges, e)
	g.Out[e.From] = append(g.Out[e.From], e)
	g.In[e.To] = append(g.In[e.To], e)
}

// Reject records one row that failed structural validation.
type Reject struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Report summarizes one ingest run. RowsTotal always equals
// RowsMapped + RowsRejected, header excluded.
type Report struct {
	RunID           string    `json:"run_id"`
	Source          string    `json:"source"`
	RowsTotal       int       `json:"rows_total"`
	RowsMapped      int       `json:"rows_mapped"`
	RowsRejected    int       `json:"rows_rejected"`
	RowsWithoutGene int       `json:"rows_without_gene"`
	Rejects         []Reject  `json:"rejects"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
}
