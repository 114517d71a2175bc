package domain

type NodeKind string

const (
	NodeGene  NodeKind = "GENE"
	NodePhene NodeKind = "PHENE"
	NodeTaxon NodeKind = "TAXON"
)

type EdgeKind string

const (
	EdgeCauses  EdgeKind = "CAUSES"
	EdgeInTaxon EdgeKind = "IN_TAXON"
)

// Identifier namespaces used when building curies from raw column values.
const (
	NamespaceGene  = "NCBIGene"
	NamespacePhene = "OMIA"
	NamespaceTaxon = "NCBITaxon"
)

// PredicateCausalMutation is the controlled-vocabulary term linking a
// gene to the condition it is the genetic basis for (RO "is causal
// germline mutation in"). The mapper treats it as an opaque constant;
// callers may override it per mapper instance.
const PredicateCausalMutation = "RO:0004013"

// PredicateInTaxon relates a gene to the species the row was observed
// in (RO "in taxon").
const PredicateInTaxon = "RO:0002162"

// AbsentGeneToken is the literal the upstream table uses for a missing
// gene id. Matched exactly, case-sensitive.
const AbsentGeneToken = "None"
