package omia

import "github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"

type IngestRawRequest struct {
	// TSV is the causal-mutation table, header line included.
	TSV    string `json:"tsv"`
	Source string `json:"source,omitempty"`
	OutDir string `json:"out_dir,omitempty"`
}

type IngestResponse struct {
	Report   *domain.Report `json:"report"`
	JSONPath string         `json:"json_path"`
	DOTPath  string         `json:"dot_path"`
	NTPath   string         `json:"nt_path"`
}
