package omia

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
)

const maxUploadBytes = 32 << 20

type Handler struct {
	pipeline *service.Pipeline
	cache    service.ReportCache
	outDir   string
}

func NewHandler(pipeline *service.Pipeline, cache service.ReportCache, outDir string) *Handler {
	if outDir == "" {
		outDir = "out"
	}
	return &Handler{pipeline: pipeline, cache: cache, outDir: outDir}
}

// IngestRaw maps a table posted inline in a JSON body.
func (h *Handler) IngestRaw(c *gin.Context) {
	var req IngestRawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid json body")
		return
	}
	if req.TSV == "" {
		c.String(http.StatusBadRequest, "tsv is required")
		return
	}
	if req.Source == "" {
		req.Source = "inline"
	}
	outDir := req.OutDir
	if outDir == "" {
		outDir = h.outDir
	}

	res, err := h.pipeline.IngestBytes(c.Request.Context(), []byte(req.TSV), req.Source, outDir)
	if err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("ingest failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
}

// IngestUpload maps a table posted as a multipart file.
func (h *Handler) IngestUpload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.String(http.StatusBadRequest, "file is required")
		return
	}
	if fh.Size > maxUploadBytes {
		c.String(http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("reading upload failed: %v", err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("reading upload failed: %v", err))
		return
	}

	source := filepath.Base(fh.Filename)
	outDir := c.DefaultPostForm("out_dir", h.outDir)

	res, err := h.pipeline.IngestBytes(c.Request.Context(), data, source, outDir)
	if err != nil {
		c.String(http.StatusBadRequest, fmt.Sprintf("ingest failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, toResponse(res))
}

// LatestReport returns the most recent run report from the cache.
func (h *Handler) LatestReport(c *gin.Context) {
	if h.cache == nil {
		c.String(http.StatusNotImplemented, "report cache is not configured")
		return
	}

	report, err := h.cache.Latest(c.Request.Context())
	if errors.Is(err, domain.ErrReportNotFound) {
		c.String(http.StatusNotFound, "no ingest run recorded yet")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, fmt.Sprintf("loading report failed: %v", err))
		return
	}

	c.JSON(http.StatusOK, report)
}

func toResponse(res *service.Result) IngestResponse {
	return IngestResponse{
		Report:   res.Report,
		JSONPath: res.JSONPath,
		DOTPath:  res.DOTPath,
		NTPath:   res.NTPath,
	}
}
