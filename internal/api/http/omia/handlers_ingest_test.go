package omia

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/domain"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
)

const sampleTable = "gene_symbol\tncbi_gene_id\tOMIA_id\tncbi_tax_id\tOMIA_url\tphene_name\n" +
	"KIT\t396810\t000209\t9823\thttp://omia.org/\tSome disease\n" +
	"MC1R\tNone\t000201\t9615\thttp://omia.org/\tCoat color\n"

type stubCache struct {
	latest *domain.Report
}

func (c *stubCache) SetLatest(_ context.Context, report *domain.Report) error {
	c.latest = report
	return nil
}

func (c *stubCache) Latest(_ context.Context) (*domain.Report, error) {
	if c.latest == nil {
		return nil, domain.ErrReportNotFound
	}
	return c.latest, nil
}

func setupRouter(t *testing.T, cache service.ReportCache) *gin.Engine {
	gin.SetMode(gin.TestMode)

	pipeline := service.NewPipeline(nil, nil, cache)
	handler := NewHandler(pipeline, cache, t.TempDir())

	r := gin.New()
	Register(r.Group("/api/v1/omia"), handler)
	return r
}

func TestIngestRaw(t *testing.T) {
	cache := &stubCache{}
	router := setupRouter(t, cache)

	body, err := json.Marshal(IngestRawRequest{TSV: sampleTable, Source: "test.txt"})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/omia/ingest-raw", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Report.RowsTotal)
	assert.Equal(t, 2, resp.Report.RowsMapped)
	assert.Equal(t, 1, resp.Report.RowsWithoutGene)
	assert.NotEmpty(t, resp.NTPath)
}

func TestIngestRaw_MissingBody(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/omia/ingest-raw", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestIngestUpload(t *testing.T) {
	router := setupRouter(t, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "causal_mutations.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleTable))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/omia/ingest", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp IngestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "causal_mutations.txt", resp.Report.Source)
	assert.Equal(t, 2, resp.Report.RowsMapped)
}

func TestIngestUpload_FileRequired(t *testing.T) {
	router := setupRouter(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/omia/ingest", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLatestReport(t *testing.T) {
	cache := &stubCache{}
	router := setupRouter(t, cache)

	t.Run("not found before any run", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/omia/report", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("found after a run", func(t *testing.T) {
		body, _ := json.Marshal(IngestRawRequest{TSV: sampleTable})
		req := httptest.NewRequest("POST", "/api/v1/omia/ingest-raw", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		req = httptest.NewRequest("GET", "/api/v1/omia/report", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var report domain.Report
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &report))
		assert.Equal(t, 2, report.RowsMapped)
	})
}
