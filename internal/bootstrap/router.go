package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/omia-kg/omia-ingest-backend/internal/api/http"
	"github.com/omia-kg/omia-ingest-backend/internal/api/http/middleware"
	omiahttp "github.com/omia-kg/omia-ingest-backend/internal/api/http/omia"
	"github.com/omia-kg/omia-ingest-backend/internal/causal_mutation_ingest/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	APIKey      string
	OutDir      string
	DB          *pgxpool.Pool
	Pipeline    *service.Pipeline
	ReportCache service.ReportCache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	ingest := api.Group("/omia")
	ingest.Use(middleware.APIKeyMiddleware(dep.APIKey))

	handler := omiahttp.NewHandler(dep.Pipeline, dep.ReportCache, dep.OutDir)
	omiahttp.Register(ingest, handler)

	return r
}
