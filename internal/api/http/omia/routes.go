package omia

import "github.com/gin-gonic/gin"

func Register(r gin.IRouter, h *Handler) {
	r.POST("/ingest", h.IngestUpload)
	r.POST("/ingest-raw", h.IngestRaw)
	r.GET("/report", h.LatestReport)
}
