package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utilibill/bills-tracker/internal/pipeline"
	"github.com/utilibill/bills-tracker/internal/repository"
)

// Server exposes the extraction pipeline and stored records over HTTP.
type Server struct {
	log      *slog.Logger
	proc     *pipeline.Processor
	bills    *repository.BillRepository
	accounts *repository.AccountRepository
	health   func() error
}

func New(
	log *slog.Logger,
	proc *pipeline.Processor,
	bills *repository.BillRepository,
	accounts *repository.AccountRepository,
	health func() error,
) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, proc: proc, bills: bills, accounts: accounts, health: health}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/bills", s.handleUpload)
		v1.POST("/bills/parse", s.handleParseText)
		v1.GET("/bills", s.handleList)
		v1.GET("/bills/export.csv", s.handleExportCSV)
		v1.GET("/bills/export.xlsx", s.handleExportXLSX)
		v1.GET("/account", s.handleAccount)
	}
	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http.request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}
