// Package server exposes the loaded dataset over a small read-only JSON
// API. It is a thin consumer of the pipeline output; no endpoint mutates
// anything.
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/export"
	"github.com/gyeh/facilitystats/internal/geo"
	"github.com/gyeh/facilitystats/internal/observability"
)

// Server serves the read-only facility API.
type Server struct {
	store   *dataset.Store
	log     zerolog.Logger
	metrics *observability.Metrics
	engine  *gin.Engine
}

// New builds the router. metrics may be nil.
func New(store *dataset.Store, log zerolog.Logger, metrics *observability.Metrics) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{store: store, log: log, metrics: metrics}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/summary", s.handleSummary)
	api.GET("/facilities", s.handleFacilities)
	api.GET("/regions", s.handleRegions)
	api.GET("/map", s.handleMap)
	api.GET("/export.xlsx", s.handleExport)

	s.engine = r
	return s
}

// Handler returns the http.Handler for tests and custom servers.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info().Str("addr", addr).Msg("serving facility API")
	return s.engine.Run(addr)
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		if s.metrics != nil {
			s.metrics.HTTPRequests.WithLabelValues(c.FullPath(), strconv.Itoa(status)).Inc()
		}
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	state := s.store.State()
	status := http.StatusOK
	if state == dataset.StateError {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"state": state.String()})
}

// result fetches the loaded dataset or writes the appropriate error status.
func (s *Server) result(c *gin.Context) (*dataset.Result, bool) {
	res, err := s.store.Result()
	if err != nil {
		status := http.StatusServiceUnavailable
		if s.store.State() == dataset.StateError {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}

func (s *Server) handleSummary(c *gin.Context) {
	res, ok := s.result(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Summary)
}

func (s *Server) handleFacilities(c *gin.Context) {
	res, ok := s.result(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":      len(res.Facilities),
		"facilities": res.Facilities,
	})
}

func (s *Server) handleRegions(c *gin.Context) {
	res, ok := s.result(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res.Regions)
}

// regionMarker is a region risk row resolved to map coordinates.
type regionMarker struct {
	Region    string  `json:"region"`
	Total     int     `json:"total"`
	RiskLevel string  `json:"riskLevel"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// handleMap resolves region names against the gazetteer; regions that do
// not match any known place are omitted.
func (s *Server) handleMap(c *gin.Context) {
	res, ok := s.result(c)
	if !ok {
		return
	}
	markers := make([]regionMarker, 0, len(res.Regions))
	for _, r := range res.Regions {
		lat, lng, found := geo.Locate(r.Region)
		if !found {
			continue
		}
		markers = append(markers, regionMarker{
			Region:    r.Region,
			Total:     r.TotalFacilities,
			RiskLevel: string(r.RiskLevel),
			Lat:       lat,
			Lng:       lng,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"bounds": gin.H{
			"north": geo.GhanaBounds.North,
			"south": geo.GhanaBounds.South,
			"east":  geo.GhanaBounds.East,
			"west":  geo.GhanaBounds.West,
		},
		"markers": markers,
	})
}

func (s *Server) handleExport(c *gin.Context) {
	res, ok := s.result(c)
	if !ok {
		return
	}
	start := time.Now()
	c.Header("Content-Disposition", `attachment; filename="facilities.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.WriteWorkbook(c.Writer, res, nil); err != nil {
		s.log.Error().Err(err).Msg("workbook export failed")
		c.Status(http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.ExportDuration.Observe(time.Since(start).Seconds())
	}
}
