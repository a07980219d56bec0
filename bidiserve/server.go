package main

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npillmayer/bidishape"
	"github.com/npillmayer/bidishape/internal/codeunits"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server routes HTTP requests to the operations of package bidishape.
type Server struct {
	cfg     Config
	router  *gin.Engine
	metrics *Metrics
	limiter *clientLimiter
}

// TextRequest is the body of an operation request. Units takes precedence
// over Text.
type TextRequest struct {
	Text  string   `json:"text"`
	Units []uint16 `json:"units"`
}

// TextResponse carries the result of an operation in both notations.
type TextResponse struct {
	Operation string   `json:"operation"`
	Text      string   `json:"text"`
	Units     []uint16 `json:"units"`
	Length    int      `json:"length"`
}

func NewServer(cfg Config) *Server {
	s := &Server{
		cfg:     cfg,
		router:  gin.New(),
		metrics: NewMetrics(),
		limiter: newClientLimiter(cfg.Rate, cfg.Burst, cfg.LimiterTTL, cfg.MaxClients),
	}
	s.router.Use(gin.Recovery())
	s.router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	v1 := s.router.Group("/v1", s.limiter.RateLimit(s.metrics))
	v1.GET("/operations", s.listOperations)
	for name := range bidishape.EntryPoints {
		v1.POST("/"+name, s.operationHandler(name))
	}
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run() error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
	return srv.ListenAndServe()
}

func (s *Server) listOperations(c *gin.Context) {
	names := make([]string, 0, len(bidishape.EntryPoints))
	for name := range bidishape.EntryPoints {
		names = append(names, name)
	}
	slices.Sort(names)
	c.JSON(http.StatusOK, gin.H{"operations": names})
}

func (s *Server) operationHandler(name string) gin.HandlerFunc {
	ep, _ := bidishape.Lookup(name)
	return func(c *gin.Context) {
		var req TextRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.metrics.requests.WithLabelValues(name, "bad_request").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		src := req.Units
		if src == nil {
			src = codeunits.FromString(req.Text)
		}
		if len(src) > s.cfg.MaxUnits {
			s.metrics.requests.WithLabelValues(name, "too_large").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "text exceeds the maximum number of code units",
				"limit": s.cfg.MaxUnits,
			})
			return
		}
		dest := make([]uint16, len(src))
		start := time.Now()
		n, err := ep(src, dest, 0, len(src))
		s.metrics.duration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			s.metrics.requests.WithLabelValues(name, "failed").Inc()
			body := gin.H{"error": err.Error()}
			var perr *bidishape.PipelineError
			if errors.As(err, &perr) {
				body["kind"] = perr.Kind.String()
			}
			c.JSON(http.StatusUnprocessableEntity, body)
			return
		}
		s.metrics.requests.WithLabelValues(name, "ok").Inc()
		s.metrics.codeUnits.WithLabelValues(name).Add(float64(len(src)))
		c.JSON(http.StatusOK, TextResponse{
			Operation: name,
			Text:      codeunits.ToString(dest[:n]),
			Units:     dest[:n],
			Length:    n,
		})
	}
}
