// Package server exposes the allocation engine and the hospital dataset
// over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/careops-incubation/icu-bed-allocator/internal/config"
	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/logging"
	"github.com/careops-incubation/icu-bed-allocator/internal/metrics"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
	"github.com/careops-incubation/icu-bed-allocator/pkg/solver"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 5 * time.Second

// Server wires the solver, the dataset source, and the scenario presets
// behind a gin router.
type Server struct {
	cfg          *config.Config
	source       dataset.Source
	solver       solver.Solver
	strategyName string
	presets      scenario.Presets
	logger       *zap.SugaredLogger
	engine       *gin.Engine
}

// New assembles a Server from its collaborators.
func New(cfg *config.Config, source dataset.Source, presets scenario.Presets) (*Server, error) {
	strategy, err := solver.ParseStrategy(cfg.Solver.Strategy)
	if err != nil {
		return nil, err
	}
	slv, err := solver.New(strategy)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:          cfg,
		source:       source,
		solver:       slv,
		strategyName: cfg.Solver.Strategy,
		presets:      presets,
		logger:       logging.Named("server"),
	}
	s.engine = s.buildRouter()
	return s, nil
}

// Router returns the gin engine, exported for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	if !s.cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(s.logger))

	registry := prometheus.NewRegistry()
	for _, collector := range metrics.Collectors() {
		if err := registry.Register(collector); err != nil {
			// Collectors are package-level; re-registration only happens
			// when multiple servers share a process, e.g. in tests.
			var already prometheus.AlreadyRegisteredError
			if !errors.As(err, &already) {
				panic(err)
			}
		}
	}

	engine.GET("/healthz", s.Healthz)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := engine.Group("/api/v1")
	{
		api.POST("/allocations", s.Allocate)
		api.GET("/hospitals", s.Hospitals)
		api.GET("/hospitals/summary", s.Summary)
		api.GET("/hospitals/export", s.Export)
	}
	return engine
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("Server listening", "addr", s.cfg.Server.Addr, "strategy", s.strategyName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
