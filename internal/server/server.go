// Package server exposes the health and prediction routes over gin.
//
// Routes:
//   - GET  /         liveness message
//   - POST /predict  {"features": [Pclass, Sex, Age, SibSp, Parch, Fare, Embarked]}
//   - GET  /metrics  Prometheus metrics
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"survival/internal/inference"
)

const HealthMessage = "Backend is running"

type Server struct {
	engine *gin.Engine
	svc    *inference.Service
	logger *zap.Logger
}

// New builds the router. gatherer backs /metrics.
func New(svc *inference.Service, logger *zap.Logger, gatherer prometheus.Gatherer) *Server {
	s := &Server{engine: gin.New(), svc: svc, logger: logger}

	s.engine.Use(gin.Recovery())
	s.engine.Use(LoggingMiddleware(logger))
	s.engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"*"},
		MaxAge:          12 * time.Hour,
	}))

	s.engine.GET("/", s.handleHealth)
	s.engine.POST("/predict", s.handlePredict)
	s.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then drains in-flight requests for
// at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("Server exited")
	return nil
}
