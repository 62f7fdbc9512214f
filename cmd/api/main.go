// Command api serves the survival classifier over HTTP.
//
// The model artifact is loaded once before the listener starts; the process
// exits if it cannot be read, decoded or validated.
//
// Environment:
//
//	CONFIG_FILE  optional YAML config
//	PORT / ADDR  listen address (default :5000)
//	MODEL_ALGO   dt|rf|bagging|gb (default dt)
//	MODEL_PATH   local path or s3://bucket/key (default models/model.gob)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"survival/internal/config"
	"survival/internal/features"
	"survival/internal/inference"
	"survival/internal/metrics"
	"survival/internal/models"
	"survival/internal/server"
	"survival/internal/storage"
	"survival/pkg/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := utils.Logger(cfg.Log.FileOptions(), cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model, err := loadModel(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to load model",
			zap.String("algo", cfg.Model.Algo),
			zap.String("path", cfg.Model.Path),
			zap.Error(err),
		)
	}
	logger.Info("Model loaded",
		zap.String("model", model.Name()),
		zap.String("path", cfg.Model.Path),
		zap.Strings("features", features.Columns),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := newMetrics(reg, cfg.Model.Algo, model)

	svc := inference.New(model, logger, m)
	srv := server.New(svc, logger, reg)
	if err := srv.Run(ctx, cfg.Addr, cfg.ShutdownTimeout); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

// newMetrics registers the service collectors and marks the loaded model.
func newMetrics(reg prometheus.Registerer, algo string, model models.Model) *metrics.Metrics {
	m := metrics.New(reg)
	m.ModelInfo.WithLabelValues(models.NormalizeAlgo(algo), model.Name()).Set(1)
	return m
}

func loadModel(ctx context.Context, cfg config.Config) (models.Model, error) {
	rc, err := storage.Open(ctx, cfg.Model.Path, cfg.MinIO())
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return models.Decode(cfg.Model.Algo, rc, features.Count)
}
