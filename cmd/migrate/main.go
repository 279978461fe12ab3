package main

import (
	"flag"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger, _ := zap.NewProduction()
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	logger, err := logging.New(cfg.Paths.Logs, cfg.LogLevel)
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("file log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	defer logger.Sync()

	logger.Info("applying schema",
		zap.String("driver", cfg.Database.Driver),
		zap.String("env", cfg.Env))
	if err := database.EnsureSchema(cfg); err != nil {
		logger.Fatal("schema migration failed", zap.Error(err))
	}
	logger.Info("schema ready")
}
