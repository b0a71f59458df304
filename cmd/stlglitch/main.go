// Package main is the entry point for the stlglitch viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hexlab/stlglitch/internal/config"
	"github.com/hexlab/stlglitch/internal/logger"
	"github.com/hexlab/stlglitch/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== stlglitch ===", zap.String("model", cfg.Viewer.Model))

	v, err := viewer.New(cfg)
	if err != nil {
		logger.Error("failed to initialize viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
