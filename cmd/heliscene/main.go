// Package main is the entry point for the heliscene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/heliscene/internal/app"
	"github.com/Faultbox/heliscene/internal/config"
	"github.com/Faultbox/heliscene/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== heliscene ===")
	logger.Debug("config loaded", zap.String("source", cfg.Source), zap.Any("config", cfg))

	// A config that cannot be written is not worth refusing to start over.
	if config.SaveRequested() {
		if path, err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", path))
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Fatal("failed to start viewer", zap.Error(err))
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
