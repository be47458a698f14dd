// Package main is the entry point for the box and rods demo.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/config"
	"github.com/Faultbox/scenekit/internal/demo/rods"
	"github.com/Faultbox/scenekit/internal/game"
	"github.com/Faultbox/scenekit/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfig() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== " + rods.Title + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg, rods.New(), game.Options{
		Title:        rods.Title,
		Depth:        true,
		StepInterval: cfg.Simulation.StepInterval,
	})
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("run failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("closed normally")
}
