package main

import (
	"fmt"

	"github.com/opsforge/secretsync/internal/config"
	"github.com/opsforge/secretsync/internal/daemon"
	"github.com/opsforge/secretsync/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("syncd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	var app daemon.Daemon
	app, err = daemon.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init daemon error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("daemon run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
