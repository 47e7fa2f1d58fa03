package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pod-mirror/internal/adapter"
	"github.com/MKhiriev/go-pod-mirror/internal/client"
	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("podmirror-tui", "").Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewClientLogger("podmirror-tui", cfg.App.LogLevel)

	podman, err := adapter.NewHTTPPodmanAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create podman adapter")
	}

	app, err := client.NewApp(podman, cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
