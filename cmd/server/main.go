package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pod-mirror/internal/adapter"
	"github.com/MKhiriev/go-pod-mirror/internal/app"
	"github.com/MKhiriev/go-pod-mirror/internal/config"
	"github.com/MKhiriev/go-pod-mirror/internal/logger"
	"github.com/MKhiriev/go-pod-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const tokenCommand = "token"

func main() {
	printBuildInfo()

	// "podmirror token [flags]" prints a token for $USER instead of serving
	mintToken := len(os.Args) > 1 && os.Args[1] == tokenCommand
	if mintToken {
		os.Args = append(os.Args[:1], os.Args[2:]...)
	}

	log := logger.NewLogger("podmirror", os.Getenv("APP_LOG_LEVEL"))
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLogger("podmirror", cfg.App.LogLevel)

	log.Debug().
		Str("podman_url", cfg.Adapter.PodmanURL).
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Bool("auth", cfg.App.TokenSignKey != "").
		Msg("received configs")

	podman, err := adapter.NewHTTPPodmanAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating podman adapter")
	}

	daemon, err := app.NewDaemon(podman, cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating daemon")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if mintToken {
		operator := os.Getenv("USER")
		token, err := daemon.Services().AuthService.CreateToken(ctx, operator)
		if err != nil {
			log.Fatal().Err(err).Str("operator", operator).Msg("error creating token")
		}
		fmt.Println(token.String())
		return
	}

	if err = daemon.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("daemon stopped with error")
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
