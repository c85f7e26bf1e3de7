package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-api-bootstrap/internal/config"
	"github.com/MKhiriev/go-api-bootstrap/internal/controller"
	handler "github.com/MKhiriev/go-api-bootstrap/internal/handler/http"
	"github.com/MKhiriev/go-api-bootstrap/internal/logger"
	"github.com/MKhiriev/go-api-bootstrap/internal/server"
	"github.com/MKhiriev/go-api-bootstrap/internal/store"
	"github.com/MKhiriev/go-api-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	args := os.Args[1:]
	if len(args) > 0 && args[0] == healthcheckCommand {
		os.Exit(runHealthcheck(args[1:]))
	}

	printBuildInfo(buildInfo)

	log := logger.NewLogger("api-server")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db := store.NewMongo(cfg.Mongo, log)

	controllers := []handler.Controller{
		controller.NewHealth(db),
		controller.NewVersion(cfg.App, buildInfo),
	}

	app, err := server.NewApp(controllers, cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app")
	}

	ctx := context.Background()
	if err = app.Init(ctx); err != nil {
		log.Fatal().Err(err).Msg("error initializing app")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("app stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
