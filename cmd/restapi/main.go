package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mpetrashin/go-web-fundamentals/internal/config"
	"github.com/mpetrashin/go-web-fundamentals/internal/handler/rest"
	"github.com/mpetrashin/go-web-fundamentals/internal/logger"
	"github.com/mpetrashin/go-web-fundamentals/internal/server"
	"github.com/mpetrashin/go-web-fundamentals/internal/service"
	"github.com/mpetrashin/go-web-fundamentals/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// zerolog handles request logging; gin's own writer stays quiet.
	gin.SetMode(gin.ReleaseMode)

	log := logger.NewLogger("rest-api")
	cfg, err := config.GetStructuredConfig(":8000")
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, log)
	handlers := rest.NewHandler(services, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
