package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-apple-pay/internal/adapter"
	"github.com/MKhiriev/go-apple-pay/internal/config"
	"github.com/MKhiriev/go-apple-pay/internal/handler"
	"github.com/MKhiriev/go-apple-pay/internal/logger"
	"github.com/MKhiriev/go-apple-pay/internal/server"
	"github.com/MKhiriev/go-apple-pay/internal/service"
	"github.com/MKhiriev/go-apple-pay/internal/utils"
	"github.com/MKhiriev/go-apple-pay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("apple-pay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	httpClient, err := utils.NewHTTPClient(utils.HTTPClientOptions{
		Timeout:         cfg.Adapter.RequestTimeout,
		CertificatePath: cfg.Adapter.CertificatePath,
		KeyPath:         cfg.Adapter.KeyPath,
		Logger:          log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating HTTP client")
	}

	client := adapter.NewMerchantSessionClient(httpClient, log)

	services, err := service.NewServices(client, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
