package main

import (
	"fmt"

	"github.com/MKhiriev/go-cred-auth/internal/adapter"
	"github.com/MKhiriev/go-cred-auth/internal/client"
	"github.com/MKhiriev/go-cred-auth/internal/config"
	"github.com/MKhiriev/go-cred-auth/internal/logger"
	"github.com/MKhiriev/go-cred-auth/internal/service"
	"github.com/MKhiriev/go-cred-auth/internal/tui"
	"github.com/MKhiriev/go-cred-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewClientLogger("go-cred-auth-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetVerbose(cfg.App.Development)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services := service.NewClientServices(serverAdapter, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
