package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/config"
	"github.com/jwalitptl/clinic-console/internal/console"
	"github.com/jwalitptl/clinic-console/internal/gateway"
	"github.com/jwalitptl/clinic-console/internal/notifier"
	"github.com/jwalitptl/clinic-console/internal/validate"
	"github.com/jwalitptl/clinic-console/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	appLog := logger.NewLogger(&logger.Config{Level: level, Output: os.Stderr})

	client := apiclient.New(cfg.API.BaseURL,
		apiclient.WithToken(cfg.API.Token),
		apiclient.WithLogger(appLog.Zerolog()),
		apiclient.WithMetrics(apiclient.NewMetrics("clinic_console")),
	)

	gw := gateway.NewClinic(client)
	resolver := console.NewResolver(gw)
	screens := console.BuildScreens(gw, validate.New(), resolver, notifier.NewLog(appLog.Zerolog()))

	ui := console.New(screens, os.Stdout)
	if err := ui.Run(context.Background(), os.Stdin); err != nil {
		appLog.Fatal(err, "console terminated")
	}
}
