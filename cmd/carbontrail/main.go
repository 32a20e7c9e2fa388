package main

import (
	"context"
	"log"

	"github.com/carbontrail/carbontrail/internal/client/cli"
	"github.com/carbontrail/carbontrail/internal/client/config"
	"github.com/carbontrail/carbontrail/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewDefault(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
