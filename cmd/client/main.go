package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/MKhiriev/biz-records/internal/adapter"
	"github.com/MKhiriev/biz-records/internal/client"
	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
)

func main() {
	log := logger.NewFileLogger("biz-records-client", filepath.Join(os.TempDir(), "biz-records-client.log"))

	cfg, err := config.GetClientConfig(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAPIClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	err = client.NewApp(api, os.Stdout, log).Run(ctx, cfg.Args)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
