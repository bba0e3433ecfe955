// Command manage runs administrative tasks against the biz-records database.
//
// Usage:
//
//	manage [config flags] <command> [command flags]
//
// Commands:
//
//	wait-for-db       block until the database accepts connections
//	migrate           wait for the database and apply pending migrations
//	create-superuser  create an active staff superuser
//
// create-superuser reads SUPERUSER_USERNAME, SUPERUSER_EMAIL and
// SUPERUSER_PASSWORD from the environment; -username and -email override
// the first two.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/internal/store"
)

func main() {
	log := logger.NewLogger("biz-records-manage")

	cfg, err := config.GetStructuredConfig(os.Args[0], os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateStorage(); err != nil {
		log.Fatal().Err(err).Msg("invalid storage configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	cmd, err := parseCommand(cfg.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid command")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	users := service.NewUserService(store.NewUserRepository(db, log), log)
	err = cmd.run(ctx, db, users, cfg.Storage.DB.WaitInterval, log)

	if closeErr := db.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("error closing database")
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd.name).Msg("command failed")
	}
}
