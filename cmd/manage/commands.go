package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/models"
)

const (
	cmdWaitForDB       = "wait-for-db"
	cmdMigrate         = "migrate"
	cmdCreateSuperuser = "create-superuser"
)

var (
	errNoCommand      = errors.New("no command given, expected one of: wait-for-db, migrate, create-superuser")
	errUnknownCommand = errors.New("unknown command")
)

// database is the part of *store.DB the commands need.
type database interface {
	WaitForDB(ctx context.Context, interval time.Duration) error
	Migrate() error
}

// superuser is read from the environment and then from command flags.
type superuser struct {
	Username string `env:"SUPERUSER_USERNAME"`
	Email    string `env:"SUPERUSER_EMAIL"`
	Password string `env:"SUPERUSER_PASSWORD"`
}

type command struct {
	name      string
	superuser superuser
}

func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errNoCommand
	}

	cmd := command{name: args[0]}
	switch cmd.name {
	case cmdWaitForDB, cmdMigrate:
		if len(args) > 1 {
			return command{}, fmt.Errorf("%s takes no arguments, got %v", cmd.name, args[1:])
		}
	case cmdCreateSuperuser:
		su, err := parseSuperuser(args[1:])
		if err != nil {
			return command{}, err
		}
		cmd.superuser = su
	default:
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, cmd.name)
	}

	return cmd, nil
}

func parseSuperuser(args []string) (superuser, error) {
	var su superuser
	if err := env.Parse(&su); err != nil {
		return superuser{}, fmt.Errorf("error parsing superuser env: %w", err)
	}

	fs := flag.NewFlagSet(cmdCreateSuperuser, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&su.Username, "username", su.Username, "Superuser username")
	fs.StringVar(&su.Email, "email", su.Email, "Superuser email")
	if err := fs.Parse(args); err != nil {
		return superuser{}, fmt.Errorf("error parsing %s flags: %w", cmdCreateSuperuser, err)
	}

	return su, nil
}

func (c command) run(ctx context.Context, db database, users service.UserService, interval time.Duration, log *logger.Logger) error {
	if err := db.WaitForDB(ctx, interval); err != nil {
		return fmt.Errorf("database is not available: %w", err)
	}
	if c.name == cmdWaitForDB {
		return nil
	}

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Msg("migrations applied")
	if c.name == cmdMigrate {
		return nil
	}

	input := models.UserInput{Username: &c.superuser.Username, Password: &c.superuser.Password}
	if c.superuser.Email != "" {
		input.Email = &c.superuser.Email
	}

	user, err := users.CreateSuperuser(ctx, input)
	if err != nil {
		return fmt.Errorf("error creating superuser: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("superuser created")
	return nil
}
