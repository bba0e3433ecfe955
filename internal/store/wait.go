// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/biz-records/internal/logger"
)

// DefaultWaitInterval is the pause between readiness probes when none is
// configured.
const DefaultWaitInterval = time.Second

// Pinger is the part of *sql.DB used by [WaitForDB].
type Pinger interface {
	PingContext(ctx context.Context) error
}

// WaitForDB pings the database until it answers, retrying at a constant
// interval for as long as ctx allows. Only transient failures are retried:
// connection-level errors and "not ready yet" server codes reported by
// classifier. Any other error is returned at once.
func WaitForDB(ctx context.Context, db Pinger, classifier ErrorClassificator, interval time.Duration, log *logger.Logger) error {
	if interval <= 0 {
		interval = DefaultWaitInterval
	}

	attempt := 0
	return retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		attempt++

		err := db.PingContext(ctx)
		if err == nil {
			log.Info().Str("func", "WaitForDB").Int("attempt", attempt).Msg("database is available")
			return nil
		}

		if IsTransient(err, classifier) {
			log.Warn().Err(err).Str("func", "WaitForDB").Int("attempt", attempt).Dur("retry_in", interval).Msg("database unavailable, waiting")
			return retry.RetryableError(err)
		}

		log.Err(err).Str("func", "WaitForDB").Msg("database readiness check failed")
		return err
	})
}

// WaitForDB blocks until the pool's database accepts connections.
func (db *DB) WaitForDB(ctx context.Context, interval time.Duration) error {
	return WaitForDB(ctx, db.DB, db.errorClassificator, interval, db.logger)
}

// IsTransient reports whether err means the database is not reachable or
// not ready yet, as opposed to a configuration or permission problem.
func IsTransient(err error, classifier ErrorClassificator) bool {
	if err == nil {
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		// a server that answered with a fatal error (bad password, unknown
		// database) is reachable but will never accept us
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return classifier != nil && classifier.Classify(err) == Retryable
		}
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	if errors.Is(err, driver.ErrBadConn) {
		return true
	}

	return classifier != nil && classifier.Classify(err) == Retryable
}
