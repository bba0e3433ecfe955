package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
)

type healthService struct {
	db store.Pinger

	logger *logger.Logger
}

func NewHealthService(db store.Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		db:     db,
		logger: logger,
	}
}

// Check pings the database once.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}
