package store

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] over the "auth_tokens" table.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken returns the existing key of token.UserID, or stores
// token when the user has none. A concurrent insert for the same user is
// resolved by reading back the winner.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, token models.AuthToken) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	existing, err := r.getToken(ctx, sq.Eq{"user_id": token.UserID})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error looking up token")
		return models.AuthToken{}, err
	}

	if token.DateCreated.IsZero() {
		token.DateCreated = time.Now().UTC()
	}

	var created models.AuthToken
	err = r.db.queryRow(ctx, buildInsertTokenQuery(r.db.builder, token), opWrite, func(row rowScanner) (err error) {
		created, err = scanToken(row)
		return err
	})
	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, ErrAlreadyExists):
		log.Debug().Str("func", "*tokenRepository.GetOrCreateToken").Msg("token created concurrently, reading it back")
		return r.getToken(ctx, sq.Eq{"user_id": token.UserID})
	default:
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Msg("error creating token")
		return models.AuthToken{}, err
	}
}

func (r *tokenRepository) GetTokenByKey(ctx context.Context, key string) (models.AuthToken, error) {
	return r.getToken(ctx, sq.Eq{"key": key})
}

// DeleteTokenByUserID revokes the key of a user. Revoking a user without a
// key reports [ErrNotFound].
func (r *tokenRepository) DeleteTokenByUserID(ctx context.Context, userID int64) error {
	if err := r.db.exec(ctx, buildDeleteTokenQuery(r.db.builder, userID), opDelete); err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*tokenRepository.DeleteTokenByUserID").Msg("error deleting token")
		}
		return err
	}

	return nil
}

func (r *tokenRepository) getToken(ctx context.Context, where sq.Eq) (models.AuthToken, error) {
	var t models.AuthToken
	err := r.db.queryRow(ctx, buildSelectTokenQuery(r.db.builder, where), opRead, func(row rowScanner) (err error) {
		t, err = scanToken(row)
		return err
	})
	return t, err
}
