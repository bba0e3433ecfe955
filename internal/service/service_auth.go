package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/biz-records/internal/config"
	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/models"
)

// keyGenerator produces fresh token keys.
type keyGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
//
// Every user has at most one persisted token key. Login returns the existing
// key when there is one, signed into an HS256 JWT; deleting the key revokes
// every JWT that carries it.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository
	keys            keyGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration is the lifetime of a newly issued JWT. Zero means the
	// JWT carries no expiry and stays valid until its key is revoked.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		keys:            utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login verifies credentials and issues a signed token for the user.
//
// Every credential problem (empty fields, unknown username, wrong password,
// inactive account) is reported as ErrInvalidCredentials so that callers
// cannot tell them apart.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("empty credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.GetUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Err(err).Str("func", "*authService.Login").Str("username", credentials.Username).Msg("no user was found")
			return models.Token{}, ErrInvalidCredentials
		}
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, credentials.Password) {
		log.Error().Str("func", "*authService.Login").Int64("id", user.ID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Error().Str("func", "*authService.Login").Int64("id", user.ID).Msg("inactive user tried to log in")
		return models.Token{}, ErrInvalidCredentials
	}

	key, err := a.tokenRepository.GetOrCreateToken(ctx, models.AuthToken{Key: a.keys.Generate(), UserID: user.ID})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, key.Key, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw token and returns the active user it belongs
// to.
//
// The signature, issuer and expiry are checked first, then the key it
// carries must still be stored for the same user. Any failure there is
// normalised to ErrTokenIsExpiredOrInvalid; an inactive or deleted owner
// yields ErrInactiveUser.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	key, err := a.tokenRepository.GetTokenByKey(ctx, token.Key())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Error().Str("func", "*authService.ParseToken").Int64("user_id", token.UserID).Msg("token key was revoked")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		return models.User{}, fmt.Errorf("token key lookup failed: %w", err)
	}

	if key.UserID != token.UserID {
		log.Error().Str("func", "*authService.ParseToken").Int64("user_id", token.UserID).Msg("token key belongs to another user")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.GetUserByID(ctx, key.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrInactiveUser
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// Logout deletes the user's token key. Logging out without a key is not an
// error.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	err := a.tokenRepository.DeleteTokenByUserID(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Logout").Int64("user_id", userID).Msg("token revocation failed")
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}
