package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/biz-records/models"
	"github.com/golang-jwt/jwt/v5"
)

// Authorization header schemes accepted by [ParseAuthorizationHeader].
const (
	SchemeToken  = "Token"
	SchemeBearer = "Bearer"
)

// ErrInvalidAuthorizationHeader is returned for a header that is not
// "<scheme> <credentials>" with a supported scheme.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token that transports a
// persisted token key.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - ID        (jti): the persisted token key
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration, omitted when
//     tokenDuration is zero
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("biz-records", 42, key, time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, key string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || key == "" || signKey == "" || tokenDuration < 0 {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  strconv.FormatInt(userID, 10),
		ID:       key,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with HS256 and the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check when the claim is present
//   - Subject (sub) and ID (jti) claim presence
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "biz-records")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed := models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}
	parsed.Token = token
	parsed.SignedString = tokenString

	if parsed.ID == "" {
		return models.Token{}, errors.New("empty token key error")
	}
	if parsed.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	parsed.UserID = userID

	return parsed, nil
}

// ParseAuthorizationHeader extracts the credentials from an
// "Authorization: Token <value>" or "Authorization: Bearer <value>" header.
func ParseAuthorizationHeader(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	if !strings.EqualFold(parts[0], SchemeToken) && !strings.EqualFold(parts[0], SchemeBearer) {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
