package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthToken is the persisted token key of a user. There is at most one key
// per user; deleting it revokes every signed token that carries it.
type AuthToken struct {
	Key         string    `json:"-"`
	UserID      int64     `json:"-"`
	DateCreated time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the AuthToken model.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}

// Token wraps a signed JWT that transports an [AuthToken] key.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access. The "jti" claim
// holds the token key and "sub" the user id. Clients treat SignedString as
// an opaque value.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Key returns the persisted token key carried in the "jti" claim.
func (t *Token) Key() string {
	return t.ID
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is the body returned by the token endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}
