// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, password hashing, HTTP response
// writing, HTTP client initialization, token signing and validation, and
// identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/biz-records/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier
// in the context.
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key used to store the authenticated [models.User].
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true : value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithUser returns a copy of ctx carrying the authenticated user and its id.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.ID)
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user stored by [WithUser].
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
