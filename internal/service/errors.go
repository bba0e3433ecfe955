package service

import "errors"

var (
	ErrNoUsernameProvided = errors.New("users must have a username")
	ErrNoPasswordProvided = errors.New("users must have a password")

	// ErrInvalidCredentials covers every login failure: missing fields,
	// unknown user, wrong password and inactive user alike.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("invalid token")
	ErrInactiveUser            = errors.New("user inactive or deleted")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrPasswordHashing = errors.New("password hashing failed")

	ErrInvalidServiceConfig = errors.New("invalid service configuration")
)
