package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication and authorization.
// Username is the unique identifier; Email is an optional secondary attribute.
// Password always holds a bcrypt hash once the user has been persisted.
type User struct {
	// ID is the surrogate primary key assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login identifier (at most 150 characters,
	// letters, digits and @/./+/-/_ only).
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never rendered in any API response.
	Password string `json:"-"`

	// Email is optional; its domain part is stored lower-cased.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// IsActive designates whether this user should be treated as active.
	// Inactive users cannot obtain or use tokens.
	IsActive bool `json:"is_active"`

	// IsStaff designates whether the user may use the admin endpoints.
	IsStaff bool `json:"is_staff"`

	// IsSuperuser designates that this user has all permissions.
	IsSuperuser bool `json:"is_superuser"`

	DateCreated time.Time `json:"date_created"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may access the admin user-management
// surface.
func (u User) IsAdmin() bool {
	return u.IsActive && u.IsStaff
}

// UserInput carries the writable user attributes decoded from a request body.
// A nil field means "not provided"; which fields are honoured is decided by
// the [UserSchema] selected for the caller.
type UserInput struct {
	Username    *string `json:"username,omitempty"`
	Password    *string `json:"password,omitempty"`
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsStaff     *bool   `json:"is_staff,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

// Apply copies every provided field of in onto u, except Password, which
// must be hashed by the caller before it is stored.
func (in UserInput) Apply(u *User) {
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = NormalizeEmail(*in.Email)
	}
	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.IsActive != nil {
		u.IsActive = *in.IsActive
	}
	if in.IsStaff != nil {
		u.IsStaff = *in.IsStaff
	}
	if in.IsSuperuser != nil {
		u.IsSuperuser = *in.IsSuperuser
	}
}

// Credentials is the body of a token request.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NormalizeEmail lower-cases the domain portion of an email address and
// leaves the local part untouched. Addresses without "@" are returned as is.
// Applying it more than once yields the same result.
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}

	return email[:at] + "@" + strings.ToLower(email[at+1:])
}
