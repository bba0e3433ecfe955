package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/biz-records/models"
)

// Length limits of user attributes.
const (
	MaxUsernameLength  = 150
	MaxNameLength      = 150
	MaxEmailLength     = 254
	MinPasswordLength  = 5
	usernameExtraRunes = "@.+-_"
)

// UserValidator validates [models.User] values before they are created and
// [models.UserInput] values before they are applied.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks obj, which must be a user or a user input, value or
// pointer. For a [models.User] the Password field is expected to still hold
// the plaintext and fields limits the check to the named attributes. For a
// [models.UserInput] only the provided fields are checked, at least one must
// be provided, and fields names the attributes that are required.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.UserInput:
		return v.validateUserInput(value, fields...)
	case *models.UserInput:
		return v.validateUserInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldUsername, models.FieldPassword, models.FieldEmail, models.FieldFirstName, models.FieldLastName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case models.FieldUsername:
			err = validateUsername(user.Username)
		case models.FieldPassword:
			err = validatePassword(user.Password)
		case models.FieldEmail:
			err = validateEmail(user.Email)
		case models.FieldFirstName:
			err = validateMaxLength(user.FirstName, MaxNameLength)
		case models.FieldLastName:
			err = validateMaxLength(user.LastName, MaxNameLength)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fieldError(f, err)
		}
	}

	return nil
}

func (v *UserValidator) validateUserInput(in models.UserInput, required ...string) error {
	if in == (models.UserInput{}) {
		return ErrNoFieldsToUpdate
	}

	provided := map[string]bool{
		models.FieldUsername:    in.Username != nil,
		models.FieldPassword:    in.Password != nil,
		models.FieldEmail:       in.Email != nil,
		models.FieldFirstName:   in.FirstName != nil,
		models.FieldLastName:    in.LastName != nil,
		models.FieldIsActive:    in.IsActive != nil,
		models.FieldIsStaff:     in.IsStaff != nil,
		models.FieldIsSuperuser: in.IsSuperuser != nil,
	}
	for _, f := range required {
		set, known := provided[f]
		if !known {
			return ErrUnknownField
		}
		if !set {
			return fieldError(f, ErrRequired)
		}
	}

	checks := []struct {
		field string
		value *string
		check func(string) error
	}{
		{models.FieldUsername, in.Username, validateUsername},
		{models.FieldPassword, in.Password, validatePassword},
		{models.FieldEmail, in.Email, validateEmail},
		{models.FieldFirstName, in.FirstName, func(s string) error { return validateMaxLength(s, MaxNameLength) }},
		{models.FieldLastName, in.LastName, func(s string) error { return validateMaxLength(s, MaxNameLength) }},
	}

	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := c.check(*c.value); err != nil {
			return fieldError(c.field, err)
		}
	}

	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrRequired
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrTooLong
	}

	for _, r := range username {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(usernameExtraRunes, r) {
			continue
		}
		return ErrInvalidUsername
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrRequired
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return nil
}

// validateEmail accepts an empty address, the attribute being optional.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	if len(email) > MaxEmailLength {
		return ErrTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validateMaxLength(value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return ErrTooLong
	}

	return nil
}
