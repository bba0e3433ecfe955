package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

// userService is the concrete implementation of UserService.
// It owns password hashing: every password that reaches the
// UserRepository is already a bcrypt hash.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// CreateUser creates an active, unprivileged-by-default account from input.
//
// Returns ErrNoUsernameProvided or ErrNoPasswordProvided before anything
// else is checked, a [validators.FieldError] for any other invalid field,
// and store.ErrAlreadyExists when the username is taken.
func (s *userService) CreateUser(ctx context.Context, input models.UserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Username == nil || *input.Username == "" {
		return models.User{}, ErrNoUsernameProvided
	}
	if input.Password == nil || *input.Password == "" {
		return models.User{}, ErrNoPasswordProvided
	}

	user := models.User{IsActive: true}
	input.Apply(&user)
	user.Password = *input.Password

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}
	user.Password = hash

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// CreateSuperuser is CreateUser with IsStaff and IsSuperuser forced on.
func (s *userService) CreateSuperuser(ctx context.Context, input models.UserInput) (models.User, error) {
	yes := true
	input.IsStaff = &yes
	input.IsSuperuser = &yes
	input.IsActive = &yes

	return s.CreateUser(ctx, input)
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user %d: %w", id, err)
	}

	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}

	return users, nil
}

// UpdateUser applies the provided fields of input to the user with the
// given id. A new password is validated and hashed before it is stored.
// required names the fields that must be present, which is how a full
// replacement differs from a partial update. An input with nothing
// provided and nothing required leaves the user unchanged.
func (s *userService) UpdateUser(ctx context.Context, id int64, input models.UserInput, required ...string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if input == (models.UserInput{}) && len(required) == 0 {
		return user, nil
	}

	if err = s.validator.Validate(ctx, input, required...); err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("id", id).Msg("invalid user data provided")
		return models.User{}, err
	}

	input.Apply(&user)
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		user.Password = hash
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Int64("id", id).Msg("user deletion ended with error")
		}
		return fmt.Errorf("error deleting user %d: %w", id, err)
	}

	return nil
}
