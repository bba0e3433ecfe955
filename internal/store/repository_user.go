package store

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation, including the assigned id.
//
// Error handling:
//   - unique violation on username → [ErrAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.DateCreated.IsZero() {
		user.DateCreated = time.Now().UTC()
	}

	created, err := r.scanOne(ctx, buildInsertUserQuery(r.db.builder, user), opWrite)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, err
	}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id}, "*userRepository.GetUserByID")
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"username": username}, "*userRepository.GetUserByUsername")
}

// ListUsers returns every user ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	users := make([]models.User, 0)
	err := r.db.queryRows(ctx, buildListUsersQuery(r.db.builder), func(row rowScanner) error {
		u, err := scanUser(row)
		if err != nil {
			return err
		}
		users = append(users, u)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return nil, err
	}

	return users, nil
}

// UpdateUser overwrites every mutable column of the user identified by
// user.ID. The caller is expected to have loaded and modified the row.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := r.scanOne(ctx, buildUpdateUserQuery(r.db.builder, user), opWrite)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUser").Int64("id", user.ID).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}

// DeleteUser removes a user. The user's token is removed with it, while
// databases and projects created by the user block the delete
// ([ErrRestricted]).
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	err := r.db.exec(ctx, buildDeleteByIDQuery(r.db.builder, models.User{}.TableName(), id), opDelete)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.DeleteUser").Int64("id", id).Msg("error deleting user")
		return err
	}

	return nil
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq, funcName string) (models.User, error) {
	u, err := r.scanOne(ctx, buildSelectUserQuery(r.db.builder, where), opRead)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error getting user")
		}
		return models.User{}, err
	}

	return u, nil
}

func (r *userRepository) scanOne(ctx context.Context, q sq.Sqlizer, op operation) (models.User, error) {
	var u models.User
	err := r.db.queryRow(ctx, q, op, func(row rowScanner) (err error) {
		u, err = scanUser(row)
		return err
	})
	return u, err
}
