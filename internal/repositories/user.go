package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"github.com/jmoiron/sqlx"
)

// TxGetter returns the transaction bound to the request context, if any.
type TxGetter func(ctx context.Context) *sqlx.Tx

// userSortColumns whitelists the sort fields accepted by List. Anything
// else falls back to id.
var userSortColumns = map[string]string{
	"id":        "id",
	"login":     "login",
	"email":     "email",
	"firstName": "first_name",
	"lastName":  "last_name",
	"birthday":  "birthday",
}

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, login, email, password, first_name, last_name, birthday, phone, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserReadRepository) GetByLogin(ctx context.Context, login string) (*models.UserDB, error) {
	const query = `
		SELECT id, login, email, password, first_name, last_name, birthday, phone, created_at, updated_at
		FROM users
		WHERE login = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, login)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether a user with the email exists. A non-nil
// excludeID skips that record, which permits no-op updates.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string, excludeID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE email = $1 AND ($2::BIGINT IS NULL OR id <> $2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, email, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ExistsByLogin reports whether a user with the login exists, optionally
// excluding one record by id.
func (r *UserReadRepository) ExistsByLogin(ctx context.Context, login string, excludeID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users
			WHERE login = $1 AND ($2::BIGINT IS NULL OR id <> $2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, login, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{login, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns one page of users ordered by the given sort field.
func (r *UserReadRepository) List(ctx context.Context, page, size int, sortBy string) ([]models.UserDB, error) {
	column, ok := userSortColumns[sortBy]
	if !ok {
		column = "id"
	}

	query := `
		SELECT id, login, email, password, first_name, last_name, birthday, phone, created_at, updated_at
		FROM users
		ORDER BY ` + column + `
		LIMIT $1 OFFSET $2
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query, size, page*size)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{size, page * size},
		"result", len(users),
		"error", err,
	)

	return users, err
}

func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (int64, error) {
	const query = `
		INSERT INTO users (login, email, password, first_name, last_name, birthday, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id
	`
	args := []any{user.Login, user.Email, user.Password, user.FirstName, user.LastName, user.Birthday, user.Phone}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Login, user.Email},
		"result", id,
		"error", err,
	)

	return id, mapUniqueViolation(err)
}

// Update overwrites every mutable field of the user, password included.
// The caller decides whether the password hash changes.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET login = $2, email = $3, password = $4, first_name = $5,
		    last_name = $6, birthday = $7, phone = $8, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{user.ID, user.Login, user.Email, user.Password, user.FirstName, user.LastName, user.Birthday, user.Phone}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Login, user.Email},
		"result", rowsAffected,
		"error", err,
	)

	return mapUniqueViolation(err)
}

// Delete removes the user and reports whether a row was deleted. Owned cars
// must be released first; the FK is ON DELETE SET NULL as a backstop.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
