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

const carColumns = `id, license_plate, model, color, year, user_id, created_at, updated_at`

// CarReadRepository handles car read operations.
type CarReadRepository struct {
	db *sqlx.DB
}

func NewCarReadRepository(db *sqlx.DB) *CarReadRepository {
	return &CarReadRepository{db: db}
}

func (r *CarReadRepository) GetByID(ctx context.Context, id int64) (*models.CarDB, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE id = $1`

	var car models.CarDB
	err := r.db.GetContext(ctx, &car, query, id)

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
	return &car, nil
}

// GetByIDAndUserID returns the car only when it belongs to the given user.
func (r *CarReadRepository) GetByIDAndUserID(ctx context.Context, id, userID int64) (*models.CarDB, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE id = $1 AND user_id = $2`

	var car models.CarDB
	err := r.db.GetContext(ctx, &car, query, id, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarReadRepository) ListByUserID(ctx context.Context, userID int64) ([]models.CarDB, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE user_id = $1 ORDER BY id`

	cars := []models.CarDB{}
	err := r.db.SelectContext(ctx, &cars, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(cars),
		"error", err,
	)

	return cars, err
}

// ListByUserIDs returns every car owned by one of the given users.
func (r *CarReadRepository) ListByUserIDs(ctx context.Context, userIDs []int64) ([]models.CarDB, error) {
	if len(userIDs) == 0 {
		return []models.CarDB{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+carColumns+` FROM cars WHERE user_id IN (?) ORDER BY id`, userIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	cars := []models.CarDB{}
	err = r.db.SelectContext(ctx, &cars, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userIDs},
		"result", len(cars),
		"error", err,
	)

	return cars, err
}

// ListByIDs bulk-fetches cars by id. Callers compare the result size with
// the requested id count to detect missing cars.
func (r *CarReadRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.CarDB, error) {
	if len(ids) == 0 {
		return []models.CarDB{}, nil
	}

	query, args, err := sqlx.In(`SELECT `+carColumns+` FROM cars WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	cars := []models.CarDB{}
	err = r.db.SelectContext(ctx, &cars, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ids},
		"result", len(cars),
		"error", err,
	)

	return cars, err
}

// ListAvailable returns the cars with no owning user.
func (r *CarReadRepository) ListAvailable(ctx context.Context) ([]models.CarDB, error) {
	const query = `SELECT ` + carColumns + ` FROM cars WHERE user_id IS NULL ORDER BY id`

	cars := []models.CarDB{}
	err := r.db.SelectContext(ctx, &cars, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(cars),
		"error", err,
	)

	return cars, err
}

// ExistsByLicensePlate reports whether a car with the plate exists,
// optionally excluding one record by id.
func (r *CarReadRepository) ExistsByLicensePlate(ctx context.Context, licensePlate string, excludeID *int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM cars
			WHERE license_plate = $1 AND ($2::BIGINT IS NULL OR id <> $2)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, licensePlate, excludeID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{licensePlate, excludeID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

func (r *CarReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM cars`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// CarWriteRepository handles car write operations.
type CarWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCarWriteRepository(db *sqlx.DB, txGetter TxGetter) *CarWriteRepository {
	return &CarWriteRepository{db: db, txGetter: txGetter}
}

func (r *CarWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new car and returns the generated id.
func (r *CarWriteRepository) Save(ctx context.Context, car *models.CarDB) (int64, error) {
	const query = `
		INSERT INTO cars (license_plate, model, color, year, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id
	`
	args := []any{car.LicensePlate, car.Model, car.Color, car.Year, car.UserID}

	var id int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &id, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{car.LicensePlate, car.UserID},
		"result", id,
		"error", err,
	)

	return id, mapUniqueViolation(err)
}

// Update overwrites every mutable field of the car.
func (r *CarWriteRepository) Update(ctx context.Context, car *models.CarDB) error {
	const query = `
		UPDATE cars
		SET license_plate = $2, model = $3, color = $4, year = $5, user_id = $6, updated_at = NOW()
		WHERE id = $1
	`
	args := []any{car.ID, car.LicensePlate, car.Model, car.Color, car.Year, car.UserID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{car.ID, car.LicensePlate, car.UserID},
		"result", rowsAffected,
		"error", err,
	)

	return mapUniqueViolation(err)
}

func (r *CarWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM cars WHERE id = $1`

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

// AssignUser sets the owner on every car in ids as one multi-row write and
// returns the number of rows updated.
func (r *CarWriteRepository) AssignUser(ctx context.Context, ids []int64, userID int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`UPDATE cars SET user_id = ?, updated_at = NOW() WHERE id IN (?)`, userID, ids)
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, ids},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// ClearUser releases the car from its owner; the record stays and becomes
// available.
func (r *CarWriteRepository) ClearUser(ctx context.Context, id int64) error {
	const query = `UPDATE cars SET user_id = NULL, updated_at = NOW() WHERE id = $1`

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

	return err
}

// ClearUserByUserID releases every car the user owns and returns the ids of
// the released cars.
func (r *CarWriteRepository) ClearUserByUserID(ctx context.Context, userID int64) ([]int64, error) {
	const query = `UPDATE cars SET user_id = NULL, updated_at = NOW() WHERE user_id = $1 RETURNING id`

	var ids []int64
	err := sqlx.SelectContext(ctx, r.executor(ctx), &ids, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}
