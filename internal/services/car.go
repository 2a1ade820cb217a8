package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
)

// licensePlateRe is the accepted plate format: three letters, a dash,
// four digits.
var licensePlateRe = regexp.MustCompile(`^[A-Z]{3}-[0-9]{4}$`)

// CarReader defines read-only operations for cars.
type CarReader interface {
	GetByID(ctx context.Context, id int64) (*models.CarDB, error)
	GetByIDAndUserID(ctx context.Context, id, userID int64) (*models.CarDB, error)
	ListByUserID(ctx context.Context, userID int64) ([]models.CarDB, error)
	ListByUserIDs(ctx context.Context, userIDs []int64) ([]models.CarDB, error)
	ListByIDs(ctx context.Context, ids []int64) ([]models.CarDB, error)
	ListAvailable(ctx context.Context) ([]models.CarDB, error)
	ExistsByLicensePlate(ctx context.Context, licensePlate string, excludeID *int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// CarWriter defines write operations for cars.
type CarWriter interface {
	Save(ctx context.Context, car *models.CarDB) (int64, error)
	Update(ctx context.Context, car *models.CarDB) error
	Delete(ctx context.Context, id int64) (bool, error)
	AssignUser(ctx context.Context, ids []int64, userID int64) (int64, error)
	ClearUser(ctx context.Context, id int64) error
	ClearUserByUserID(ctx context.Context, userID int64) ([]int64, error)
}

// AvailableCarsCache caches the available-cars listing.
type AvailableCarsCache interface {
	Get(ctx context.Context) ([]models.CarDB, error)
	Set(ctx context.Context, cars []models.CarDB) error
	Invalidate(ctx context.Context) error
}

// CarService handles car operations scoped to the authenticated user.
// Identity arrives as an explicit login argument resolved by the handler.
type CarService struct {
	cars   CarReader
	writer CarWriter
	users  UserReader
	cache  AvailableCarsCache
	events EventWriter
}

// NewCarService creates a new CarService.
func NewCarService(cars CarReader, writer CarWriter, users UserReader, cache AvailableCarsCache, events EventWriter) *CarService {
	return &CarService{
		cars:   cars,
		writer: writer,
		users:  users,
		cache:  cache,
		events: events,
	}
}

// validateCar checks required fields, the plate format and the year.
func validateCar(car *models.CarDB) error {
	if strings.TrimSpace(car.LicensePlate) == "" ||
		strings.TrimSpace(car.Model) == "" ||
		strings.TrimSpace(car.Color) == "" {
		return ErrMissingFields
	}
	if !licensePlateRe.MatchString(car.LicensePlate) {
		return ErrInvalidFields
	}
	if car.Year <= 0 {
		return ErrInvalidFields
	}
	return nil
}

// resolveOwner decides the car's owner: an explicit UserID in the payload
// wins, otherwise the authenticated login resolves the owner.
func (svc *CarService) resolveOwner(ctx context.Context, login string, car *models.CarDB) error {
	if car.UserID != nil {
		owner, err := svc.users.GetByID(ctx, *car.UserID)
		if err != nil {
			return err
		}
		if owner == nil {
			return ErrUserNotFound
		}
		return nil
	}

	owner, err := svc.users.GetByLogin(ctx, login)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrUserNotFound
	}
	car.UserID = &owner.ID
	return nil
}

// Create validates and persists a new car for the resolved owner.
func (svc *CarService) Create(ctx context.Context, login string, car *models.CarDB) (*models.CarDB, error) {
	if err := validateCar(car); err != nil {
		return nil, err
	}

	exists, err := svc.cars.ExistsByLicensePlate(ctx, car.LicensePlate, nil)
	if err != nil {
		logger.Log.Errorw("failed to check license plate", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrLicensePlateAlreadyExists
	}

	if err := svc.resolveOwner(ctx, login, car); err != nil {
		return nil, err
	}

	id, err := svc.writer.Save(ctx, car)
	if err != nil {
		logger.Log.Errorw("failed to save car", "license_plate", car.LicensePlate, "err", err)
		return nil, mapDuplicateError(err)
	}
	car.ID = id

	svc.invalidateAvailable(ctx)
	publishOwnershipEvent(ctx, svc.events, models.CarCreated, car.UserID, car.ID, car.LicensePlate)

	return car, nil
}

// Get returns a single car by id regardless of owner.
func (svc *CarService) Get(ctx context.Context, id int64) (*models.CarDB, error) {
	car, err := svc.cars.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get car", "id", id, "err", err)
		return nil, err
	}
	if car == nil {
		return nil, ErrCarNotFound
	}
	return car, nil
}

// Update overwrites an existing car. The plate uniqueness check excludes the
// car itself so a no-op update passes.
func (svc *CarService) Update(ctx context.Context, login string, id int64, car *models.CarDB) (*models.CarDB, error) {
	existing, err := svc.cars.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCarNotFound
	}

	if err := validateCar(car); err != nil {
		return nil, err
	}

	exists, err := svc.cars.ExistsByLicensePlate(ctx, car.LicensePlate, &id)
	if err != nil {
		logger.Log.Errorw("failed to check license plate", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrLicensePlateAlreadyExists
	}

	if err := svc.resolveOwner(ctx, login, car); err != nil {
		return nil, err
	}

	car.ID = id
	if err := svc.writer.Update(ctx, car); err != nil {
		logger.Log.Errorw("failed to update car", "id", id, "err", err)
		return nil, mapDuplicateError(err)
	}

	svc.invalidateAvailable(ctx)
	publishOwnershipEvent(ctx, svc.events, models.CarUpdated, car.UserID, car.ID, car.LicensePlate)

	return car, nil
}

// Delete removes a car. Only the owner may delete it.
func (svc *CarService) Delete(ctx context.Context, login string, id int64) error {
	owner, err := svc.users.GetByLogin(ctx, login)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrUserNotFound
	}

	car, err := svc.cars.GetByIDAndUserID(ctx, id, owner.ID)
	if err != nil {
		return err
	}
	if car == nil {
		return ErrCarNotFound
	}

	if _, err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete car", "id", id, "err", err)
		return err
	}

	svc.invalidateAvailable(ctx)
	publishOwnershipEvent(ctx, svc.events, models.CarDeleted, car.UserID, car.ID, car.LicensePlate)

	return nil
}

// ListByOwner returns the cars owned by the authenticated user.
func (svc *CarService) ListByOwner(ctx context.Context, login string) ([]models.CarDB, error) {
	owner, err := svc.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}
	return svc.cars.ListByUserID(ctx, owner.ID)
}

// ListAvailable returns the cars with no owner, served from the cache when
// warm. Cache failures fall back to the database.
func (svc *CarService) ListAvailable(ctx context.Context) ([]models.CarDB, error) {
	cached, err := svc.cache.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read available-cars cache", "err", err)
	}
	if cached != nil {
		return cached, nil
	}

	cars, err := svc.cars.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	if err := svc.cache.Set(ctx, cars); err != nil {
		logger.Log.Errorw("failed to cache available cars", "err", err)
	}

	return cars, nil
}

func (svc *CarService) invalidateAvailable(ctx context.Context) {
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate available-cars cache", "err", err)
	}
}
