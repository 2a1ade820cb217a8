package services

import (
	"context"
	"strings"

	"github.com/desafio/car-users-api/internal/logger"
	"github.com/desafio/car-users-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles user CRUD and the user/car ownership linkage.
type UserService struct {
	users     UserReader
	writer    UserWriter
	cars      CarReader
	carWriter CarWriter
	cache     AvailableCarsCache
	events    EventWriter
}

// NewUserService creates a new UserService.
func NewUserService(users UserReader, writer UserWriter, cars CarReader, carWriter CarWriter, cache AvailableCarsCache, events EventWriter) *UserService {
	return &UserService{
		users:     users,
		writer:    writer,
		cars:      cars,
		carWriter: carWriter,
		cache:     cache,
		events:    events,
	}
}

// List returns one page of users, each with the cars they own, plus the
// total user count for pagination headers.
func (svc *UserService) List(ctx context.Context, page, size int, sortBy string) ([]models.UserWithCars, int64, error) {
	users, err := svc.users.List(ctx, page, size, sortBy)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, 0, err
	}

	total, err := svc.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, 0, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	cars, err := svc.cars.ListByUserIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list cars for users", "err", err)
		return nil, 0, err
	}

	carsByUser := make(map[int64][]models.CarDB, len(users))
	for _, c := range cars {
		if c.UserID != nil {
			carsByUser[*c.UserID] = append(carsByUser[*c.UserID], c)
		}
	}

	result := make([]models.UserWithCars, 0, len(users))
	for _, u := range users {
		result = append(result, models.UserWithCars{User: u, Cars: carsByUser[u.ID]})
	}
	return result, total, nil
}

// Get returns a user with the owned cars.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserWithCars, error) {
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cars, err := svc.cars.ListByUserID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &models.UserWithCars{User: *user, Cars: cars}, nil
}

// Update overwrites every profile field of the user. The password is only
// re-hashed and overwritten when a non-blank one is supplied; uniqueness
// checks exclude the user's own record so a no-op update passes.
func (svc *UserService) Update(ctx context.Context, id int64, upd *models.UserDB) (*models.UserDB, error) {
	existing, err := svc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	if strings.TrimSpace(upd.Login) == "" || strings.TrimSpace(upd.Email) == "" {
		return nil, ErrMissingFields
	}

	exists, err := svc.users.ExistsByEmail(ctx, upd.Email, &id)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	exists, err = svc.users.ExistsByLogin(ctx, upd.Login, &id)
	if err != nil {
		logger.Log.Errorw("failed to check login exists", "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrLoginAlreadyExists
	}

	updated := *upd
	updated.ID = id
	if strings.TrimSpace(upd.Password) == "" {
		updated.Password = existing.Password
	} else {
		if len(upd.Password) < minPasswordLength {
			return nil, ErrInvalidFields
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		updated.Password = string(hashed)
	}

	if err := svc.writer.Update(ctx, &updated); err != nil {
		logger.Log.Errorw("failed to update user", "id", id, "err", err)
		return nil, mapDuplicateError(err)
	}

	return &updated, nil
}

// Delete removes the user. Owned cars are released, not deleted: they lose
// their owner reference and become available.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	existing, err := svc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrUserNotFound
	}

	released, err := svc.carWriter.ClearUserByUserID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to release cars", "user_id", id, "err", err)
		return err
	}

	if _, err := svc.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	svc.invalidateAvailable(ctx)
	for _, carID := range released {
		publishOwnershipEvent(ctx, svc.events, models.CarReleased, &id, carID, "")
	}
	publishOwnershipEvent(ctx, svc.events, models.UserDeleted, &id, 0, "")

	return nil
}

// RemoveCarFromUser releases one car from the user. The car must belong to
// that user; the car record itself stays and becomes available.
func (svc *UserService) RemoveCarFromUser(ctx context.Context, userID, carID int64) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	car, err := svc.cars.GetByIDAndUserID(ctx, carID, userID)
	if err != nil {
		return err
	}
	if car == nil {
		return ErrCarNotOwned
	}

	if err := svc.carWriter.ClearUser(ctx, carID); err != nil {
		logger.Log.Errorw("failed to release car", "car_id", carID, "err", err)
		return err
	}

	svc.invalidateAvailable(ctx)
	publishOwnershipEvent(ctx, svc.events, models.CarReleased, &userID, carID, car.LicensePlate)

	return nil
}

// AddCarsToUser assigns every requested car to the user in one multi-row
// write. When any requested id does not exist the whole operation fails and
// nothing is assigned.
func (svc *UserService) AddCarsToUser(ctx context.Context, userID int64, carIDs []int64) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if len(carIDs) == 0 {
		return ErrMissingFields
	}

	seen := make(map[int64]struct{}, len(carIDs))
	unique := make([]int64, 0, len(carIDs))
	for _, id := range carIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	cars, err := svc.cars.ListByIDs(ctx, unique)
	if err != nil {
		logger.Log.Errorw("failed to fetch cars", "car_ids", unique, "err", err)
		return err
	}
	if len(cars) != len(unique) {
		return ErrSomeCarsNotFound
	}

	if _, err := svc.carWriter.AssignUser(ctx, unique, userID); err != nil {
		logger.Log.Errorw("failed to assign cars", "user_id", userID, "car_ids", unique, "err", err)
		return err
	}

	svc.invalidateAvailable(ctx)
	for _, c := range cars {
		publishOwnershipEvent(ctx, svc.events, models.CarAssigned, &userID, c.ID, c.LicensePlate)
	}

	return nil
}

// Statistics returns the total user and car counts for the dashboard.
func (svc *UserService) Statistics(ctx context.Context) (totalUsers, totalCars int64, err error) {
	totalUsers, err = svc.users.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return 0, 0, err
	}

	totalCars, err = svc.cars.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count cars", "err", err)
		return 0, 0, err
	}

	return totalUsers, totalCars, nil
}

func (svc *UserService) invalidateAvailable(ctx context.Context) {
	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate available-cars cache", "err", err)
	}
}
