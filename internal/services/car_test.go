package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/desafio/car-users-api/internal/models"
	"github.com/desafio/car-users-api/internal/services"
)

type carServiceMocks struct {
	cars   *services.MockCarReader
	writer *services.MockCarWriter
	users  *services.MockUserReader
	cache  *services.MockAvailableCarsCache
	events *services.MockEventWriter
}

func newCarService(ctrl *gomock.Controller) (*services.CarService, carServiceMocks) {
	m := carServiceMocks{
		cars:   services.NewMockCarReader(ctrl),
		writer: services.NewMockCarWriter(ctrl),
		users:  services.NewMockUserReader(ctrl),
		cache:  services.NewMockAvailableCarsCache(ctrl),
		events: services.NewMockEventWriter(ctrl),
	}
	svc := services.NewCarService(m.cars, m.writer, m.users, m.cache, m.events)
	return svc, m
}

func validCar() *models.CarDB {
	return &models.CarDB{LicensePlate: "ABC-1234", Model: "Corolla", Color: "Black", Year: 2020}
}

func TestCarService_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCarService(ctrl)
	car := validCar()
	owner := &models.UserDB{ID: 5, Login: "johndoe"}

	m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, nil).Return(false, nil)
	m.users.EXPECT().GetByLogin(gomock.Any(), "johndoe").Return(owner, nil)
	m.writer.EXPECT().Save(gomock.Any(), car).Return(int64(11), nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	m.events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.Create(context.Background(), "johndoe", car)
	assert.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.NotNil(t, created.UserID)
	assert.Equal(t, int64(5), *created.UserID)
}

func TestCarService_Create_ExplicitOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCarService(ctrl)
	ownerID := int64(9)
	car := validCar()
	car.UserID = &ownerID

	m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, nil).Return(false, nil)
	m.users.EXPECT().GetByID(gomock.Any(), ownerID).Return(&models.UserDB{ID: ownerID}, nil)
	m.writer.EXPECT().Save(gomock.Any(), car).Return(int64(12), nil)
	m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
	m.events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	created, err := svc.Create(context.Background(), "someone-else", car)
	assert.NoError(t, err)
	assert.Equal(t, ownerID, *created.UserID)
}

func TestCarService_Create_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("invalid plate format", func(t *testing.T) {
		svc, _ := newCarService(ctrl)
		car := validCar()
		car.LicensePlate = "1234-ABC"

		_, err := svc.Create(context.Background(), "johndoe", car)
		assert.ErrorIs(t, err, services.ErrInvalidFields)
	})

	t.Run("zero year", func(t *testing.T) {
		svc, _ := newCarService(ctrl)
		car := validCar()
		car.Year = 0

		_, err := svc.Create(context.Background(), "johndoe", car)
		assert.ErrorIs(t, err, services.ErrInvalidFields)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		car := validCar()

		m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, nil).Return(true, nil)

		_, err := svc.Create(context.Background(), "johndoe", car)
		assert.ErrorIs(t, err, services.ErrLicensePlateAlreadyExists)
	})

	t.Run("unknown explicit owner", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		ownerID := int64(404)
		car := validCar()
		car.UserID = &ownerID

		m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, nil).Return(false, nil)
		m.users.EXPECT().GetByID(gomock.Any(), ownerID).Return(nil, nil)

		_, err := svc.Create(context.Background(), "johndoe", car)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestCarService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		car := validCar()
		owner := &models.UserDB{ID: 5, Login: "johndoe"}

		m.cars.EXPECT().GetByID(gomock.Any(), int64(11)).Return(&models.CarDB{ID: 11}, nil)
		m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, gomock.Any()).Return(false, nil)
		m.users.EXPECT().GetByLogin(gomock.Any(), "johndoe").Return(owner, nil)
		m.writer.EXPECT().Update(gomock.Any(), car).Return(nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		updated, err := svc.Update(context.Background(), "johndoe", 11, car)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), updated.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cars.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		_, err := svc.Update(context.Background(), "johndoe", 404, validCar())
		assert.ErrorIs(t, err, services.ErrCarNotFound)
	})

	t.Run("plate taken by another car", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		car := validCar()

		m.cars.EXPECT().GetByID(gomock.Any(), int64(11)).Return(&models.CarDB{ID: 11}, nil)
		m.cars.EXPECT().ExistsByLicensePlate(gomock.Any(), car.LicensePlate, gomock.Any()).Return(true, nil)

		_, err := svc.Update(context.Background(), "johndoe", 11, car)
		assert.ErrorIs(t, err, services.ErrLicensePlateAlreadyExists)
	})
}

func TestCarService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		owner := &models.UserDB{ID: 5, Login: "johndoe"}
		ownerID := owner.ID

		m.users.EXPECT().GetByLogin(gomock.Any(), "johndoe").Return(owner, nil)
		m.cars.EXPECT().GetByIDAndUserID(gomock.Any(), int64(11), int64(5)).
			Return(&models.CarDB{ID: 11, LicensePlate: "ABC-1234", UserID: &ownerID}, nil)
		m.writer.EXPECT().Delete(gomock.Any(), int64(11)).Return(true, nil)
		m.cache.EXPECT().Invalidate(gomock.Any()).Return(nil)
		m.events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "johndoe", 11)
		assert.NoError(t, err)
	})

	t.Run("not owned", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		owner := &models.UserDB{ID: 5, Login: "johndoe"}

		m.users.EXPECT().GetByLogin(gomock.Any(), "johndoe").Return(owner, nil)
		m.cars.EXPECT().GetByIDAndUserID(gomock.Any(), int64(11), int64(5)).Return(nil, nil)

		err := svc.Delete(context.Background(), "johndoe", 11)
		assert.ErrorIs(t, err, services.ErrCarNotFound)
	})

	t.Run("unknown login", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.users.EXPECT().GetByLogin(gomock.Any(), "ghost").Return(nil, nil)

		err := svc.Delete(context.Background(), "ghost", 11)
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestCarService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		svc, m := newCarService(ctrl)
		want := &models.CarDB{ID: 11, LicensePlate: "ABC-1234", Model: "Corolla", Color: "Black", Year: 2020}

		m.cars.EXPECT().GetByID(gomock.Any(), int64(11)).Return(want, nil)

		car, err := svc.Get(context.Background(), 11)
		assert.NoError(t, err)
		assert.Equal(t, want, car)
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cars.EXPECT().GetByID(gomock.Any(), int64(999)).Return(nil, nil)

		car, err := svc.Get(context.Background(), 999)
		assert.ErrorIs(t, err, services.ErrCarNotFound)
		assert.Nil(t, car)
	})

	t.Run("reader error", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cars.EXPECT().GetByID(gomock.Any(), int64(11)).Return(nil, errors.New("db down"))

		_, err := svc.Get(context.Background(), 11)
		assert.Error(t, err)
	})
}

func TestCarService_ListByOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCarService(ctrl)
	owner := &models.UserDB{ID: 5, Login: "johndoe"}
	want := []models.CarDB{{ID: 1, LicensePlate: "ABC-1234"}}

	m.users.EXPECT().GetByLogin(gomock.Any(), "johndoe").Return(owner, nil)
	m.cars.EXPECT().ListByUserID(gomock.Any(), int64(5)).Return(want, nil)

	cars, err := svc.ListByOwner(context.Background(), "johndoe")
	assert.NoError(t, err)
	assert.Equal(t, want, cars)
}

func TestCarService_ListAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	available := []models.CarDB{{ID: 3, LicensePlate: "XYZ-9999"}}

	t.Run("cache hit", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cache.EXPECT().Get(gomock.Any()).Return(available, nil)

		cars, err := svc.ListAvailable(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, available, cars)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
		m.cars.EXPECT().ListAvailable(gomock.Any()).Return(available, nil)
		m.cache.EXPECT().Set(gomock.Any(), available).Return(nil)

		cars, err := svc.ListAvailable(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, available, cars)
	})

	t.Run("cache failure falls back to database", func(t *testing.T) {
		svc, m := newCarService(ctrl)

		m.cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
		m.cars.EXPECT().ListAvailable(gomock.Any()).Return(available, nil)
		m.cache.EXPECT().Set(gomock.Any(), available).Return(errors.New("redis down"))

		cars, err := svc.ListAvailable(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, available, cars)
	})
}
