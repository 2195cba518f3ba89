package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"homestay/internal/auth"
	"homestay/internal/errors"
	"homestay/internal/model"
)

func newPlaceServiceWithMocks() (PlaceService, *MockPlaceRepository, *MockUserRepository, *MockAmenityRepository, *MockReviewRepository) {
	placeRepo := new(MockPlaceRepository)
	userRepo := new(MockUserRepository)
	amenityRepo := new(MockAmenityRepository)
	reviewRepo := new(MockReviewRepository)
	return NewPlaceService(placeRepo, userRepo, amenityRepo, reviewRepo, nil), placeRepo, userRepo, amenityRepo, reviewRepo
}

func TestPlaceService_Create(t *testing.T) {
	ownerID := uuid.New()
	owner := &model.User{ID: ownerID, Email: "owner@example.com"}

	t.Run("successful creation", func(t *testing.T) {
		service, placeRepo, userRepo, _, _ := newPlaceServiceWithMocks()
		userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		placeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Place")).Return(nil)

		place, err := service.Create(context.Background(), auth.Actor{ID: ownerID}, CreatePlaceInput{
			Title:     "Cozy Apartment",
			Price:     decimal.NewFromInt(100),
			Latitude:  48.85,
			Longitude: 2.35,
		})

		assert.NoError(t, err)
		assert.Equal(t, ownerID, place.OwnerID)
		placeRepo.AssertExpectations(t)
	})

	t.Run("owner not found", func(t *testing.T) {
		service, _, userRepo, _, _ := newPlaceServiceWithMocks()
		userRepo.On("FindByID", mock.Anything, ownerID).Return(nil, gorm.ErrRecordNotFound)

		place, err := service.Create(context.Background(), auth.Actor{ID: ownerID}, CreatePlaceInput{
			Title: "Cozy Apartment",
			Price: decimal.NewFromInt(100),
		})

		assert.ErrorIs(t, err, errors.ErrOwnerNotFound)
		assert.Nil(t, place)
	})

	t.Run("unknown amenity ids are skipped", func(t *testing.T) {
		service, placeRepo, userRepo, amenityRepo, _ := newPlaceServiceWithMocks()
		known := uuid.New()
		unknown := uuid.New()
		userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		amenityRepo.On("FindByID", mock.Anything, known).Return(&model.Amenity{ID: known, Name: "WiFi"}, nil)
		amenityRepo.On("FindByID", mock.Anything, unknown).Return(nil, gorm.ErrRecordNotFound)
		placeRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Place")).Return(nil)

		place, err := service.Create(context.Background(), auth.Actor{ID: ownerID}, CreatePlaceInput{
			Title:      "Cozy Apartment",
			Price:      decimal.NewFromInt(100),
			AmenityIDs: []uuid.UUID{known, unknown},
		})

		assert.NoError(t, err)
		assert.Len(t, place.Amenities, 1)
		assert.Equal(t, "WiFi", place.Amenities[0].Name)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		service, placeRepo, userRepo, _, _ := newPlaceServiceWithMocks()
		userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)

		place, err := service.Create(context.Background(), auth.Actor{ID: ownerID}, CreatePlaceInput{
			Title:    "Cozy Apartment",
			Price:    decimal.NewFromInt(100),
			Latitude: 95,
		})

		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Nil(t, place)
		placeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestPlaceService_GetDetail(t *testing.T) {
	placeID := uuid.New()
	ownerID := uuid.New()
	place := &model.Place{ID: placeID, Title: "Cozy Apartment", OwnerID: ownerID}
	owner := &model.User{ID: ownerID, FirstName: "John"}
	amenities := []model.Amenity{{ID: uuid.New(), Name: "WiFi"}}
	reviews := []model.Review{{ID: uuid.New(), Text: "Great!", Rating: 5, PlaceID: placeID}}

	t.Run("assembles owner amenities and reviews", func(t *testing.T) {
		service, placeRepo, userRepo, amenityRepo, reviewRepo := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(place, nil)
		userRepo.On("FindByID", mock.Anything, ownerID).Return(owner, nil)
		amenityRepo.On("ListByPlace", mock.Anything, placeID).Return(amenities, nil)
		reviewRepo.On("ListByPlace", mock.Anything, placeID).Return(reviews, nil)

		detail, err := service.GetDetail(context.Background(), placeID)

		assert.NoError(t, err)
		assert.Equal(t, placeID, detail.Place.ID)
		assert.Equal(t, "John", detail.Owner.FirstName)
		assert.Len(t, detail.Amenities, 1)
		assert.Len(t, detail.Reviews, 1)
	})

	t.Run("place not found", func(t *testing.T) {
		service, placeRepo, _, _, _ := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(nil, gorm.ErrRecordNotFound)

		detail, err := service.GetDetail(context.Background(), placeID)

		assert.ErrorIs(t, err, errors.ErrPlaceNotFound)
		assert.Nil(t, detail)
	})
}

func TestPlaceService_Update(t *testing.T) {
	placeID := uuid.New()
	ownerID := uuid.New()
	existing := func() *model.Place {
		return &model.Place{ID: placeID, Title: "Cozy Apartment", Price: decimal.NewFromInt(100), OwnerID: ownerID}
	}

	t.Run("owner updates fields", func(t *testing.T) {
		service, placeRepo, _, _, _ := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(existing(), nil)
		placeRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Place")).Return(nil)

		title := "Renamed"
		place, err := service.Update(context.Background(), auth.Actor{ID: ownerID}, placeID, model.PlaceUpdate{Title: &title}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", place.Title)
		assert.Equal(t, ownerID, place.OwnerID)
		placeRepo.AssertExpectations(t)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		service, placeRepo, _, _, _ := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(existing(), nil)

		title := "Renamed"
		place, err := service.Update(context.Background(), auth.Actor{ID: uuid.New()}, placeID, model.PlaceUpdate{Title: &title}, nil)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		assert.Nil(t, place)
		placeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin updates any place", func(t *testing.T) {
		service, placeRepo, _, _, _ := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(existing(), nil)
		placeRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Place")).Return(nil)

		title := "Renamed"
		place, err := service.Update(context.Background(), auth.Actor{ID: uuid.New(), IsAdmin: true}, placeID, model.PlaceUpdate{Title: &title}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", place.Title)
	})

	t.Run("amenity list replacement skips unknown ids", func(t *testing.T) {
		service, placeRepo, _, amenityRepo, _ := newPlaceServiceWithMocks()
		known := uuid.New()
		unknown := uuid.New()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(existing(), nil)
		placeRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Place")).Return(nil)
		amenityRepo.On("FindByID", mock.Anything, known).Return(&model.Amenity{ID: known, Name: "WiFi"}, nil)
		amenityRepo.On("FindByID", mock.Anything, unknown).Return(nil, gorm.ErrRecordNotFound)
		placeRepo.On("ReplaceAmenities", mock.Anything, mock.AnythingOfType("*model.Place"), mock.MatchedBy(func(a []model.Amenity) bool {
			return len(a) == 1 && a[0].ID == known
		})).Return(nil)

		ids := []uuid.UUID{known, unknown}
		_, err := service.Update(context.Background(), auth.Actor{ID: ownerID}, placeID, model.PlaceUpdate{}, &ids)

		assert.NoError(t, err)
		placeRepo.AssertExpectations(t)
	})

	t.Run("place not found", func(t *testing.T) {
		service, placeRepo, _, _, _ := newPlaceServiceWithMocks()
		placeRepo.On("FindByID", mock.Anything, placeID).Return(nil, gorm.ErrRecordNotFound)

		title := "Renamed"
		place, err := service.Update(context.Background(), auth.Actor{ID: ownerID}, placeID, model.PlaceUpdate{Title: &title}, nil)

		assert.ErrorIs(t, err, errors.ErrPlaceNotFound)
		assert.Nil(t, place)
	})
}
