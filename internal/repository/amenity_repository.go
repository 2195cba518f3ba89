package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/model"
)

// AmenityRepository defines amenity persistence operations.
type AmenityRepository interface {
	Create(ctx context.Context, amenity *model.Amenity) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Amenity, error)
	FindByName(ctx context.Context, name string) (*model.Amenity, error)
	List(ctx context.Context) ([]model.Amenity, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Amenity, error)
	Update(ctx context.Context, amenity *model.Amenity) error
}

type amenityRepository struct {
	db *gorm.DB
}

// NewAmenityRepository builds a GORM-backed repository.
func NewAmenityRepository(db *gorm.DB) AmenityRepository {
	return &amenityRepository{db: db}
}

func (r *amenityRepository) Create(ctx context.Context, amenity *model.Amenity) error {
	return r.db.WithContext(ctx).Create(amenity).Error
}

func (r *amenityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Amenity, error) {
	var amenity model.Amenity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&amenity).Error; err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *amenityRepository) FindByName(ctx context.Context, name string) (*model.Amenity, error) {
	var amenity model.Amenity
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&amenity).Error; err != nil {
		return nil, err
	}
	return &amenity, nil
}

func (r *amenityRepository) List(ctx context.Context) ([]model.Amenity, error) {
	amenities := make([]model.Amenity, 0)
	if err := r.db.WithContext(ctx).Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

// ListByPlace derives the amenity set from the join table at query time.
func (r *amenityRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Amenity, error) {
	amenities := make([]model.Amenity, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN place_amenities pa ON pa.amenity_id = amenities.id").
		Where("pa.place_id = ?", placeID).
		Find(&amenities).Error
	if err != nil {
		return nil, err
	}
	return amenities, nil
}

// Update persists the validated name by primary key; absent ids are a silent no-op.
func (r *amenityRepository) Update(ctx context.Context, amenity *model.Amenity) error {
	return r.db.WithContext(ctx).Model(&model.Amenity{}).
		Where("id = ?", amenity.ID).
		Select("name").
		Updates(amenity).Error
}
