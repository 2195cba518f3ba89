package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/model"
)

// PlaceRepository defines place persistence operations. Creating a place with
// a populated Amenities slice also writes the join rows.
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)
	List(ctx context.Context) ([]model.Place, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	ReplaceAmenities(ctx context.Context, place *model.Place, amenities []model.Amenity) error
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository builds a GORM-backed repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context) ([]model.Place, error) {
	places := make([]model.Place, 0)
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Place, error) {
	places := make([]model.Place, 0)
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// Update persists the mutable field set by primary key; owner_id is excluded
// to keep the owner reference immutable. Absent ids are a silent no-op.
func (r *placeRepository) Update(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Model(&model.Place{}).
		Where("id = ?", place.ID).
		Select("title", "description", "price", "latitude", "longitude").
		Updates(place).Error
}

// ReplaceAmenities rewrites the place's amenity association in the join table.
func (r *placeRepository) ReplaceAmenities(ctx context.Context, place *model.Place, amenities []model.Amenity) error {
	return r.db.WithContext(ctx).Model(place).Association("Amenities").Replace(&amenities)
}
