package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/model"
)

// ReviewRepository defines review persistence operations. The per-place list
// is derived by foreign key, never maintained in memory.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("user_id = ? AND place_id = ?", userID, placeID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	reviews := make([]model.Review, 0)
	if err := r.db.WithContext(ctx).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Review, error) {
	reviews := make([]model.Review, 0)
	if err := r.db.WithContext(ctx).Where("place_id = ?", placeID).Order("created_at").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update persists the mutable field set by primary key; author and place are
// immutable. Absent ids are a silent no-op.
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Model(&model.Review{}).
		Where("id = ?", review.ID).
		Select("text", "rating").
		Updates(review).Error
}

// Delete removes the review; absent ids are a silent no-op.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}).Error
}
