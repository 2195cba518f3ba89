package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/errors"
)

// Review represents a rating a user leaves for a place. The composite unique
// index is the authoritative guard for the one-review-per-user-per-place rule;
// the service-level pre-check only exists for a friendlier error message.
type Review struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:char(36);not null;uniqueIndex:uniq_user_place_review"`
	PlaceID   uuid.UUID `json:"place_id" gorm:"type:char(36);not null;uniqueIndex:uniq_user_place_review;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewReview validates all fields atomically.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	r := &Review{UserID: userID, PlaceID: placeID}
	if err := r.SetText(text); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	return r, nil
}

// SetText validates and assigns the review text.
func (r *Review) SetText(v string) error {
	if v == "" {
		return errors.Validation("text cannot be empty")
	}
	r.Text = v
	return nil
}

// SetRating enforces the inclusive 0..5 range.
func (r *Review) SetRating(v int) error {
	if v < 0 || v > 5 {
		return errors.Validation("rating must be between 0 and 5")
	}
	r.Rating = v
	return nil
}

// ReviewUpdate carries a partial field merge. Author and place are immutable.
type ReviewUpdate struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// ApplyUpdate re-validates only the touched fields, atomically.
func (r *Review) ApplyUpdate(in ReviewUpdate) error {
	next := *r
	if in.Text != nil {
		if err := next.SetText(*in.Text); err != nil {
			return err
		}
	}
	if in.Rating != nil {
		if err := next.SetRating(*in.Rating); err != nil {
			return err
		}
	}
	*r = next
	return nil
}
