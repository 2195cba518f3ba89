package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/errors"
)

// Amenity represents a feature places can offer, shared across places through
// the place_amenities join table. Names are unique store-wide.
type Amenity struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Amenity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// NewAmenity validates the name before producing an amenity.
func NewAmenity(name string) (*Amenity, error) {
	a := &Amenity{}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	return a, nil
}

// SetName validates and assigns the name. Uniqueness is enforced by the
// store's unique index.
func (a *Amenity) SetName(v string) error {
	if v == "" {
		return errors.Validation("name cannot be empty")
	}
	if err := maxLength("name", v, 50); err != nil {
		return err
	}
	a.Name = v
	return nil
}

// AmenityUpdate carries a partial field merge.
type AmenityUpdate struct {
	Name *string `json:"name"`
}

// ApplyUpdate re-validates only the touched fields.
func (a *Amenity) ApplyUpdate(in AmenityUpdate) error {
	if in.Name != nil {
		if err := a.SetName(*in.Name); err != nil {
			return err
		}
	}
	return nil
}
