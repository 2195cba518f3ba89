package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"homestay/internal/errors"
)

// Place represents an accommodation listed by a user. The owner reference is
// set at creation and immutable afterwards: updates carry no owner field.
type Place struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string          `json:"title" gorm:"size:100;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Latitude    float64         `json:"latitude" gorm:"not null"`
	Longitude   float64         `json:"longitude" gorm:"not null"`
	OwnerID     uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	// Relations
	Owner     User      `json:"-" gorm:"foreignKey:OwnerID"`
	Amenities []Amenity `json:"-" gorm:"many2many:place_amenities"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// NewPlace validates all fields atomically; no partial place is produced.
func NewPlace(title, description string, price decimal.Decimal, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	p := &Place{OwnerID: ownerID}
	if err := p.SetTitle(title); err != nil {
		return nil, err
	}
	p.Description = description
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	if err := p.SetLatitude(latitude); err != nil {
		return nil, err
	}
	if err := p.SetLongitude(longitude); err != nil {
		return nil, err
	}
	return p, nil
}

// SetTitle validates and assigns the title.
func (p *Place) SetTitle(v string) error {
	if v == "" {
		return errors.Validation("title cannot be empty")
	}
	if err := maxLength("title", v, 100); err != nil {
		return err
	}
	p.Title = v
	return nil
}

// SetPrice rejects negative prices.
func (p *Place) SetPrice(v decimal.Decimal) error {
	if v.IsNegative() {
		return errors.Validation("price must be non-negative")
	}
	p.Price = v
	return nil
}

// SetLatitude enforces the exclusive (-90, 90) range.
func (p *Place) SetLatitude(v float64) error {
	if err := inRangeExclusive("latitude", v, -90.0, 90.0); err != nil {
		return err
	}
	p.Latitude = v
	return nil
}

// SetLongitude enforces the exclusive (-180, 180) range.
func (p *Place) SetLongitude(v float64) error {
	if err := inRangeExclusive("longitude", v, -180.0, 180.0); err != nil {
		return err
	}
	p.Longitude = v
	return nil
}

// PlaceUpdate carries a partial field merge. Owner is deliberately absent.
type PlaceUpdate struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
}

// ApplyUpdate re-validates only the touched fields, atomically.
func (p *Place) ApplyUpdate(in PlaceUpdate) error {
	next := *p
	if in.Title != nil {
		if err := next.SetTitle(*in.Title); err != nil {
			return err
		}
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.Price != nil {
		if err := next.SetPrice(*in.Price); err != nil {
			return err
		}
	}
	if in.Latitude != nil {
		if err := next.SetLatitude(*in.Latitude); err != nil {
			return err
		}
	}
	if in.Longitude != nil {
		if err := next.SetLongitude(*in.Longitude); err != nil {
			return err
		}
	}
	*p = next
	return nil
}
