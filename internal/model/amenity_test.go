package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"homestay/internal/errors"
)

func TestNewAmenity(t *testing.T) {
	tests := []struct {
		name        string
		amenityName string
		wantErr     bool
	}{
		{"valid amenity", "WiFi", false},
		{"empty name", "", true},
		{"name too long", strings.Repeat("a", 51), true},
		{"name at max length", strings.Repeat("a", 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amenity, err := NewAmenity(tt.amenityName)

			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrValidation)
				assert.Nil(t, amenity)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amenityName, amenity.Name)
			}
		})
	}
}

func TestAmenity_ApplyUpdate(t *testing.T) {
	amenity, err := NewAmenity("WiFi")
	assert.NoError(t, err)

	name := "Fast WiFi"
	assert.NoError(t, amenity.ApplyUpdate(AmenityUpdate{Name: &name}))
	assert.Equal(t, "Fast WiFi", amenity.Name)

	empty := ""
	assert.ErrorIs(t, amenity.ApplyUpdate(AmenityUpdate{Name: &empty}), errors.ErrValidation)
	assert.Equal(t, "Fast WiFi", amenity.Name)
}
