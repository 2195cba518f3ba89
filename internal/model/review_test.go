package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"homestay/internal/errors"
)

func TestNewReview(t *testing.T) {
	userID := uuid.New()
	placeID := uuid.New()

	tests := []struct {
		name    string
		text    string
		rating  int
		wantErr bool
	}{
		{"valid review", "Great stay!", 4, false},
		{"rating at lower bound", "Terrible.", 0, false},
		{"rating at upper bound", "Perfect.", 5, false},
		{"rating below range", "Bad", -1, true},
		{"rating above range", "Too good", 6, true},
		{"empty text", "", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := NewReview(tt.text, tt.rating, userID, placeID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errors.ErrValidation)
				assert.Nil(t, review)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.text, review.Text)
				assert.Equal(t, tt.rating, review.Rating)
				assert.Equal(t, userID, review.UserID)
				assert.Equal(t, placeID, review.PlaceID)
			}
		})
	}
}

func TestReview_ApplyUpdate(t *testing.T) {
	review, err := NewReview("Great stay!", 4, uuid.New(), uuid.New())
	assert.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		r := *review
		rating := 5
		err := r.ApplyUpdate(ReviewUpdate{Rating: &rating})
		assert.NoError(t, err)
		assert.Equal(t, 5, r.Rating)
		assert.Equal(t, "Great stay!", r.Text)
	})

	t.Run("invalid rating leaves review unchanged", func(t *testing.T) {
		r := *review
		text := "Updated"
		rating := 7
		err := r.ApplyUpdate(ReviewUpdate{Text: &text, Rating: &rating})
		assert.ErrorIs(t, err, errors.ErrValidation)
		assert.Equal(t, "Great stay!", r.Text)
		assert.Equal(t, 4, r.Rating)
	})
}
