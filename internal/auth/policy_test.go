package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"homestay/internal/errors"
)

func TestCanCreateUser(t *testing.T) {
	assert.NoError(t, CanCreateUser(Actor{ID: uuid.New(), IsAdmin: true}))
	assert.ErrorIs(t, CanCreateUser(Actor{ID: uuid.New()}), errors.ErrAdminRequired)
}

func TestCanUpdateUser(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	assert.NoError(t, CanUpdateUser(Actor{ID: self}, self))
	assert.NoError(t, CanUpdateUser(Actor{ID: other, IsAdmin: true}, self))
	assert.ErrorIs(t, CanUpdateUser(Actor{ID: other}, self), errors.ErrForbidden)
}

func TestCanUpdatePlace(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, CanUpdatePlace(Actor{ID: owner}, owner))
	assert.NoError(t, CanUpdatePlace(Actor{ID: stranger, IsAdmin: true}, owner))
	assert.ErrorIs(t, CanUpdatePlace(Actor{ID: stranger}, owner), errors.ErrForbidden)
}

func TestCanCreateReview(t *testing.T) {
	owner := uuid.New()
	guest := uuid.New()

	assert.NoError(t, CanCreateReview(Actor{ID: guest}, owner))
	assert.ErrorIs(t, CanCreateReview(Actor{ID: owner}, owner), errors.ErrSelfReview)
	// Admins get no special leniency for their own places.
	assert.ErrorIs(t, CanCreateReview(Actor{ID: owner, IsAdmin: true}, owner), errors.ErrSelfReview)
}

func TestCanModifyReview(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()

	assert.NoError(t, CanModifyReview(Actor{ID: author}, author))
	assert.NoError(t, CanModifyReview(Actor{ID: stranger, IsAdmin: true}, author))
	assert.ErrorIs(t, CanModifyReview(Actor{ID: stranger}, author), errors.ErrForbidden)
}

func TestCanManageAmenity(t *testing.T) {
	assert.NoError(t, CanManageAmenity(Actor{ID: uuid.New(), IsAdmin: true}))
	assert.ErrorIs(t, CanManageAmenity(Actor{ID: uuid.New()}), errors.ErrAdminRequired)
}
