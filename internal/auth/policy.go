package auth

import (
	"github.com/google/uuid"

	"homestay/internal/errors"
)

// Actor is the identity extracted from a verified bearer token. The token
// issuer is trusted; no further lookups are made to decide authorization.
type Actor struct {
	ID      uuid.UUID
	IsAdmin bool
}

// CanCreateUser allows only admins to register users.
func CanCreateUser(actor Actor) error {
	if !actor.IsAdmin {
		return errors.ErrAdminRequired
	}
	return nil
}

// CanUpdateUser allows self-service updates and admin updates.
func CanUpdateUser(actor Actor, targetID uuid.UUID) error {
	if actor.IsAdmin || actor.ID == targetID {
		return nil
	}
	return errors.ErrForbidden
}

// CanUpdatePlace allows the owner and admins.
func CanUpdatePlace(actor Actor, ownerID uuid.UUID) error {
	if actor.IsAdmin || actor.ID == ownerID {
		return nil
	}
	return errors.ErrForbidden
}

// CanCreateReview denies owners reviewing their own place. Duplicate reviews
// are a conflict, not a policy matter, and are checked at the service layer.
func CanCreateReview(actor Actor, placeOwnerID uuid.UUID) error {
	if actor.ID == placeOwnerID {
		return errors.ErrSelfReview
	}
	return nil
}

// CanModifyReview allows the author and admins to update or delete a review.
func CanModifyReview(actor Actor, authorID uuid.UUID) error {
	if actor.IsAdmin || actor.ID == authorID {
		return nil
	}
	return errors.ErrForbidden
}

// CanManageAmenity allows only admins to create or update amenities.
func CanManageAmenity(actor Actor) error {
	if !actor.IsAdmin {
		return errors.ErrAdminRequired
	}
	return nil
}
