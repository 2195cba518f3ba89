package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/auth"
	"homestay/internal/cache"
	"homestay/internal/errors"
	"homestay/internal/model"
	"homestay/internal/repository"
)

// UserService exposes user domain operations.
type UserService interface {
	Create(ctx context.Context, actor auth.Actor, firstName, lastName, email, password string, isAdmin bool) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.UserUpdate) (*model.User, error)
}

type userService struct {
	userRepo  repository.UserRepository
	placeRepo repository.PlaceRepository
	cache     *cache.Client
}

// NewUserService builds a UserService.
func NewUserService(userRepo repository.UserRepository, placeRepo repository.PlaceRepository, cache *cache.Client) UserService {
	return &userService{userRepo: userRepo, placeRepo: placeRepo, cache: cache}
}

// Create registers a user (admin only). The email pre-check gives a friendly
// conflict; the unique index on users.email is the backstop under races.
func (s *userService) Create(ctx context.Context, actor auth.Actor, firstName, lastName, email, password string, isAdmin bool) (*model.User, error) {
	if err := auth.CanCreateUser(actor); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	user, err := model.NewUser(firstName, lastName, email, password, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

// Update merges a partial field set. Non-admin callers may only touch their
// own profile fields; email and password changes are admin-only, rejected
// before any field is applied.
func (s *userService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.UserUpdate) (*model.User, error) {
	if err := auth.CanUpdateUser(actor, id); err != nil {
		return nil, err
	}
	if !actor.IsAdmin && in.TouchesCredentials() {
		return nil, errors.Validation("you cannot modify email or password")
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(ctx, *in.Email)
		if err == nil && existing != nil && existing.ID != id {
			return nil, errors.ErrEmailTaken
		}
		if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check email: %w", err)
		}
	}

	if err := user.ApplyUpdate(in); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	// Cached place details embed the owner's name and email.
	if places, err := s.placeRepo.ListByOwner(ctx, id); err == nil {
		for _, p := range places {
			_ = s.cache.Delete(ctx, placeDetailKey(p.ID))
		}
	}
	return user, nil
}
