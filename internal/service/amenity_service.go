package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"homestay/internal/auth"
	"homestay/internal/errors"
	"homestay/internal/model"
	"homestay/internal/repository"
)

// AmenityService exposes amenity domain operations. Mutations are admin-only.
type AmenityService interface {
	Create(ctx context.Context, actor auth.Actor, name string) (*model.Amenity, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Amenity, error)
	List(ctx context.Context) ([]model.Amenity, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.AmenityUpdate) (*model.Amenity, error)
}

type amenityService struct {
	amenityRepo repository.AmenityRepository
}

// NewAmenityService builds an AmenityService.
func NewAmenityService(amenityRepo repository.AmenityRepository) AmenityService {
	return &amenityService{amenityRepo: amenityRepo}
}

func (s *amenityService) Create(ctx context.Context, actor auth.Actor, name string) (*model.Amenity, error) {
	if err := auth.CanManageAmenity(actor); err != nil {
		return nil, err
	}

	existing, err := s.amenityRepo.FindByName(ctx, name)
	if err == nil && existing != nil {
		return nil, errors.ErrAmenityTaken
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check amenity name: %w", err)
	}

	amenity, err := model.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrAmenityTaken
		}
		return nil, fmt.Errorf("create amenity: %w", err)
	}
	return amenity, nil
}

func (s *amenityService) Get(ctx context.Context, id uuid.UUID) (*model.Amenity, error) {
	amenity, err := s.amenityRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrAmenityNotFound
		}
		return nil, err
	}
	return amenity, nil
}

func (s *amenityService) List(ctx context.Context) ([]model.Amenity, error) {
	return s.amenityRepo.List(ctx)
}

func (s *amenityService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.AmenityUpdate) (*model.Amenity, error) {
	if err := auth.CanManageAmenity(actor); err != nil {
		return nil, err
	}

	amenity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != amenity.Name {
		existing, err := s.amenityRepo.FindByName(ctx, *in.Name)
		if err == nil && existing != nil && existing.ID != id {
			return nil, errors.ErrAmenityTaken
		}
		if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check amenity name: %w", err)
		}
	}

	if err := amenity.ApplyUpdate(in); err != nil {
		return nil, err
	}

	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrAmenityTaken
		}
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	return amenity, nil
}
