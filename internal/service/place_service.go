package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"homestay/internal/auth"
	"homestay/internal/cache"
	"homestay/internal/errors"
	"homestay/internal/model"
	"homestay/internal/repository"
)

const placeDetailTTL = 5 * time.Minute

func placeDetailKey(id uuid.UUID) string {
	return fmt.Sprintf("place_detail:%s", id)
}

// CreatePlaceInput carries the fields for registering a place. The owner is
// always the acting identity, never caller-supplied.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	Latitude    float64
	Longitude   float64
	AmenityIDs  []uuid.UUID
}

// PlaceDetail is the expanded representation: the place plus its owner,
// amenities and reviews, all derived from the store by foreign key at read
// time. Only single-entity detail reads produce it.
type PlaceDetail struct {
	Place     model.Place     `json:"place"`
	Owner     model.User      `json:"owner"`
	Amenities []model.Amenity `json:"amenities"`
	Reviews   []model.Review  `json:"reviews"`
}

// PlaceService exposes place domain operations.
type PlaceService interface {
	Create(ctx context.Context, actor auth.Actor, in CreatePlaceInput) (*model.Place, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Place, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*PlaceDetail, error)
	List(ctx context.Context) ([]model.Place, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.PlaceUpdate, amenityIDs *[]uuid.UUID) (*model.Place, error)
}

type placeService struct {
	placeRepo   repository.PlaceRepository
	userRepo    repository.UserRepository
	amenityRepo repository.AmenityRepository
	reviewRepo  repository.ReviewRepository
	cache       *cache.Client
}

// NewPlaceService builds a PlaceService with its collaborating repositories
// and the detail-read cache.
func NewPlaceService(
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	amenityRepo repository.AmenityRepository,
	reviewRepo repository.ReviewRepository,
	cache *cache.Client,
) PlaceService {
	return &placeService{
		placeRepo:   placeRepo,
		userRepo:    userRepo,
		amenityRepo: amenityRepo,
		reviewRepo:  reviewRepo,
		cache:       cache,
	}
}

// Create resolves the owner, attaches the amenities that exist (unknown ids
// are skipped silently) and persists the place.
func (s *placeService) Create(ctx context.Context, actor auth.Actor, in CreatePlaceInput) (*model.Place, error) {
	owner, err := s.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("resolve owner: %w", err)
	}

	place, err := model.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner.ID)
	if err != nil {
		return nil, err
	}

	amenities, err := s.resolveAmenities(ctx, in.AmenityIDs)
	if err != nil {
		return nil, err
	}
	place.Amenities = amenities

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}
	return place, nil
}

func (s *placeService) Get(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, err
	}
	return place, nil
}

// GetDetail assembles the expanded representation, fanning the relation reads
// out concurrently, and caches the result until the next mutation.
func (s *placeService) GetDetail(ctx context.Context, id uuid.UUID) (*PlaceDetail, error) {
	if data, _ := s.cache.Get(ctx, placeDetailKey(id)); data != nil {
		var cached PlaceDetail
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	place, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &PlaceDetail{Place: *place}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		owner, err := s.userRepo.FindByID(gctx, place.OwnerID)
		if err != nil {
			return fmt.Errorf("resolve owner: %w", err)
		}
		detail.Owner = *owner
		return nil
	})
	g.Go(func() error {
		amenities, err := s.amenityRepo.ListByPlace(gctx, id)
		if err != nil {
			return fmt.Errorf("list amenities: %w", err)
		}
		detail.Amenities = amenities
		return nil
	})
	g.Go(func() error {
		reviews, err := s.reviewRepo.ListByPlace(gctx, id)
		if err != nil {
			return fmt.Errorf("list reviews: %w", err)
		}
		detail.Reviews = reviews
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(detail); err == nil {
		_ = s.cache.Set(ctx, placeDetailKey(id), payload, placeDetailTTL)
	}
	return detail, nil
}

func (s *placeService) List(ctx context.Context) ([]model.Place, error) {
	return s.placeRepo.List(ctx)
}

// Update merges a partial field set (owner immutable). When amenityIDs is
// non-nil the amenity association is replaced, again skipping unknown ids.
func (s *placeService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.PlaceUpdate, amenityIDs *[]uuid.UUID) (*model.Place, error) {
	place, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanUpdatePlace(actor, place.OwnerID); err != nil {
		return nil, err
	}

	if err := place.ApplyUpdate(in); err != nil {
		return nil, err
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}

	if amenityIDs != nil {
		amenities, err := s.resolveAmenities(ctx, *amenityIDs)
		if err != nil {
			return nil, err
		}
		if err := s.placeRepo.ReplaceAmenities(ctx, place, amenities); err != nil {
			return nil, fmt.Errorf("replace amenities: %w", err)
		}
	}

	_ = s.cache.Delete(ctx, placeDetailKey(id))
	return place, nil
}

// resolveAmenities keeps only the ids that exist. Skipping unknown ids rather
// than failing matches the observed creation behavior.
func (s *placeService) resolveAmenities(ctx context.Context, ids []uuid.UUID) ([]model.Amenity, error) {
	amenities := make([]model.Amenity, 0, len(ids))
	for _, id := range ids {
		amenity, err := s.amenityRepo.FindByID(ctx, id)
		if err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("resolve amenity %s: %w", id, err)
		}
		amenities = append(amenities, *amenity)
	}
	return amenities, nil
}
