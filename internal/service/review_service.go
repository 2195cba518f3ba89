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

// ReviewService exposes review domain operations. Review is the only entity
// with a delete operation.
type ReviewService interface {
	Create(ctx context.Context, actor auth.Actor, placeID uuid.UUID, text string, rating int) (*model.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Review, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.ReviewUpdate) (*model.Review, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	placeRepo  repository.PlaceRepository
	userRepo   repository.UserRepository
	cache      *cache.Client
}

// NewReviewService builds a ReviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	cache *cache.Client,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		userRepo:   userRepo,
		cache:      cache,
	}
}

// Create resolves both user and place, rejects self-reviews and duplicates,
// then persists. The duplicate pre-check is only the friendly fast path: the
// composite unique index on (user_id, place_id) is the correctness boundary,
// and a racing writer loses with the same conflict error.
func (s *reviewService) Create(ctx context.Context, actor auth.Actor, placeID uuid.UUID, text string, rating int) (*model.Review, error) {
	place, err := s.placeRepo.FindByID(ctx, placeID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("resolve place: %w", err)
	}

	if _, err := s.userRepo.FindByID(ctx, actor.ID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserOrPlaceNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	if err := auth.CanCreateReview(actor, place.OwnerID); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.FindByUserAndPlace(ctx, actor.ID, placeID)
	if err == nil && existing != nil {
		return nil, errors.ErrDuplicateReview
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	review, err := model.NewReview(text, rating, actor.ID, placeID)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrDuplicateReview
		}
		return nil, fmt.Errorf("create review: %w", err)
	}

	_ = s.cache.Delete(ctx, placeDetailKey(placeID))
	return review, nil
}

func (s *reviewService) Get(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrReviewNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.List(ctx)
}

// ListByPlace distinguishes a missing place (ErrPlaceNotFound) from a place
// with no reviews (empty slice).
func (s *reviewService) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]model.Review, error) {
	if _, err := s.placeRepo.FindByID(ctx, placeID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("resolve place: %w", err)
	}
	return s.reviewRepo.ListByPlace(ctx, placeID)
}

func (s *reviewService) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, in model.ReviewUpdate) (*model.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.CanModifyReview(actor, review.UserID); err != nil {
		return nil, err
	}

	if err := review.ApplyUpdate(in); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	_ = s.cache.Delete(ctx, placeDetailKey(review.PlaceID))
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.CanModifyReview(actor, review.UserID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	_ = s.cache.Delete(ctx, placeDetailKey(review.PlaceID))
	return nil
}
