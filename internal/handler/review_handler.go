package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"homestay/internal/model"
	"homestay/internal/service"
)

// ReviewHandler bundles review HTTP handlers.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a handler layer.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateReviewRequest represents a review creation request. The author is the
// authenticated caller.
type CreateReviewRequest struct {
	Text    string `json:"text" validate:"required"`
	Rating  int    `json:"rating" validate:"min=0,max=5"`
	PlaceID string `json:"place_id" validate:"required,uuid"`
}

// UpdateReviewRequest represents a partial review update.
type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

// CreateReview godoc
// @Summary Register a new review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review payload"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid place_id")
	}

	review, err := h.svc.Create(c.Request().Context(), actor, placeID, req.Text, req.Rating)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

// GetReview godoc
// @Summary Get review by id
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	review, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// ListReviews godoc
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} model.Review
// @Router /reviews [get]
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListReviewsByPlace godoc
// @Summary List reviews for a place
// @Tags reviews
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {array} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /places/{place_id}/reviews [get]
func (h *ReviewHandler) ListReviewsByPlace(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("place_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid place id")
	}
	reviews, err := h.svc.ListByPlace(c.Request().Context(), placeID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// UpdateReview godoc
// @Summary Update a review (author or admin)
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param request body UpdateReviewRequest true "Partial review payload"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.svc.Update(c.Request().Context(), actor, id, model.ReviewUpdate{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review (author or admin)
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.svc.Delete(c.Request().Context(), actor, id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "review deleted successfully",
	})
}
