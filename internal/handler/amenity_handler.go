package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"homestay/internal/model"
	"homestay/internal/service"
)

// AmenityHandler bundles amenity HTTP handlers.
type AmenityHandler struct {
	svc service.AmenityService
}

// NewAmenityHandler creates a handler layer.
func NewAmenityHandler(svc service.AmenityService) *AmenityHandler {
	return &AmenityHandler{svc: svc}
}

// AmenityRequest represents an amenity create or update payload.
type AmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// CreateAmenity godoc
// @Summary Register a new amenity (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Param request body AmenityRequest true "Amenity payload"
// @Success 201 {object} model.Amenity
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /amenities [post]
func (h *AmenityHandler) CreateAmenity(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req AmenityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amenity, err := h.svc.Create(c.Request().Context(), actor, req.Name)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, amenity)
}

// GetAmenity godoc
// @Summary Get amenity by id
// @Tags amenities
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} model.Amenity
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /amenities/{id} [get]
func (h *AmenityHandler) GetAmenity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	amenity, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, amenity)
}

// ListAmenities godoc
// @Summary List amenities
// @Tags amenities
// @Produce json
// @Success 200 {array} model.Amenity
// @Router /amenities [get]
func (h *AmenityHandler) ListAmenities(c echo.Context) error {
	amenities, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, amenities)
}

// UpdateAmenity godoc
// @Summary Update an amenity (admin only)
// @Tags amenities
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param request body AmenityRequest true "Amenity payload"
// @Success 200 {object} model.Amenity
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /amenities/{id} [put]
func (h *AmenityHandler) UpdateAmenity(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req AmenityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	amenity, err := h.svc.Update(c.Request().Context(), actor, id, model.AmenityUpdate{Name: &req.Name})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, amenity)
}
