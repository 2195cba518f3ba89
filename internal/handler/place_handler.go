package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"homestay/internal/model"
	"homestay/internal/service"
)

// PlaceHandler bundles place HTTP handlers.
type PlaceHandler struct {
	svc service.PlaceService
}

// NewPlaceHandler creates a handler layer.
func NewPlaceHandler(svc service.PlaceService) *PlaceHandler {
	return &PlaceHandler{svc: svc}
}

// CreatePlaceRequest represents a place registration request. The owner is
// the authenticated caller; amenity ids that do not resolve are skipped.
type CreatePlaceRequest struct {
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Amenities   []string        `json:"amenities"`
}

// UpdatePlaceRequest represents a partial place update. There is no owner
// field: the owner reference is immutable.
type UpdatePlaceRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Amenities   *[]string        `json:"amenities"`
}

// PlaceSummary is the compact list representation.
type PlaceSummary struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
}

// PlaceOwner is the nested owner payload of a detail read.
type PlaceOwner struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// PlaceReview is the nested review payload of a detail read.
type PlaceReview struct {
	ID     uuid.UUID `json:"id"`
	Text   string    `json:"text"`
	Rating int       `json:"rating"`
	UserID uuid.UUID `json:"user_id"`
}

// PlaceAmenity is the nested amenity payload of a detail read.
type PlaceAmenity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PlaceDetailResponse is the expanded single-place representation.
type PlaceDetailResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Owner       PlaceOwner      `json:"owner"`
	Amenities   []PlaceAmenity  `json:"amenities"`
	Reviews     []PlaceReview   `json:"reviews"`
}

// parseAmenityIDs keeps well-formed ids only; malformed ids cannot resolve
// and fall under the same silent-skip rule as unknown ones.
func parseAmenityIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		if id, err := uuid.Parse(s); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// CreatePlace godoc
// @Summary Register a new place
// @Tags places
// @Accept json
// @Produce json
// @Param request body CreatePlaceRequest true "Place payload"
// @Success 201 {object} model.Place
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /places [post]
func (h *PlaceHandler) CreatePlace(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	var req CreatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	place, err := h.svc.Create(c.Request().Context(), actor, service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  parseAmenityIDs(req.Amenities),
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, place)
}

// GetPlace godoc
// @Summary Get place details by id
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} PlaceDetailResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /places/{id} [get]
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	detail, err := h.svc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	resp := PlaceDetailResponse{
		ID:          detail.Place.ID,
		Title:       detail.Place.Title,
		Description: detail.Place.Description,
		Price:       detail.Place.Price,
		Latitude:    detail.Place.Latitude,
		Longitude:   detail.Place.Longitude,
		Owner: PlaceOwner{
			ID:        detail.Owner.ID,
			FirstName: detail.Owner.FirstName,
			LastName:  detail.Owner.LastName,
			Email:     detail.Owner.Email,
		},
		Amenities: make([]PlaceAmenity, 0, len(detail.Amenities)),
		Reviews:   make([]PlaceReview, 0, len(detail.Reviews)),
	}
	for _, a := range detail.Amenities {
		resp.Amenities = append(resp.Amenities, PlaceAmenity{ID: a.ID, Name: a.Name})
	}
	for _, r := range detail.Reviews {
		resp.Reviews = append(resp.Reviews, PlaceReview{ID: r.ID, Text: r.Text, Rating: r.Rating, UserID: r.UserID})
	}
	return c.JSON(http.StatusOK, resp)
}

// ListPlaces godoc
// @Summary List places
// @Tags places
// @Produce json
// @Success 200 {array} PlaceSummary
// @Router /places [get]
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	places, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	summaries := make([]PlaceSummary, 0, len(places))
	for _, p := range places {
		summaries = append(summaries, PlaceSummary{
			ID:        p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
		})
	}
	return c.JSON(http.StatusOK, summaries)
}

// UpdatePlace godoc
// @Summary Update a place (owner or admin)
// @Tags places
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param request body UpdatePlaceRequest true "Partial place payload"
// @Success 200 {object} model.Place
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /places/{id} [put]
func (h *PlaceHandler) UpdatePlace(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdatePlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var amenityIDs *[]uuid.UUID
	if req.Amenities != nil {
		ids := parseAmenityIDs(*req.Amenities)
		amenityIDs = &ids
	}

	place, err := h.svc.Update(c.Request().Context(), actor, id, model.PlaceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, amenityIDs)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, place)
}
