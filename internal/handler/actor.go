package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"homestay/internal/auth"
	"homestay/internal/errors"
)

// actorFromContext extracts the acting identity from the verified JWT placed
// on the context by the echo-jwt middleware.
func actorFromContext(c echo.Context) (auth.Actor, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return auth.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return auth.Actor{ID: id, IsAdmin: claims.IsAdmin}, nil
}

// toHTTPError maps a domain error onto the echo error surface.
func toHTTPError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
