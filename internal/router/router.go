package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"homestay/internal/auth"
	"homestay/internal/config"
	"homestay/internal/handler"
	"homestay/internal/observability"
)

const requestsPerSecond = 20

// Register wires routes and middleware. Reads are public the way the original
// behavior exposes them (including user detail); all mutations except login
// and token refresh require a bearer token.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	registry *prometheus.Registry,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	placeHandler *handler.PlaceHandler,
	reviewHandler *handler.ReviewHandler,
	amenityHandler *handler.AmenityHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(requestsPerSecond))))
	e.Use(httpMetrics)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(observability.MetricsHandler(registry)))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.GET("/places", placeHandler.ListPlaces)
	api.GET("/places/:id", placeHandler.GetPlace)
	api.GET("/places/:place_id/reviews", reviewHandler.ListReviewsByPlace)
	api.GET("/reviews", reviewHandler.ListReviews)
	api.GET("/reviews/:id", reviewHandler.GetReview)
	api.GET("/amenities", amenityHandler.ListAmenities)
	api.GET("/amenities/:id", amenityHandler.GetAmenity)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.POST("/users", userHandler.CreateUser)
	secured.PUT("/users/:id", userHandler.UpdateUser)
	secured.POST("/places", placeHandler.CreatePlace)
	secured.PUT("/places/:id", placeHandler.UpdatePlace)
	secured.POST("/reviews", reviewHandler.CreateReview)
	secured.PUT("/reviews/:id", reviewHandler.UpdateReview)
	secured.DELETE("/reviews/:id", reviewHandler.DeleteReview)
	secured.POST("/amenities", amenityHandler.CreateAmenity)
	secured.PUT("/amenities/:id", amenityHandler.UpdateAmenity)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
