package main

import (
	"net/http"
	"os"

	_ "homestay/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"homestay/internal/auth"
	"homestay/internal/cache"
	"homestay/internal/config"
	"homestay/internal/db"
	"homestay/internal/handler"
	"homestay/internal/model"
	"homestay/internal/observability"
	"homestay/internal/repository"
	"homestay/internal/router"
	"homestay/internal/service"
)

// @title HomeStay API
// @version 1.0
// @description Booking platform API with users, places, amenities, reviews and JWT authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.Review{},
			&model.Place{},
			&model.Amenity{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logger.Warn().Err(err).Msg("drop table (may not exist)")
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Amenity{},
		&model.Place{},
		&model.Review{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	registry := observability.InitRegistry()

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)
	amenityRepo := repository.NewAmenityRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, placeRepo, cacheClient)
	placeService := service.NewPlaceService(placeRepo, userRepo, amenityRepo, reviewRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, placeRepo, userRepo, cacheClient)
	amenityService := service.NewAmenityService(amenityRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	placeHandler := handler.NewPlaceHandler(placeService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	amenityHandler := handler.NewAmenityHandler(amenityService)

	// Register routes
	router.Register(
		e,
		cfg,
		registry,
		authHandler,
		userHandler,
		placeHandler,
		reviewHandler,
		amenityHandler,
	)

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("server listening")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
