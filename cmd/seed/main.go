package main

import (
	"context"

	"github.com/shopspring/decimal"

	"homestay/internal/config"
	"homestay/internal/db"
	"homestay/internal/model"
	"homestay/internal/observability"
	"homestay/internal/repository"
)

var amenityNames = []string{"WiFi", "Swimming Pool", "Parking", "Kitchen", "Air Conditioning"}

type seedPlace struct {
	title       string
	description string
	price       string
	latitude    float64
	longitude   float64
	amenities   []string
}

var seedPlaces = []seedPlace{
	{
		title:       "Cozy Downtown Apartment",
		description: "A bright one-bedroom apartment in the heart of the city.",
		price:       "85.00",
		latitude:    48.8566,
		longitude:   2.3522,
		amenities:   []string{"WiFi", "Kitchen"},
	},
	{
		title:       "Beachfront Villa",
		description: "Spacious villa with direct beach access and a private pool.",
		price:       "320.00",
		latitude:    36.7213,
		longitude:   -4.4214,
		amenities:   []string{"WiFi", "Swimming Pool", "Parking", "Air Conditioning"},
	},
	{
		title:       "Mountain Cabin",
		description: "Rustic cabin with a fireplace and hiking trails nearby.",
		price:       "120.00",
		latitude:    45.9237,
		longitude:   6.8694,
		amenities:   []string{"Parking", "Kitchen"},
	},
}

func main() {
	cfg := config.Load()
	logger := observability.NewLogger(cfg.Env)
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}

	// Ensure schema is up to date before seeding
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Amenity{},
		&model.Place{},
		&model.Review{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	amenityRepo := repository.NewAmenityRepository(gormDB)
	placeRepo := repository.NewPlaceRepository(gormDB)

	// Idempotent bootstrap: skip entirely when any user already exists.
	existing, err := userRepo.List(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("list users")
	}
	if len(existing) > 0 {
		logger.Info().Int("users", len(existing)).Msg("database already contains data, skipping seed")
		return
	}

	logger.Info().Msg("seeding database with initial data")

	admin, err := model.NewUser(cfg.AdminFirstName, cfg.AdminLastName, cfg.AdminEmail, cfg.AdminPassword, true)
	if err != nil {
		logger.Fatal().Err(err).Msg("build admin user")
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Fatal().Err(err).Msg("create admin user")
	}
	logger.Info().Str("email", admin.Email).Msg("admin created")

	john, err := model.NewUser("John", "Doe", "john.doe@example.com", "password123", false)
	if err != nil {
		logger.Fatal().Err(err).Msg("build user")
	}
	jane, err := model.NewUser("Jane", "Smith", "jane.smith@example.com", "password123", false)
	if err != nil {
		logger.Fatal().Err(err).Msg("build user")
	}
	for _, u := range []*model.User{john, jane} {
		if err := userRepo.Create(ctx, u); err != nil {
			logger.Fatal().Err(err).Str("email", u.Email).Msg("create user")
		}
		logger.Info().Str("email", u.Email).Msg("user created")
	}

	amenities := make(map[string]model.Amenity, len(amenityNames))
	for _, name := range amenityNames {
		amenity, err := model.NewAmenity(name)
		if err != nil {
			logger.Fatal().Err(err).Str("name", name).Msg("build amenity")
		}
		if err := amenityRepo.Create(ctx, amenity); err != nil {
			logger.Fatal().Err(err).Str("name", name).Msg("create amenity")
		}
		amenities[name] = *amenity
	}
	logger.Info().Int("count", len(amenities)).Msg("amenities created")

	owners := []*model.User{john, jane, john}
	for i, sp := range seedPlaces {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			logger.Fatal().Err(err).Str("title", sp.title).Msg("parse price")
		}
		place, err := model.NewPlace(sp.title, sp.description, price, sp.latitude, sp.longitude, owners[i].ID)
		if err != nil {
			logger.Fatal().Err(err).Str("title", sp.title).Msg("build place")
		}
		for _, name := range sp.amenities {
			place.Amenities = append(place.Amenities, amenities[name])
		}
		if err := placeRepo.Create(ctx, place); err != nil {
			logger.Fatal().Err(err).Str("title", sp.title).Msg("create place")
		}
		logger.Info().Str("title", place.Title).Str("owner", owners[i].Email).Msg("place created")
	}

	logger.Info().Msg("seed completed successfully")
}
