package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homestay/internal/model"
)

func amenityColumns() []string {
	return []string{"id", "name", "created_at", "updated_at"}
}

func TestAmenityRepository_FindByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAmenityRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `amenities` WHERE name = ?")).
		WithArgs("WiFi", 1).
		WillReturnRows(sqlmock.NewRows(amenityColumns()).
			AddRow(id.String(), "WiFi", now, now))

	amenity, err := repo.FindByName(context.Background(), "WiFi")
	assert.NoError(t, err)
	assert.Equal(t, id, amenity.ID)
	assert.Equal(t, "WiFi", amenity.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_ListByPlace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAmenityRepository(db)
	placeID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN place_amenities pa ON pa.amenity_id = amenities.id")).
		WithArgs(placeID.String()).
		WillReturnRows(sqlmock.NewRows(amenityColumns()).
			AddRow(uuid.New().String(), "WiFi", now, now).
			AddRow(uuid.New().String(), "Parking", now, now))

	amenities, err := repo.ListByPlace(context.Background(), placeID)
	assert.NoError(t, err)
	assert.Len(t, amenities, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAmenityRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAmenityRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `amenities` SET")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	amenity, err := model.NewAmenity("WiFi")
	require.NoError(t, err)
	amenity.ID = uuid.New()

	err = repo.Update(context.Background(), amenity)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
