package location

import (
	migration "FoodBridge-Backend/cmd/database/migrate"
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newLocationTest(t *testing.T) (*gorm.DB, LocationService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migration.Migrate(db))

	return db, NewLocationService(NewLocationRepository(db))
}

func TestCreateAndGetLocations(t *testing.T) {
	_, service := newLocationTest(t)

	created, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Province:      "Yogyakarta",
		City:          "Sleman",
		ZipCode:       "55281",
		StreetAddress: "Jl. Kaliurang KM 5",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	locations, count, err := service.GetLocations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, locations, 1)
	assert.Equal(t, "Sleman", locations[0].City)
}

func TestDeleteLocation(t *testing.T) {
	_, service := newLocationTest(t)

	created, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Province:      "Yogyakarta",
		City:          "Sleman",
		ZipCode:       "55281",
		StreetAddress: "Jl. Kaliurang KM 5",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteLocation(context.Background(), created.ID))

	_, count, err := service.GetLocations(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestDeleteLocationNotFound(t *testing.T) {
	_, service := newLocationTest(t)

	err := service.DeleteLocation(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestDeleteLocationReferencedByUser(t *testing.T) {
	db, service := newLocationTest(t)

	created, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Province:      "Yogyakarta",
		City:          "Sleman",
		ZipCode:       "55281",
		StreetAddress: "Jl. Kaliurang KM 5",
	})
	require.NoError(t, err)

	require.NoError(t, db.Create(&entities.User{
		FullName:      "Resident",
		LocationID:    created.ID,
		ContactNumber: "+628123456789",
		Email:         "resident@example.com",
		Password:      "hashed",
	}).Error)

	err = service.DeleteLocation(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrLocationInUse)
}

func TestDeleteLocationReferencedByFoodItem(t *testing.T) {
	db, service := newLocationTest(t)

	home, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Province:      "Yogyakarta",
		City:          "Sleman",
		ZipCode:       "55281",
		StreetAddress: "Jl. Kaliurang KM 5",
	})
	require.NoError(t, err)
	pickup, err := service.CreateLocation(context.Background(), domain.CreateLocationRequest{
		Province:      "Yogyakarta",
		City:          "Bantul",
		ZipCode:       "55711",
		StreetAddress: "Jl. Parangtritis KM 9",
	})
	require.NoError(t, err)

	supplier := &entities.User{
		FullName:      "Supplier",
		LocationID:    home.ID,
		ContactNumber: "+628123456789",
		Email:         "supplier@example.com",
		Password:      "hashed",
	}
	require.NoError(t, db.Create(supplier).Error)

	require.NoError(t, db.Create(&entities.FoodItem{
		UserID:            supplier.ID,
		FoodType:          entities.FoodTypeVegetables,
		Name:              "Carrots",
		QuantityAvailable: 4.0,
		DeliveryOption:    entities.DeliveryOptionPickup,
		LocationID:        pickup.ID,
		Status:            entities.FoodStatusUnselected,
	}).Error)

	err = service.DeleteLocation(context.Background(), pickup.ID)
	assert.ErrorIs(t, err, domain.ErrLocationInUse)
}
