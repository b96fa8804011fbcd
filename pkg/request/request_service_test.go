package request

import (
	migration "FoodBridge-Backend/cmd/database/migrate"
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type requestFixture struct {
	db        *gorm.DB
	service   RequestService
	supplier  *entities.User
	recipient *entities.User
	item      *entities.FoodItem
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a single connection keeps the in-memory database and its pragmas alive
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, migration.Migrate(db))

	location := &entities.Location{
		Province:      "West Java",
		City:          "Bandung",
		ZipCode:       "40132",
		StreetAddress: "Jl. Ganesha 10",
	}
	require.NoError(t, db.Create(location).Error)

	supplier := &entities.User{
		FullName:      "Sari Catering",
		Occupation:    entities.OccupationRestaurant,
		LocationID:    location.ID,
		ContactNumber: "+628111111111",
		Email:         "supplier@example.com",
		Password:      "hashed",
	}
	require.NoError(t, db.Create(supplier).Error)
	require.NoError(t, db.Create(&entities.UserRole{UserID: supplier.ID, Role: entities.RoleSupplier}).Error)

	recipient := &entities.User{
		FullName:      "Panti Asuhan Kasih",
		Occupation:    entities.OccupationOther,
		LocationID:    location.ID,
		ContactNumber: "+628222222222",
		Email:         "recipient@example.com",
		Password:      "hashed",
	}
	require.NoError(t, db.Create(recipient).Error)
	require.NoError(t, db.Create(&entities.UserRole{UserID: recipient.ID, Role: entities.RoleRecipient}).Error)

	item := &entities.FoodItem{
		UserID:            supplier.ID,
		FoodType:          entities.FoodTypeFruits,
		Name:              "Apples",
		QuantityAvailable: 8.0,
		ExpiryDate:        time.Now().AddDate(0, 0, 7),
		DeliveryOption:    entities.DeliveryOptionPickup,
		LocationID:        location.ID,
		Status:            entities.FoodStatusUnselected,
	}
	require.NoError(t, db.Create(item).Error)

	return &requestFixture{
		db:        db,
		service:   NewRequestService(NewRequestRepository(db)),
		supplier:  supplier,
		recipient: recipient,
		item:      item,
	}
}

func (f *requestFixture) itemStatus(t *testing.T) entities.FoodStatus {
	t.Helper()
	var item entities.FoodItem
	require.NoError(t, f.db.First(&item, f.item.ID).Error)
	return item.Status
}

func (f *requestFixture) requestStatus(t *testing.T, id uint) entities.RequestStatus {
	t.Helper()
	var request entities.Request
	require.NoError(t, f.db.First(&request, id).Error)
	return request.Status
}

func TestCreateRequestDefaults(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)

	require.NoError(t, err)
	assert.Equal(t, string(entities.RequestStatusPending), response.Status)
	assert.Equal(t, string(entities.UrgencyMedium), response.UrgencyLevel)
	assert.Equal(t, f.recipient.ID, response.RecipientID)

	// creating a request never touches the item
	assert.Equal(t, entities.FoodStatusUnselected, f.itemStatus(t))
}

func TestCreateRequestQuantityExceeded(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 8.5,
	}, f.recipient.ID)

	assert.ErrorIs(t, err, domain.ErrQuantityExceeded)
}

func TestCreateRequestEqualQuantityAllowed(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 8.0,
	}, f.recipient.ID)

	assert.NoError(t, err)
}

func TestCreateRequestItemNotFound(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         9999,
		QuantityNeeded: 1.0,
	}, f.recipient.ID)

	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)
}

func TestCreateRequestInvalidQuantity(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: -1.0,
	}, f.recipient.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateRequestInvalidUrgency(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 1.0,
		UrgencyLevel:   "Critical",
	}, f.recipient.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidUrgency)
}

func TestUpdateStatusSelectedShiftsItemToPending(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	err = f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusSelected),
	}, f.supplier.ID)
	require.NoError(t, err)

	assert.Equal(t, entities.RequestStatusSelected, f.requestStatus(t, response.ID))
	assert.Equal(t, entities.FoodStatusPending, f.itemStatus(t))
}

func TestUpdateStatusSelectedLeavesNonUnselectedItemAlone(t *testing.T) {
	f := newRequestFixture(t)

	first, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 3.0,
	}, f.recipient.ID)
	require.NoError(t, err)
	second, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 2.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	require.NoError(t, f.service.UpdateStatus(context.Background(), first.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusSelected),
	}, f.supplier.ID))
	require.Equal(t, entities.FoodStatusPending, f.itemStatus(t))

	// item is already Pending, selecting another request must not re-shift it
	require.NoError(t, f.service.UpdateStatus(context.Background(), second.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusSelected),
	}, f.supplier.ID))
	assert.Equal(t, entities.FoodStatusPending, f.itemStatus(t))
}

func TestUpdateStatusCancelledShiftsItemBack(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	require.NoError(t, f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusSelected),
	}, f.supplier.ID))
	require.Equal(t, entities.FoodStatusPending, f.itemStatus(t))

	require.NoError(t, f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusCancelled),
	}, f.recipient.ID))
	assert.Equal(t, entities.RequestStatusCancelled, f.requestStatus(t, response.ID))
	assert.Equal(t, entities.FoodStatusUnselected, f.itemStatus(t))

	// cancelling twice is harmless, the item shift is a no-op the second time
	require.NoError(t, f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusCancelled),
	}, f.recipient.ID))
	assert.Equal(t, entities.FoodStatusUnselected, f.itemStatus(t))
}

func TestUpdateStatusCancelOnlyByRecipient(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	err = f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusCancelled),
	}, f.supplier.ID)
	assert.ErrorIs(t, err, domain.ErrNotRequestOwner)
}

func TestUpdateStatusSelectOnlyByItemOwner(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	err = f.service.UpdateStatus(context.Background(), response.ID, domain.UpdateRequestStatusRequest{
		Status: string(entities.RequestStatusSelected),
	}, f.recipient.ID)
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)

	assert.Equal(t, entities.FoodStatusUnselected, f.itemStatus(t))
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	f := newRequestFixture(t)

	err := f.service.UpdateStatus(context.Background(), 1, domain.UpdateRequestStatusRequest{
		Status: "Accepted",
	}, f.supplier.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidRequestStatus)
}

func TestGetRequestByIDVisibility(t *testing.T) {
	f := newRequestFixture(t)

	response, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 5.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	_, err = f.service.GetRequestByID(context.Background(), response.ID, f.recipient.ID)
	assert.NoError(t, err)

	_, err = f.service.GetRequestByID(context.Background(), response.ID, f.supplier.ID)
	assert.NoError(t, err)

	stranger := &entities.User{
		FullName:      "Someone Else",
		LocationID:    f.supplier.LocationID,
		ContactNumber: "+628333333333",
		Email:         "stranger@example.com",
		Password:      "hashed",
	}
	require.NoError(t, f.db.Create(stranger).Error)

	_, err = f.service.GetRequestByID(context.Background(), response.ID, stranger.ID)
	assert.ErrorIs(t, err, domain.ErrNotRequestOwner)
}

func TestGetRequestsForItemOwnerOnly(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
		ItemID:         f.item.ID,
		QuantityNeeded: 2.0,
	}, f.recipient.ID)
	require.NoError(t, err)

	requests, err := f.service.GetRequestsForItem(context.Background(), f.item.ID, f.supplier.ID)
	require.NoError(t, err)
	assert.Len(t, requests, 1)

	_, err = f.service.GetRequestsForItem(context.Background(), f.item.ID, f.recipient.ID)
	assert.ErrorIs(t, err, domain.ErrNotListingOwner)
}

func TestGetMyRequests(t *testing.T) {
	f := newRequestFixture(t)

	for i := 0; i < 3; i++ {
		_, err := f.service.CreateRequest(context.Background(), domain.CreateRequestRequest{
			ItemID:         f.item.ID,
			QuantityNeeded: 1.0,
		}, f.recipient.ID)
		require.NoError(t, err)
	}

	requests, count, err := f.service.GetMyRequests(context.Background(), f.recipient.ID, 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.Len(t, requests, 2)
}
