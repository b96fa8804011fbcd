package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateListing       = "food listing created successfully"
	MessageSuccessUpdateListing       = "food listing updated successfully"
	MessageSuccessUpdateListingStatus = "food listing status updated successfully"
	MessageSuccessDeleteListing       = "food listing deleted successfully"
	MessageSuccessGetListings         = "food listings retrieved successfully"
	MessageSuccessUploadListingImage  = "food listing image uploaded successfully"
	MessageSuccessGetDashboardStats   = "dashboard statistics retrieved successfully"

	MessageFailedCreateListing       = "failed to create food listing"
	MessageFailedUpdateListing       = "failed to update food listing"
	MessageFailedUpdateListingStatus = "failed to update food listing status"
	MessageFailedDeleteListing       = "failed to delete food listing"
	MessageFailedGetListings         = "failed to retrieve food listings"
	MessageFailedUploadListingImage  = "failed to upload food listing image"
	MessageFailedGetDashboardStats   = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound      = errors.New("food item not found")
	ErrInvalidFoodType       = errors.New("food type is not one of the allowed values")
	ErrInvalidDeliveryOption = errors.New("delivery option must be Pickup or Delivery")
	ErrInvalidQuantity       = errors.New("quantity must not be negative")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrInvalidFoodStatus     = errors.New("invalid food listing status")
	ErrNotListingOwner       = errors.New("food listing belongs to another user")
)

type (
	CreateListingRequest struct {
		FoodType       string  `json:"food_type" validate:"required"`
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity_available"`
		ExpiryDate     string  `json:"expiry_date" validate:"required"`
		DeliveryOption string  `json:"delivery_option" validate:"required"`
		LocationID     uint    `json:"location_id" validate:"required"`
		Description    string  `json:"description"`
	}

	UpdateListingRequest struct {
		Name        string  `json:"name" validate:"omitempty"`
		Quantity    float64 `json:"quantity_available" validate:"omitempty"`
		ExpiryDate  string  `json:"expiry_date" validate:"omitempty"`
		Description string  `json:"description" validate:"omitempty"`
	}

	UpdateListingStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	UploadListingImageRequest struct {
		ItemID uint                  `json:"item_id" form:"item_id" validate:"required"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ListingResponse struct {
		ID                uint              `json:"id"`
		UserID            uint              `json:"user_id"`
		FoodType          string            `json:"food_type"`
		Name              string            `json:"name"`
		QuantityAvailable float64           `json:"quantity_available"`
		ExpiryDate        time.Time         `json:"expiry_date"`
		DeliveryOption    string            `json:"delivery_option"`
		LocationID        uint              `json:"location_id"`
		Location          *LocationResponse `json:"location,omitempty"`
		Description       string            `json:"description"`
		Status            string            `json:"status"`
		ImageURL          string            `json:"image_url,omitempty"`
		CreatedAt         time.Time         `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalListings      int `json:"total_listings"`
		UnselectedListings int `json:"unselected_listings"`
		PendingListings    int `json:"pending_listings"`
		SelectedListings   int `json:"selected_listings"`
		CompletedListings  int `json:"completed_listings"`
	}
)
