package domain

import "errors"

var (
	MessageSuccessCreateLocation = "location created successfully"
	MessageSuccessGetLocations   = "locations retrieved successfully"
	MessageSuccessDeleteLocation = "location deleted successfully"

	MessageFailedCreateLocation = "failed to create location"
	MessageFailedGetLocations   = "failed to retrieve locations"
	MessageFailedDeleteLocation = "failed to delete location"

	ErrLocationNotFound = errors.New("location not found")
	ErrLocationInUse    = errors.New("location is still referenced by a user or food item")
)

type (
	CreateLocationRequest struct {
		Province      string `json:"province" validate:"required"`
		City          string `json:"city" validate:"required"`
		ZipCode       string `json:"zip_code" validate:"required"`
		StreetAddress string `json:"street_address" validate:"required"`
	}

	LocationResponse struct {
		ID            uint   `json:"id"`
		Province      string `json:"province"`
		City          string `json:"city"`
		ZipCode       string `json:"zip_code"`
		StreetAddress string `json:"street_address"`
	}
)
