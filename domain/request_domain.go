package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateRequest       = "request created successfully"
	MessageSuccessUpdateRequestStatus = "request status updated successfully"
	MessageSuccessGetRequests         = "requests retrieved successfully"

	MessageFailedCreateRequest       = "failed to create request"
	MessageFailedUpdateRequestStatus = "failed to update request status"
	MessageFailedGetRequests         = "failed to retrieve requests"

	ErrRequestNotFound      = errors.New("request not found")
	ErrQuantityExceeded     = errors.New("quantity exceeds the available quantity of the food item")
	ErrInvalidUrgency       = errors.New("urgency level must be Low, Medium or High")
	ErrInvalidRequestStatus = errors.New("invalid request status")
	ErrNotRequestOwner      = errors.New("request belongs to another user")
)

type (
	CreateRequestRequest struct {
		ItemID         uint    `json:"item_id" validate:"required"`
		QuantityNeeded float64 `json:"quantity_needed" validate:"required"`
		UrgencyLevel   string  `json:"urgency_level"`
	}

	UpdateRequestStatusRequest struct {
		Status string `json:"status" validate:"required"`
	}

	RequestResponse struct {
		ID             uint             `json:"id"`
		ItemID         uint             `json:"item_id"`
		Item           *ListingResponse `json:"item,omitempty"`
		RecipientID    uint             `json:"recipient_id"`
		QuantityNeeded float64          `json:"quantity_needed"`
		UrgencyLevel   string           `json:"urgency_level"`
		Status         string           `json:"status"`
		CreatedAt      time.Time        `json:"created_at"`
	}
)
