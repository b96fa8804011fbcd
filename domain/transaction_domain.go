package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTransaction   = "transaction created successfully"
	MessageSuccessCompleteTransaction = "transaction completed successfully"
	MessageSuccessGetTransactions     = "transactions retrieved successfully"

	MessageFailedCreateTransaction   = "failed to create transaction"
	MessageFailedCompleteTransaction = "failed to complete transaction"
	MessageFailedGetTransactions     = "failed to retrieve transactions"

	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrInvalidParties       = errors.New("transaction parties do not match the item owner and its selected request")
	ErrDuplicateTransaction = errors.New("a transaction already exists for this food item")
	ErrNotTransactionParty  = errors.New("user is not a party of this transaction")
	ErrTransactionFinished  = errors.New("transaction is already completed")
)

type (
	CreateTransactionRequest struct {
		ItemID      uint    `json:"item_id" validate:"required"`
		SupplierID  uint    `json:"supplier_id" validate:"required"`
		RecipientID uint    `json:"recipient_id" validate:"required"`
		Quantity    float64 `json:"quantity" validate:"required"`
	}

	TransactionResponse struct {
		ID          uint             `json:"id"`
		ItemID      uint             `json:"item_id"`
		Item        *ListingResponse `json:"item,omitempty"`
		SupplierID  uint             `json:"supplier_id"`
		RecipientID uint             `json:"recipient_id"`
		Quantity    float64          `json:"quantity"`
		Status      string           `json:"status"`
		CreatedAt   time.Time        `json:"created_at"`
	}
)
