package request

import (
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// RequestRepository also exposes the food-item reads and conditional
	// status writes the sync rule needs, so a whole status update runs
	// against one transaction handle.
	RequestRepository interface {
		WithTransaction(ctx context.Context, fn func(txRepo RequestRepository) error) error
		CreateRequest(ctx context.Context, request *entities.Request) error
		GetRequestByID(ctx context.Context, id uint) (*entities.Request, error)
		GetRequestsByRecipient(ctx context.Context, recipientID uint, page, limit int) ([]*entities.Request, int64, error)
		GetRequestsByItem(ctx context.Context, itemID uint) ([]*entities.Request, error)
		UpdateRequestStatus(ctx context.Context, id uint, status entities.RequestStatus) error
		GetItem(ctx context.Context, itemID uint) (*entities.FoodItem, error)
		ShiftItemStatus(ctx context.Context, itemID uint, from, to entities.FoodStatus) error
	}

	requestRepository struct {
		db *gorm.DB
	}
)

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) WithTransaction(ctx context.Context, fn func(txRepo RequestRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&requestRepository{db: tx})
	})
}

func (r *requestRepository) CreateRequest(ctx context.Context, request *entities.Request) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetRequestByID(ctx context.Context, id uint) (*entities.Request, error) {
	var request entities.Request
	if err := r.db.WithContext(ctx).Preload("Item").Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetRequestsByRecipient(ctx context.Context, recipientID uint, page, limit int) ([]*entities.Request, int64, error) {
	var requests []*entities.Request
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)

	if err := query.Model(&entities.Request{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Item").Offset(offset).Limit(limit).
		Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

func (r *requestRepository) GetRequestsByItem(ctx context.Context, itemID uint) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).
		Order("created_at asc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) UpdateRequestStatus(ctx context.Context, id uint, status entities.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&entities.Request{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *requestRepository) GetItem(ctx context.Context, itemID uint) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ShiftItemStatus moves the item from one status to another and is a no-op
// when the item is not currently in the source status.
func (r *requestRepository) ShiftItemStatus(ctx context.Context, itemID uint, from, to entities.FoodStatus) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ? AND status = ?", itemID, from).
		Update("status", to).Error
}
