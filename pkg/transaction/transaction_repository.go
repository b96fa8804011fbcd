package transaction

import (
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	// TransactionRepository spans the rows a transaction touches during
	// validation and completion (item, requests, roles), so every check and
	// write can run on a single transaction handle.
	TransactionRepository interface {
		WithTransaction(ctx context.Context, fn func(txRepo TransactionRepository) error) error
		CreateTransaction(ctx context.Context, transaction *entities.Transaction) error
		GetTransactionByID(ctx context.Context, id uint) (*entities.Transaction, error)
		GetTransactionByItem(ctx context.Context, itemID uint) (*entities.Transaction, error)
		GetTransactionsByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Transaction, int64, error)
		UpdateTransactionStatus(ctx context.Context, id uint, status entities.TransactionStatus) error
		GetItem(ctx context.Context, itemID uint) (*entities.FoodItem, error)
		GetSelectedRequests(ctx context.Context, itemID uint) ([]*entities.Request, error)
		UpdateRequestStatus(ctx context.Context, id uint, status entities.RequestStatus) error
		SetItemStatus(ctx context.Context, itemID uint, status entities.FoodStatus) error
		HasRole(ctx context.Context, userID uint, role entities.Role) (bool, error)
	}

	transactionRepository struct {
		db *gorm.DB
	}
)

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) WithTransaction(ctx context.Context, fn func(txRepo TransactionRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&transactionRepository{db: tx})
	})
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, transaction *entities.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id uint) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Preload("Item").Where("id = ?", id).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) GetTransactionByItem(ctx context.Context, itemID uint) (*entities.Transaction, error) {
	var transaction entities.Transaction
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&transaction).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *transactionRepository) GetTransactionsByUser(ctx context.Context, userID uint, page, limit int) ([]*entities.Transaction, int64, error) {
	var transactions []*entities.Transaction
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("supplier_id = ? OR recipient_id = ?", userID, userID)

	if err := query.Model(&entities.Transaction{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Item").Offset(offset).Limit(limit).
		Order("created_at desc").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *transactionRepository) UpdateTransactionStatus(ctx context.Context, id uint, status entities.TransactionStatus) error {
	return r.db.WithContext(ctx).Model(&entities.Transaction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *transactionRepository) GetItem(ctx context.Context, itemID uint) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *transactionRepository) GetSelectedRequests(ctx context.Context, itemID uint) ([]*entities.Request, error) {
	var requests []*entities.Request
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, entities.RequestStatusSelected).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *transactionRepository) UpdateRequestStatus(ctx context.Context, id uint, status entities.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&entities.Request{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *transactionRepository) SetItemStatus(ctx context.Context, itemID uint, status entities.FoodStatus) error {
	return r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("id = ?", itemID).
		Update("status", status).Error
}

func (r *transactionRepository) HasRole(ctx context.Context, userID uint, role entities.Role) (bool, error) {
	var row entities.UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
