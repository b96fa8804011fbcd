package transaction

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	TransactionService interface {
		CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest) (domain.TransactionResponse, error)
		CompleteTransaction(ctx context.Context, id uint, userID uint) error
		GetTransactionByID(ctx context.Context, id uint, userID uint) (domain.TransactionResponse, error)
		GetMyTransactions(ctx context.Context, userID uint, page, limit int) ([]domain.TransactionResponse, int64, error)
	}

	transactionService struct {
		transactionRepository TransactionRepository
	}
)

func NewTransactionService(transactionRepository TransactionRepository) TransactionService {
	return &transactionService{transactionRepository: transactionRepository}
}

// CreateTransaction validates parties, roles, quantity and uniqueness inside
// one database transaction. The unique index on transactions.item_id decides
// concurrent attempts: exactly one insert wins, the loser maps to
// ErrDuplicateTransaction.
func (s *transactionService) CreateTransaction(ctx context.Context, req domain.CreateTransactionRequest) (domain.TransactionResponse, error) {
	if req.Quantity <= 0 {
		return domain.TransactionResponse{}, domain.ErrInvalidQuantity
	}

	transaction := &entities.Transaction{
		ItemID:      req.ItemID,
		SupplierID:  req.SupplierID,
		RecipientID: req.RecipientID,
		Quantity:    req.Quantity,
		Status:      entities.TransactionStatusInProgress,
	}

	err := s.transactionRepository.WithTransaction(ctx, func(txRepo TransactionRepository) error {
		item, err := txRepo.GetItem(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFoodItemNotFound
			}
			return err
		}

		if req.SupplierID != item.UserID {
			return domain.ErrInvalidParties
		}

		// exactly one Selected request must exist, and it names the recipient
		selected, err := txRepo.GetSelectedRequests(ctx, item.ID)
		if err != nil {
			return err
		}
		if len(selected) != 1 || selected[0].RecipientID != req.RecipientID {
			return domain.ErrInvalidParties
		}

		supplierOK, err := txRepo.HasRole(ctx, req.SupplierID, entities.RoleSupplier)
		if err != nil {
			return err
		}
		recipientOK, err := txRepo.HasRole(ctx, req.RecipientID, entities.RoleRecipient)
		if err != nil {
			return err
		}
		if !supplierOK || !recipientOK {
			return domain.ErrInvalidParties
		}

		if req.Quantity > item.QuantityAvailable {
			return domain.ErrQuantityExceeded
		}

		if _, err := txRepo.GetTransactionByItem(ctx, item.ID); err == nil {
			return domain.ErrDuplicateTransaction
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := txRepo.CreateTransaction(ctx, transaction); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrDuplicateTransaction
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.TransactionResponse{}, err
	}

	return toTransactionResponse(transaction), nil
}

// CompleteTransaction finalizes the exchange: transaction, its Selected
// request and the item all move to Completed in one database transaction.
func (s *transactionService) CompleteTransaction(ctx context.Context, id uint, userID uint) error {
	return s.transactionRepository.WithTransaction(ctx, func(txRepo TransactionRepository) error {
		transaction, err := txRepo.GetTransactionByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return err
		}

		if transaction.SupplierID != userID && transaction.RecipientID != userID {
			return domain.ErrNotTransactionParty
		}

		if transaction.Status == entities.TransactionStatusCompleted {
			return domain.ErrTransactionFinished
		}

		if err := txRepo.UpdateTransactionStatus(ctx, id, entities.TransactionStatusCompleted); err != nil {
			return err
		}

		selected, err := txRepo.GetSelectedRequests(ctx, transaction.ItemID)
		if err != nil {
			return err
		}
		for _, request := range selected {
			if request.RecipientID != transaction.RecipientID {
				continue
			}
			if err := txRepo.UpdateRequestStatus(ctx, request.ID, entities.RequestStatusCompleted); err != nil {
				return err
			}
		}

		return txRepo.SetItemStatus(ctx, transaction.ItemID, entities.FoodStatusCompleted)
	})
}

func (s *transactionService) GetTransactionByID(ctx context.Context, id uint, userID uint) (domain.TransactionResponse, error) {
	transaction, err := s.transactionRepository.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TransactionResponse{}, domain.ErrTransactionNotFound
		}
		return domain.TransactionResponse{}, err
	}

	if transaction.SupplierID != userID && transaction.RecipientID != userID {
		return domain.TransactionResponse{}, domain.ErrNotTransactionParty
	}

	return toTransactionResponse(transaction), nil
}

func (s *transactionService) GetMyTransactions(ctx context.Context, userID uint, page, limit int) ([]domain.TransactionResponse, int64, error) {
	transactions, count, err := s.transactionRepository.GetTransactionsByUser(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		response = append(response, toTransactionResponse(transaction))
	}

	return response, count, nil
}

func toTransactionResponse(transaction *entities.Transaction) domain.TransactionResponse {
	response := domain.TransactionResponse{
		ID:          transaction.ID,
		ItemID:      transaction.ItemID,
		SupplierID:  transaction.SupplierID,
		RecipientID: transaction.RecipientID,
		Quantity:    transaction.Quantity,
		Status:      string(transaction.Status),
		CreatedAt:   transaction.CreatedAt,
	}

	if transaction.Item != nil {
		response.Item = &domain.ListingResponse{
			ID:                transaction.Item.ID,
			UserID:            transaction.Item.UserID,
			FoodType:          string(transaction.Item.FoodType),
			Name:              transaction.Item.Name,
			QuantityAvailable: transaction.Item.QuantityAvailable,
			ExpiryDate:        transaction.Item.ExpiryDate,
			DeliveryOption:    string(transaction.Item.DeliveryOption),
			LocationID:        transaction.Item.LocationID,
			Description:       transaction.Item.Description,
			Status:            string(transaction.Item.Status),
			ImageURL:          transaction.Item.ImageURL,
			CreatedAt:         transaction.Item.CreatedAt,
		}
	}

	return response
}
