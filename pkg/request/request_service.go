package request

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	RequestService interface {
		CreateRequest(ctx context.Context, req domain.CreateRequestRequest, recipientID uint) (domain.RequestResponse, error)
		UpdateStatus(ctx context.Context, id uint, req domain.UpdateRequestStatusRequest, userID uint) error
		GetRequestByID(ctx context.Context, id uint, userID uint) (domain.RequestResponse, error)
		GetMyRequests(ctx context.Context, recipientID uint, page, limit int) ([]domain.RequestResponse, int64, error)
		GetRequestsForItem(ctx context.Context, itemID uint, userID uint) ([]domain.RequestResponse, error)
	}

	requestService struct {
		requestRepository RequestRepository
	}
)

func NewRequestService(requestRepository RequestRepository) RequestService {
	return &requestService{requestRepository: requestRepository}
}

// CreateRequest checks the requested quantity against the item's available
// quantity at this instant only; it reserves nothing.
func (s *requestService) CreateRequest(ctx context.Context, req domain.CreateRequestRequest, recipientID uint) (domain.RequestResponse, error) {
	urgency := entities.UrgencyMedium
	if req.UrgencyLevel != "" {
		urgency = entities.UrgencyLevel(req.UrgencyLevel)
		if !urgency.Valid() {
			return domain.RequestResponse{}, domain.ErrInvalidUrgency
		}
	}

	if req.QuantityNeeded <= 0 {
		return domain.RequestResponse{}, domain.ErrInvalidQuantity
	}

	request := &entities.Request{
		ItemID:         req.ItemID,
		RecipientID:    recipientID,
		QuantityNeeded: req.QuantityNeeded,
		UrgencyLevel:   urgency,
		Status:         entities.RequestStatusPending,
	}

	err := s.requestRepository.WithTransaction(ctx, func(txRepo RequestRepository) error {
		item, err := txRepo.GetItem(ctx, req.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFoodItemNotFound
			}
			return err
		}

		if req.QuantityNeeded > item.QuantityAvailable {
			return domain.ErrQuantityExceeded
		}

		return txRepo.CreateRequest(ctx, request)
	})
	if err != nil {
		return domain.RequestResponse{}, err
	}

	return toRequestResponse(request), nil
}

// UpdateStatus applies the sync rule: moving a request to Selected shifts its
// item Unselected -> Pending, moving it to Cancelled shifts the item
// Pending -> Unselected. Both shifts are conditional on the item's current
// status, so they never force a state. Request row and item row change in the
// same database transaction.
func (s *requestService) UpdateStatus(ctx context.Context, id uint, req domain.UpdateRequestStatusRequest, userID uint) error {
	status := entities.RequestStatus(req.Status)
	if !status.Valid() {
		return domain.ErrInvalidRequestStatus
	}

	return s.requestRepository.WithTransaction(ctx, func(txRepo RequestRepository) error {
		request, err := txRepo.GetRequestByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrRequestNotFound
			}
			return err
		}

		item, err := txRepo.GetItem(ctx, request.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFoodItemNotFound
			}
			return err
		}

		// cancelling is the recipient's call, every other transition is the
		// item owner's
		if status == entities.RequestStatusCancelled {
			if request.RecipientID != userID {
				return domain.ErrNotRequestOwner
			}
		} else if item.UserID != userID {
			return domain.ErrNotListingOwner
		}

		if err := txRepo.UpdateRequestStatus(ctx, id, status); err != nil {
			return err
		}

		switch status {
		case entities.RequestStatusSelected:
			return txRepo.ShiftItemStatus(ctx, item.ID, entities.FoodStatusUnselected, entities.FoodStatusPending)
		case entities.RequestStatusCancelled:
			return txRepo.ShiftItemStatus(ctx, item.ID, entities.FoodStatusPending, entities.FoodStatusUnselected)
		}
		return nil
	})
}

func (s *requestService) GetRequestByID(ctx context.Context, id uint, userID uint) (domain.RequestResponse, error) {
	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RequestResponse{}, domain.ErrRequestNotFound
		}
		return domain.RequestResponse{}, err
	}

	if request.RecipientID != userID && (request.Item == nil || request.Item.UserID != userID) {
		return domain.RequestResponse{}, domain.ErrNotRequestOwner
	}

	return toRequestResponse(request), nil
}

func (s *requestService) GetMyRequests(ctx context.Context, recipientID uint, page, limit int) ([]domain.RequestResponse, int64, error) {
	requests, count, err := s.requestRepository.GetRequestsByRecipient(ctx, recipientID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toRequestResponse(request))
	}

	return response, count, nil
}

// GetRequestsForItem lists every request on a listing for its owner, oldest
// first.
func (s *requestService) GetRequestsForItem(ctx context.Context, itemID uint, userID uint) ([]domain.RequestResponse, error) {
	item, err := s.requestRepository.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodItemNotFound
		}
		return nil, err
	}

	if item.UserID != userID {
		return nil, domain.ErrNotListingOwner
	}

	requests, err := s.requestRepository.GetRequestsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.RequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, toRequestResponse(request))
	}
	return response, nil
}

func toRequestResponse(request *entities.Request) domain.RequestResponse {
	response := domain.RequestResponse{
		ID:             request.ID,
		ItemID:         request.ItemID,
		RecipientID:    request.RecipientID,
		QuantityNeeded: request.QuantityNeeded,
		UrgencyLevel:   string(request.UrgencyLevel),
		Status:         string(request.Status),
		CreatedAt:      request.CreatedAt,
	}

	if request.Item != nil {
		response.Item = &domain.ListingResponse{
			ID:                request.Item.ID,
			UserID:            request.Item.UserID,
			FoodType:          string(request.Item.FoodType),
			Name:              request.Item.Name,
			QuantityAvailable: request.Item.QuantityAvailable,
			ExpiryDate:        request.Item.ExpiryDate,
			DeliveryOption:    string(request.Item.DeliveryOption),
			LocationID:        request.Item.LocationID,
			Description:       request.Item.Description,
			Status:            string(request.Item.Status),
			ImageURL:          request.Item.ImageURL,
			CreatedAt:         request.Item.CreatedAt,
		}
	}

	return response
}
