package food

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/utils/storage"
	"FoodBridge-Backend/pkg/location"
	"FoodBridge-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest, userID uint) (domain.ListingResponse, error)
		UpdateListing(ctx context.Context, id uint, req domain.UpdateListingRequest, userID uint) error
		UpdateListingStatus(ctx context.Context, id uint, req domain.UpdateListingStatusRequest, userID uint) error
		DeleteListing(ctx context.Context, id uint, userID uint) error
		GetListingByID(ctx context.Context, id uint) (domain.ListingResponse, error)
		GetMyListings(ctx context.Context, userID uint, status string, page, limit int) ([]domain.ListingResponse, int64, error)
		BrowseListings(ctx context.Context, foodType string, page, limit int) ([]domain.ListingResponse, int64, error)
		UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest, userID uint) error
		GetDashboardStats(ctx context.Context, userID uint) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository     FoodRepository
		userRepository     user.UserRepository
		locationRepository location.LocationRepository
		s3                 storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, userRepository user.UserRepository, locationRepository location.LocationRepository, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:     foodRepository,
		userRepository:     userRepository,
		locationRepository: locationRepository,
		s3:                 s3,
	}
}

func (s *foodService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID uint) (domain.ListingResponse, error) {
	foodType := entities.FoodType(req.FoodType)
	if !foodType.Valid() {
		return domain.ListingResponse{}, domain.ErrInvalidFoodType
	}

	deliveryOption := entities.DeliveryOption(req.DeliveryOption)
	if !deliveryOption.Valid() {
		return domain.ListingResponse{}, domain.ErrInvalidDeliveryOption
	}

	if req.Quantity < 0 {
		return domain.ListingResponse{}, domain.ErrInvalidQuantity
	}

	expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.ListingResponse{}, domain.ErrInvalidExpiryDate
	}

	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ListingResponse{}, domain.ErrUserNotFound
		}
		return domain.ListingResponse{}, err
	}

	if _, err := s.locationRepository.GetLocationByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ListingResponse{}, domain.ErrLocationNotFound
		}
		return domain.ListingResponse{}, err
	}

	item := &entities.FoodItem{
		UserID:            userID,
		FoodType:          foodType,
		Name:              req.Name,
		QuantityAvailable: req.Quantity,
		ExpiryDate:        expiryDate,
		DeliveryOption:    deliveryOption,
		LocationID:        req.LocationID,
		Description:       req.Description,
		Status:            entities.FoodStatusUnselected,
	}

	if err := s.foodRepository.AddFoodItem(ctx, item); err != nil {
		return domain.ListingResponse{}, err
	}

	return toListingResponse(item), nil
}

func (s *foodService) UpdateListing(ctx context.Context, id uint, req domain.UpdateListingRequest, userID uint) error {
	item, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if item.UserID != userID {
		return domain.ErrNotListingOwner
	}

	if req.Name != "" {
		item.Name = req.Name
	}

	if req.Quantity != 0 {
		if req.Quantity < 0 {
			return domain.ErrInvalidQuantity
		}
		item.QuantityAvailable = req.Quantity
	}

	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = expiryDate
	}

	if req.Description != "" {
		item.Description = req.Description
	}

	return s.foodRepository.UpdateFoodItem(ctx, item)
}

// UpdateListingStatus is the supplier's explicit path for moving a listing to
// Selected or back; the request-driven sync rule lives in the request service.
func (s *foodService) UpdateListingStatus(ctx context.Context, id uint, req domain.UpdateListingStatusRequest, userID uint) error {
	status := entities.FoodStatus(req.Status)
	if !status.Valid() {
		return domain.ErrInvalidFoodStatus
	}

	item, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if item.UserID != userID {
		return domain.ErrNotListingOwner
	}

	item.Status = status
	return s.foodRepository.UpdateFoodItem(ctx, item)
}

func (s *foodService) DeleteListing(ctx context.Context, id uint, userID uint) error {
	item, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if item.UserID != userID {
		return domain.ErrNotListingOwner
	}

	if item.ImageURL != "" && s.s3 != nil {
		objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetListingByID(ctx context.Context, id uint) (domain.ListingResponse, error) {
	item, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ListingResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.ListingResponse{}, err
	}

	return toListingResponse(item), nil
}

func (s *foodService) GetMyListings(ctx context.Context, userID uint, status string, page, limit int) ([]domain.ListingResponse, int64, error) {
	foodStatus := entities.FoodStatus(status)
	if status != "" && status != "all" && !foodStatus.Valid() {
		return nil, 0, domain.ErrInvalidFoodStatus
	}
	if status == "all" {
		foodStatus = ""
	}

	items, count, err := s.foodRepository.GetFoodItemsByUser(ctx, userID, foodStatus, page, limit)
	if err != nil {
		return nil, 0, err
	}

	return toListingResponses(items), count, nil
}

func (s *foodService) BrowseListings(ctx context.Context, foodType string, page, limit int) ([]domain.ListingResponse, int64, error) {
	itemType := entities.FoodType(foodType)
	if foodType != "" && !itemType.Valid() {
		return nil, 0, domain.ErrInvalidFoodType
	}

	items, count, err := s.foodRepository.GetAvailableFoodItems(ctx, itemType, page, limit)
	if err != nil {
		return nil, 0, err
	}

	return toListingResponses(items), count, nil
}

func (s *foodService) UploadListingImage(ctx context.Context, req domain.UploadListingImageRequest, userID uint) error {
	item, err := s.foodRepository.GetFoodItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if item.UserID != userID {
		return domain.ErrNotListingOwner
	}

	// fresh object key per upload so stale CDN copies never shadow the image
	fileName := fmt.Sprintf("listing-%d-%s", item.ID, uuid.New().String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "listings", storage.AllowImage...)
	if err != nil {
		return err
	}

	if item.ImageURL != "" {
		oldKey := s.s3.GetObjectKeyFromLink(item.ImageURL)
		if oldKey != "" {
			_ = s.s3.DeleteFile(oldKey)
		}
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.foodRepository.UpdateFoodItem(ctx, item)
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID uint) (domain.DashboardStatsResponse, error) {
	stats, err := s.foodRepository.GetDashboardStats(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	total := int64(0)
	for _, count := range stats {
		total += count
	}

	return domain.DashboardStatsResponse{
		TotalListings:      int(total),
		UnselectedListings: int(stats[entities.FoodStatusUnselected]),
		PendingListings:    int(stats[entities.FoodStatusPending]),
		SelectedListings:   int(stats[entities.FoodStatusSelected]),
		CompletedListings:  int(stats[entities.FoodStatusCompleted]),
	}, nil
}

func toListingResponse(item *entities.FoodItem) domain.ListingResponse {
	response := domain.ListingResponse{
		ID:                item.ID,
		UserID:            item.UserID,
		FoodType:          string(item.FoodType),
		Name:              item.Name,
		QuantityAvailable: item.QuantityAvailable,
		ExpiryDate:        item.ExpiryDate,
		DeliveryOption:    string(item.DeliveryOption),
		LocationID:        item.LocationID,
		Description:       item.Description,
		Status:            string(item.Status),
		ImageURL:          item.ImageURL,
		CreatedAt:         item.CreatedAt,
	}

	if item.Location != nil {
		response.Location = &domain.LocationResponse{
			ID:            item.Location.ID,
			Province:      item.Location.Province,
			City:          item.Location.City,
			ZipCode:       item.Location.ZipCode,
			StreetAddress: item.Location.StreetAddress,
		}
	}

	return response
}

func toListingResponses(items []*entities.FoodItem) []domain.ListingResponse {
	response := make([]domain.ListingResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toListingResponse(item))
	}
	return response
}
