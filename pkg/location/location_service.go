package location

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	LocationService interface {
		CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (domain.LocationResponse, error)
		GetLocations(ctx context.Context, page, limit int) ([]domain.LocationResponse, int64, error)
		DeleteLocation(ctx context.Context, id uint) error
	}

	locationService struct {
		locationRepository LocationRepository
	}
)

func NewLocationService(locationRepository LocationRepository) LocationService {
	return &locationService{locationRepository: locationRepository}
}

func (s *locationService) CreateLocation(ctx context.Context, req domain.CreateLocationRequest) (domain.LocationResponse, error) {
	location := &entities.Location{
		Province:      req.Province,
		City:          req.City,
		ZipCode:       req.ZipCode,
		StreetAddress: req.StreetAddress,
	}

	if err := s.locationRepository.CreateLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	return toLocationResponse(location), nil
}

func (s *locationService) GetLocations(ctx context.Context, page, limit int) ([]domain.LocationResponse, int64, error) {
	locations, count, err := s.locationRepository.GetLocations(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.LocationResponse, 0, len(locations))
	for _, location := range locations {
		response = append(response, toLocationResponse(location))
	}

	return response, count, nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id uint) error {
	if _, err := s.locationRepository.GetLocationByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}

	references, err := s.locationRepository.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if references > 0 {
		return domain.ErrLocationInUse
	}

	return s.locationRepository.DeleteLocation(ctx, id)
}

func toLocationResponse(location *entities.Location) domain.LocationResponse {
	return domain.LocationResponse{
		ID:            location.ID,
		Province:      location.Province,
		City:          location.City,
		ZipCode:       location.ZipCode,
		StreetAddress: location.StreetAddress,
	}
}
