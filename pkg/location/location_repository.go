package location

import (
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		CreateLocation(ctx context.Context, location *entities.Location) error
		GetLocationByID(ctx context.Context, id uint) (*entities.Location, error)
		GetLocations(ctx context.Context, page, limit int) ([]*entities.Location, int64, error)
		DeleteLocation(ctx context.Context, id uint) error
		CountReferences(ctx context.Context, id uint) (int64, error)
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id uint) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetLocations(ctx context.Context, page, limit int) ([]*entities.Location, int64, error) {
	var locations []*entities.Location
	var count int64

	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Location{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id asc").Find(&locations).Error; err != nil {
		return nil, 0, err
	}

	return locations, count, nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{}).Error
}

// CountReferences reports how many users and food items still point at the
// location. Deletion is restricted while the count is non-zero.
func (r *locationRepository) CountReferences(ctx context.Context, id uint) (int64, error) {
	var users, items int64

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("location_id = ?", id).Count(&users).Error; err != nil {
		return 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Where("location_id = ?", id).Count(&items).Error; err != nil {
		return 0, err
	}

	return users + items, nil
}
