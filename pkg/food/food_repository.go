package food

import (
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodItem(ctx context.Context, item *entities.FoodItem) error
		GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error)
		UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error
		DeleteFoodItem(ctx context.Context, id uint) error
		GetFoodItemsByUser(ctx context.Context, userID uint, status entities.FoodStatus, page, limit int) ([]*entities.FoodItem, int64, error)
		GetAvailableFoodItems(ctx context.Context, foodType entities.FoodType, page, limit int) ([]*entities.FoodItem, int64, error)
		GetDashboardStats(ctx context.Context, userID uint) (map[entities.FoodStatus]int64, error)
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *foodRepository) GetFoodItemByID(ctx context.Context, id uint) (*entities.FoodItem, error) {
	var item entities.FoodItem
	if err := r.db.WithContext(ctx).Preload("Location").Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *foodRepository) UpdateFoodItem(ctx context.Context, item *entities.FoodItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *foodRepository) DeleteFoodItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodItem{}).Error
}

func (r *foodRepository) GetFoodItemsByUser(ctx context.Context, userID uint, status entities.FoodStatus, page, limit int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

// GetAvailableFoodItems lists Unselected listings for the marketplace browse
// page, soonest expiry first.
func (r *foodRepository) GetAvailableFoodItems(ctx context.Context, foodType entities.FoodType, page, limit int) ([]*entities.FoodItem, int64, error) {
	var items []*entities.FoodItem
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("status = ?", entities.FoodStatusUnselected)
	if foodType != "" {
		query = query.Where("food_type = ?", foodType)
	}

	if err := query.Model(&entities.FoodItem{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Preload("Location").Offset(offset).Limit(limit).
		Order("expiry_date asc").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *foodRepository) GetDashboardStats(ctx context.Context, userID uint) (map[entities.FoodStatus]int64, error) {
	type row struct {
		Status entities.FoodStatus
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).Model(&entities.FoodItem{}).
		Select("status, count(*) as total").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := make(map[entities.FoodStatus]int64, len(rows))
	for _, r := range rows {
		stats[r.Status] = r.Total
	}
	return stats, nil
}
