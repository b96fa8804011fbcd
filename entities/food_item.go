package entities

import "time"

type FoodType string

const (
	FoodTypeVegetables FoodType = "Vegetables"
	FoodTypeFruits     FoodType = "Fruits"
	FoodTypeDairy      FoodType = "Dairy"
	FoodTypeBakery     FoodType = "Bakery"
	FoodTypeMeat       FoodType = "Meat"
	FoodTypeGrains     FoodType = "Grains"
	FoodTypeBeverages  FoodType = "Beverages"
	FoodTypeOther      FoodType = "Other"
)

func (t FoodType) Valid() bool {
	switch t {
	case FoodTypeVegetables, FoodTypeFruits, FoodTypeDairy, FoodTypeBakery,
		FoodTypeMeat, FoodTypeGrains, FoodTypeBeverages, FoodTypeOther:
		return true
	}
	return false
}

type DeliveryOption string

const (
	DeliveryOptionPickup   DeliveryOption = "Pickup"
	DeliveryOptionDelivery DeliveryOption = "Delivery"
)

func (d DeliveryOption) Valid() bool {
	return d == DeliveryOptionPickup || d == DeliveryOptionDelivery
}

type FoodStatus string

const (
	FoodStatusUnselected FoodStatus = "Unselected"
	FoodStatusPending    FoodStatus = "Pending"
	FoodStatusSelected   FoodStatus = "Selected"
	FoodStatusCompleted  FoodStatus = "Completed"
)

func (s FoodStatus) Valid() bool {
	switch s {
	case FoodStatusUnselected, FoodStatusPending, FoodStatusSelected, FoodStatusCompleted:
		return true
	}
	return false
}

// FoodItem is a surplus listing. QuantityAvailable is never decremented by
// requests or transactions; both only check it at creation time.
type FoodItem struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	UserID            uint           `gorm:"index" json:"user_id"`
	FoodType          FoodType       `json:"food_type"`
	Name              string         `json:"name"`
	QuantityAvailable float64        `json:"quantity_available"`
	ExpiryDate        time.Time      `json:"expiry_date"`
	DeliveryOption    DeliveryOption `json:"delivery_option"`
	LocationID        uint           `json:"location_id"`
	Description       string         `gorm:"type:text" json:"description"`
	Status            FoodStatus     `gorm:"index;default:'Unselected'" json:"status"`
	ImageURL          string         `json:"image_url,omitempty"`

	User     *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT" json:"location,omitempty"`
	Timestamp
}
