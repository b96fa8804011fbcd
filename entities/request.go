package entities

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusSelected  RequestStatus = "Selected"
	RequestStatusCompleted RequestStatus = "Completed"
	RequestStatusCancelled RequestStatus = "Cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusSelected, RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "Low"
	UrgencyMedium UrgencyLevel = "Medium"
	UrgencyHigh   UrgencyLevel = "High"
)

func (u UrgencyLevel) Valid() bool {
	return u == UrgencyLow || u == UrgencyMedium || u == UrgencyHigh
}

type Request struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ItemID         uint          `gorm:"index" json:"item_id"`
	RecipientID    uint          `gorm:"index" json:"recipient_id"`
	QuantityNeeded float64       `json:"quantity_needed"`
	UrgencyLevel   UrgencyLevel  `gorm:"default:'Medium'" json:"urgency_level"`
	Status         RequestStatus `gorm:"default:'Pending'" json:"status"`

	Item      *FoodItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
	Recipient *User     `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
	Timestamp
}
