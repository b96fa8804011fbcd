package entities

type TransactionStatus string

const (
	TransactionStatusInProgress TransactionStatus = "In-Progress"
	TransactionStatusCompleted  TransactionStatus = "Completed"
)

func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusInProgress || s == TransactionStatusCompleted
}

// Transaction finalizes an exchange. The unique index on ItemID is what
// serializes concurrent creation attempts for the same item.
type Transaction struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	ItemID      uint              `gorm:"uniqueIndex" json:"item_id"`
	SupplierID  uint              `json:"supplier_id"`
	RecipientID uint              `json:"recipient_id"`
	Quantity    float64           `json:"quantity"`
	Status      TransactionStatus `gorm:"default:'In-Progress'" json:"status"`

	Item      *FoodItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"item,omitempty"`
	Supplier  *User     `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"supplier,omitempty"`
	Recipient *User     `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
	Timestamp
}
