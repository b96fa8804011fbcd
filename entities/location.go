package entities

// Location is immutable once created. Deleting one is restricted while any
// user or food item still references it.
type Location struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Province      string `json:"province"`
	City          string `json:"city"`
	ZipCode       string `json:"zip_code"`
	StreetAddress string `json:"street_address"`

	Timestamp
}
