package entities

type Occupation string

const (
	OccupationRestaurant   Occupation = "Restaurant"
	OccupationGroceryStore Occupation = "Grocery Store"
	OccupationFarm         Occupation = "Farm"
	OccupationBakery       Occupation = "Bakery"
	OccupationManufacturer Occupation = "Manufacturer"
	OccupationOther        Occupation = "Other"
	OccupationNone         Occupation = ""
)

func (o Occupation) Valid() bool {
	switch o {
	case OccupationRestaurant, OccupationGroceryStore, OccupationFarm,
		OccupationBakery, OccupationManufacturer, OccupationOther, OccupationNone:
		return true
	}
	return false
}

type Role string

const (
	RoleSupplier  Role = "Supplier"
	RoleRecipient Role = "Recipient"
)

func (r Role) Valid() bool {
	return r == RoleSupplier || r == RoleRecipient
}

type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FullName      string     `json:"full_name"`
	Occupation    Occupation `json:"occupation"`
	LocationID    uint       `json:"location_id"`
	ContactNumber string     `json:"contact_number"`
	Email         string     `gorm:"uniqueIndex" json:"email"`
	Password      string     `json:"-"`
	Verified      bool       `json:"verified"`

	Location *Location   `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT" json:"location,omitempty"`
	Roles    []*UserRole `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	Timestamp
}

// UserRole keys on (user, role) so a user can hold both roles but never the
// same role twice.
type UserRole struct {
	UserID uint `gorm:"primaryKey;index" json:"user_id"`
	Role   Role `gorm:"primaryKey" json:"role"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
