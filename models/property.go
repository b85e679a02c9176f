package models

import "time"

// Property is a real-estate object managed by the CRM. The db tags name the
// columns of the "properties" table and are the authoritative schema field
// set consumed by the mapping layer; the json tags are the public API names.
//
// The legacy schema stores camelCase column names, so db tags and column
// names are identical to the exported API names for unmapped fields.
type Property struct {
	ID          int64   `db:"id" json:"id"`
	Title       *string `db:"title" json:"title,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`

	// Classification.
	PropertyType  *string `db:"propertyType" json:"propertyType,omitempty"`
	MarketingType *string `db:"marketingType" json:"marketingType,omitempty"`
	Status        *string `db:"status" json:"status,omitempty"`

	// Address. Also the source of the remote file-store folder name.
	Street      *string `db:"street" json:"street,omitempty"`
	HouseNumber *string `db:"houseNumber" json:"houseNumber,omitempty"`
	ZipCode     *string `db:"zipCode" json:"zipCode,omitempty"`
	City        *string `db:"city" json:"city,omitempty"`

	// Areas and layout.
	LivingArea          *float64 `db:"livingArea" json:"livingArea,omitempty"`
	PlotArea            *float64 `db:"plotArea" json:"plotArea,omitempty"`
	UsableArea          *float64 `db:"usableArea" json:"usableArea,omitempty"`
	BalconyTerraceArea  *float64 `db:"balconyTerraceArea" json:"balconyTerraceArea,omitempty"`
	GardenArea          *float64 `db:"gardenArea" json:"gardenArea,omitempty"`
	Rooms               *float64 `db:"rooms" json:"rooms,omitempty"`
	Bedrooms            *int     `db:"bedrooms" json:"bedrooms,omitempty"`
	Bathrooms           *int     `db:"bathrooms" json:"bathrooms,omitempty"`
	ConstructionYear    *int     `db:"constructionYear" json:"constructionYear,omitempty"`
	LastRenovationYear  *int     `db:"lastRenovationYear" json:"lastRenovationYear,omitempty"`
	Condition           *string  `db:"condition" json:"condition,omitempty"`
	Flooring            *string  `db:"flooring" json:"flooring,omitempty"`

	// Energy and heating.
	EnergyClass                 *string `db:"energyClass" json:"energyClass,omitempty"`
	HeatingType                 *string `db:"heatingType" json:"heatingType,omitempty"`
	HeatingCostsInServiceCharge *bool   `db:"heatingCostsInServiceCharge" json:"heatingCostsInServiceCharge,omitempty"`

	// Prices. purchasePrice, baseRent, totalRent and rentalIncome are the
	// internal counterparts of the mapped router names price, coldRent,
	// warmRent and monthlyRentalIncome.
	PurchasePrice *float64 `db:"purchasePrice" json:"purchasePrice,omitempty"`
	BaseRent      *float64 `db:"baseRent" json:"baseRent,omitempty"`
	TotalRent     *float64 `db:"totalRent" json:"totalRent,omitempty"`
	ServiceCharge *float64 `db:"serviceCharge" json:"serviceCharge,omitempty"`
	RentalIncome  *float64 `db:"rentalIncome" json:"rentalIncome,omitempty"`
	Commission    *string  `db:"commission" json:"commission,omitempty"`

	// Parking.
	ParkingSpaces *int    `db:"parkingSpaces" json:"parkingSpaces,omitempty"`
	ParkingType   *string `db:"parkingType" json:"parkingType,omitempty"`

	AvailableFrom  *string `db:"availableFrom" json:"availableFrom,omitempty"`
	OwnerContactID *int64  `db:"ownerContactId" json:"ownerContactId,omitempty"`

	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}

// Address returns the property's address fields as a PropertyAddress value
// for remote file-store path derivation.
func (p Property) Address() PropertyAddress {
	return PropertyAddress{
		Street:      p.Street,
		HouseNumber: p.HouseNumber,
		ZipCode:     p.ZipCode,
		City:        p.City,
	}
}

// PropertyAddress carries the four address components a remote storage
// folder name is derived from. Every component is independently optional.
type PropertyAddress struct {
	Street      *string
	HouseNumber *string
	ZipCode     *string
	City        *string
}
