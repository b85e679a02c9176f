package models

import "time"

// Contact is a person record (owner, lead, tenant or insurance customer).
// The db tags name the columns of the "contacts" table; they are the
// authoritative schema field set for contact writes.
type Contact struct {
	ID        int64   `db:"id" json:"id"`
	Salutation *string `db:"salutation" json:"salutation,omitempty"`
	FirstName *string `db:"firstName" json:"firstName,omitempty"`
	LastName  *string `db:"lastName" json:"lastName,omitempty"`
	Company   *string `db:"company" json:"company,omitempty"`

	Email        *string `db:"email" json:"email,omitempty"`
	PhoneNumber  *string `db:"phoneNumber" json:"phoneNumber,omitempty"`
	MobileNumber *string `db:"mobileNumber" json:"mobileNumber,omitempty"`

	Street      *string `db:"street" json:"street,omitempty"`
	HouseNumber *string `db:"houseNumber" json:"houseNumber,omitempty"`
	ZipCode     *string `db:"zipCode" json:"zipCode,omitempty"`
	City        *string `db:"city" json:"city,omitempty"`

	ContactType *string `db:"contactType" json:"contactType,omitempty"`
	Remarks     *string `db:"remarks" json:"remarks,omitempty"`

	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}
