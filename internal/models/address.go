package models

import "time"

// Address types stored in the address book.
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// SavedAddress is one address-book entry belonging to a user.
type SavedAddress struct {
	ID           int64     `json:"id" db:"id"`
	UserID       string    `json:"-" db:"user_id"`
	AddressType  string    `json:"address_type" db:"address_type"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	AddressLine1 string    `json:"address_line1" db:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty" db:"address_line2"`
	City         string    `json:"city" db:"city"`
	PostalCode   string    `json:"postal_code" db:"postal_code"`
	Country      string    `json:"country" db:"country"`
	IsDefault    bool      `json:"is_default" db:"is_default"`
	AddressName  string    `json:"address_name,omitempty" db:"address_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// SaveAddressRequest is the body for creating a new address-book entry.
type SaveAddressRequest struct {
	AddressType  string `json:"address_type" validate:"required,oneof=shipping billing"`
	FirstName    string `json:"first_name" validate:"required,max=100"`
	LastName     string `json:"last_name" validate:"required,max=100"`
	AddressLine1 string `json:"address_line1" validate:"required,max=255"`
	AddressLine2 string `json:"address_line2,omitempty" validate:"max=255"`
	City         string `json:"city" validate:"required,max=100"`
	PostalCode   string `json:"postal_code" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
	IsDefault    bool   `json:"is_default"`
	AddressName  string `json:"address_name,omitempty" validate:"max=100"`
}

// UpdateAddressRequest is the body for updating an existing entry. Pointer
// fields distinguish "leave unchanged" from an explicit zero value.
type UpdateAddressRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	AddressLine1 *string `json:"address_line1,omitempty" validate:"omitempty,max=255"`
	AddressLine2 *string `json:"address_line2,omitempty" validate:"omitempty,max=255"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	PostalCode   *string `json:"postal_code,omitempty" validate:"omitempty,max=20"`
	Country      *string `json:"country,omitempty" validate:"omitempty,max=100"`
	IsDefault    *bool   `json:"is_default,omitempty"`
	AddressName  *string `json:"address_name,omitempty" validate:"omitempty,max=100"`
}
