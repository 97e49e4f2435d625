// File: /models/address.go
package models

import (
	"time"
)

// Address is a postal address referenced by employees and clients.
// Removing an address nullifies those references instead of deleting
// the rows that carry them.
type Address struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Street    *string   `json:"street" gorm:"size:100"`
	City      *string   `json:"city" gorm:"size:100"`
	State     *string   `json:"state" gorm:"size:100"`
	ZipCode   *string   `json:"zip_code" gorm:"size:20"`
	Country   *string   `json:"country" gorm:"size:100"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Employees []Employee `json:"-" gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Clients   []Client   `json:"-" gorm:"foreignKey:AddressID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// IsEmpty reports whether every field of the address is unset.
func (a *Address) IsEmpty() bool {
	return a.Street == nil && a.City == nil && a.State == nil &&
		a.ZipCode == nil && a.Country == nil
}
