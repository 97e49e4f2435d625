// File: /models/client.go
package models

import (
	"time"
)

type Client struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:100"`
	Phone     *string   `json:"phone" gorm:"size:50"`
	CPF       string    `json:"cpf" gorm:"not null;size:14;column:cpf"`
	AddressID *uint     `json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
}
