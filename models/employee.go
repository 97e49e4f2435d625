// File: /models/employee.go
package models

import (
	"time"
)

// Employee status values.
const (
	EmployeeStatusActive   = "active"
	EmployeeStatusInactive = "inactive"
)

type Employee struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null;size:100"`
	Email     string    `json:"email" gorm:"not null;size:100"`
	Phone     *string   `json:"phone" gorm:"size:50"`
	CPF       string    `json:"cpf" gorm:"not null;size:14;column:cpf"`
	Status    string    `json:"status" gorm:"not null;size:20;default:'active'"`
	AddressID *uint     `json:"address_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Address *Address `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	// The login principal dies with the employee, messages only lose
	// their responsible.
	User     *User     `json:"-" gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Messages []Message `json:"-" gorm:"foreignKey:ResponsibleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func IsValidEmployeeStatus(status string) bool {
	return status == EmployeeStatusActive || status == EmployeeStatusInactive
}
