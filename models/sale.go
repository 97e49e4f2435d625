// File: /models/sale.go
package models

import (
	"time"
)

// Sale status values.
const (
	SaleStatusPending   = "pending"
	SaleStatusConfirmed = "confirmed"
	SaleStatusPaid      = "paid"
	SaleStatusDelivered = "delivered"
	SaleStatusCanceled  = "canceled"
)

// Accepted payment methods.
const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentFinancing  = "financing"
	PaymentConsortium = "consortium"
	PaymentPix        = "pix"
)

// Sale is the historical record of one vehicle sold to one client by
// one employee. The referenced rows cannot be deleted while the sale
// exists; sales are only removed explicitly.
type Sale struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID         uint      `json:"client_id" gorm:"not null;index"`
	EmployeeID       uint      `json:"employee_id" gorm:"not null;index"`
	VehicleID        uint      `json:"vehicle_id" gorm:"not null;index"`
	TotalAmount      float64   `json:"total_amount" gorm:"type:decimal(12,2);not null"`
	PaymentMethod    string    `json:"payment_method" gorm:"not null;size:20"`
	Status           string    `json:"status" gorm:"not null;size:20;default:'pending'"`
	SaleDate         time.Time `json:"sale_date" gorm:"type:date;not null"`
	Notes            *string   `json:"notes" gorm:"size:1000"`
	DiscountAmount   float64   `json:"discount_amount" gorm:"type:decimal(12,2);not null;default:0"`
	TaxAmount        float64   `json:"tax_amount" gorm:"type:decimal(12,2);not null;default:0"`
	CommissionRate   float64   `json:"commission_rate" gorm:"type:decimal(5,2);not null;default:0"`
	CommissionAmount float64   `json:"commission_amount" gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relationships
	Client   Client       `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Employee Employee     `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Vehicle  MotorVehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// Commission computes the commission owed on the amount actually paid.
func (s *Sale) Commission() float64 {
	return (s.TotalAmount - s.DiscountAmount) * s.CommissionRate / 100
}

func IsValidSaleStatus(status string) bool {
	switch status {
	case SaleStatusPending, SaleStatusConfirmed, SaleStatusPaid,
		SaleStatusDelivered, SaleStatusCanceled:
		return true
	}
	return false
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard,
		PaymentFinancing, PaymentConsortium, PaymentPix:
		return true
	}
	return false
}
