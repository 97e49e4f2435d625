// File: /models/message.go
package models

import (
	"time"
)

// Message status values.
const (
	MessageStatusPending   = "pending"
	MessageStatusInContact = "in_contact"
	MessageStatusFinished  = "finished"
	MessageStatusCanceled  = "canceled"
)

// Message is an inbound customer contact. It outlives the employee or
// vehicle it mentions: both references drop to null when those rows
// are deleted.
type Message struct {
	ID               uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	ResponsibleID    *uint      `json:"responsible_id" gorm:"index"`
	VehicleID        *uint      `json:"vehicle_id" gorm:"index"`
	Name             string     `json:"name" gorm:"not null;size:100"`
	Email            string     `json:"email" gorm:"not null;size:100"`
	Phone            *string    `json:"phone" gorm:"size:50"`
	Body             string     `json:"message" gorm:"column:message;type:text;not null"`
	Status           string     `json:"status" gorm:"not null;size:20;default:'pending'"`
	ServiceStartTime *time.Time `json:"service_start_time"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Responsible *Employee     `json:"responsible,omitempty" gorm:"foreignKey:ResponsibleID"`
	Vehicle     *MotorVehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func IsValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusPending, MessageStatusInContact,
		MessageStatusFinished, MessageStatusCanceled:
		return true
	}
	return false
}
