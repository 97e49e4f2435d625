// File: /models/car.go
package models

import (
	"time"
)

// Car is the specialization row for motor vehicles of kind "car".
// Its primary key is the motor_vehicles ID it extends.
type Car struct {
	VehicleID    uint      `json:"vehicle_id" gorm:"primaryKey"`
	Bodywork     string    `json:"bodywork" gorm:"not null;size:20"`
	Transmission string    `json:"transmission" gorm:"not null;size:20"`
	UpdatedAt    time.Time `json:"updated_at"`

	Items []CarItem `json:"items,omitempty" gorm:"foreignKey:CarID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CarItem is one optional accessory attached to a car. The composite
// primary key keeps an item from being attached twice to the same car.
type CarItem struct {
	CarID uint   `json:"car_id" gorm:"primaryKey;autoIncrement:false"`
	Name  string `json:"name" gorm:"primaryKey;size:100"`
}
