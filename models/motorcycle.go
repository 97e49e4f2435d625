// File: /models/motorcycle.go
package models

import (
	"time"
)

// Motorcycle is the specialization row for motor vehicles of kind
// "motorcycle". Its primary key is the motor_vehicles ID it extends.
type Motorcycle struct {
	VehicleID          uint      `json:"vehicle_id" gorm:"primaryKey"`
	Starter            string    `json:"starter" gorm:"not null;size:50"`
	FuelSystem         string    `json:"fuel_system" gorm:"not null;size:50"`
	EngineDisplacement int       `json:"engine_displacement" gorm:"not null"`
	Cooling            string    `json:"cooling" gorm:"not null;size:50"`
	Style              string    `json:"style" gorm:"not null;size:50"`
	EngineType         string    `json:"engine_type" gorm:"not null;size:50"`
	Gears              int       `json:"gears" gorm:"not null;type:smallint"`
	FrontRearBrake     string    `json:"front_rear_brake" gorm:"not null;size:100"`
	UpdatedAt          time.Time `json:"updated_at"`
}
