// File: /models/motor_vehicle.go
package models

import (
	"time"
)

// Vehicle status values persisted in motor_vehicles.status.
const (
	VehicleStatusAvailable = "available"
	VehicleStatusReserved  = "reserved"
	VehicleStatusSold      = "sold"
)

// Vehicle kinds for the car/motorcycle specialization.
const (
	VehicleKindCar        = "car"
	VehicleKindMotorcycle = "motorcycle"
)

// MotorVehicle is the base row shared by cars and motorcycles.
// The specialization rows (cars, motorcycles) use this ID as their
// primary key and are removed together with it.
type MotorVehicle struct {
	ID                    uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Model                 string    `json:"model" gorm:"not null;size:100"`
	Year                  string    `json:"year" gorm:"not null;size:20"`
	Mileage               int       `json:"mileage" gorm:"not null"`
	FuelType              string    `json:"fuel_type" gorm:"not null;size:20"`
	Color                 string    `json:"color" gorm:"not null;size:50"`
	City                  string    `json:"city" gorm:"not null;size:100"`
	Price                 float64   `json:"price" gorm:"type:decimal(12,2);not null"`
	Status                string    `json:"status" gorm:"not null;size:20;default:'available'"`
	AdditionalDescription *string   `json:"additional_description" gorm:"type:text"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`

	// Relationships
	Car        *Car           `json:"car,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Motorcycle *Motorcycle    `json:"motorcycle,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Images     []VehicleImage `json:"images,omitempty" gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Kind reports which specialization row is attached, or "" when the
// vehicle was loaded without its Car/Motorcycle relation.
func (v *MotorVehicle) Kind() string {
	switch {
	case v.Car != nil:
		return VehicleKindCar
	case v.Motorcycle != nil:
		return VehicleKindMotorcycle
	default:
		return ""
	}
}

func IsValidVehicleStatus(status string) bool {
	switch status {
	case VehicleStatusAvailable, VehicleStatusReserved, VehicleStatusSold:
		return true
	}
	return false
}
