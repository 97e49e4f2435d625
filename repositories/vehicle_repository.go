// File: /repositories/vehicle_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// VehicleFilter narrows List results. Zero values mean "no filter".
type VehicleFilter struct {
	Kind     string
	City     string
	Status   string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	Limit    int
}

func validateVehicle(v *models.MotorVehicle) error {
	if v.Price < 0 {
		return &ConstraintError{Entity: "motor_vehicle", Field: "price", Reason: "must be non-negative"}
	}
	if v.Mileage < 0 {
		return &ConstraintError{Entity: "motor_vehicle", Field: "mileage", Reason: "must be non-negative"}
	}
	if v.Status != "" && !models.IsValidVehicleStatus(v.Status) {
		return &ConstraintError{Entity: "motor_vehicle", Field: "status", Reason: "unknown status"}
	}
	return nil
}

// CreateCar inserts the base vehicle row and its car specialization in
// one transaction; neither row exists unless both do.
func (r *VehicleRepository) CreateCar(vehicle *models.MotorVehicle, car *models.Car) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		car.VehicleID = vehicle.ID
		return tx.Create(car).Error
	})
	return translateError("car", vehicle.ID, err)
}

// CreateMotorcycle inserts the base vehicle row and its motorcycle
// specialization in one transaction.
func (r *VehicleRepository) CreateMotorcycle(vehicle *models.MotorVehicle, motorcycle *models.Motorcycle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}
	if motorcycle.EngineDisplacement < 0 {
		return &ConstraintError{Entity: "motorcycle", Field: "engine_displacement", Reason: "must be non-negative"}
	}
	if motorcycle.Gears < 0 {
		return &ConstraintError{Entity: "motorcycle", Field: "gears", Reason: "must be non-negative"}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(vehicle).Error; err != nil {
			return err
		}
		motorcycle.VehicleID = vehicle.ID
		return tx.Create(motorcycle).Error
	})
	return translateError("motorcycle", vehicle.ID, err)
}

// GetCar loads a car together with its base row, items and ordered
// images. Vehicles that exist but are not cars count as not found.
func (r *VehicleRepository) GetCar(id uint) (*models.MotorVehicle, error) {
	var vehicle models.MotorVehicle
	err := r.db.
		Preload("Car.Items").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&vehicle, id).Error
	if err != nil {
		return nil, translateError("car", id, err)
	}
	if vehicle.Car == nil {
		return nil, &NotFoundError{Entity: "car", ID: id}
	}
	return &vehicle, nil
}

// GetMotorcycle loads a motorcycle together with its base row and
// ordered images.
func (r *VehicleRepository) GetMotorcycle(id uint) (*models.MotorVehicle, error) {
	var vehicle models.MotorVehicle
	err := r.db.
		Preload("Motorcycle").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&vehicle, id).Error
	if err != nil {
		return nil, translateError("motorcycle", id, err)
	}
	if vehicle.Motorcycle == nil {
		return nil, &NotFoundError{Entity: "motorcycle", ID: id}
	}
	return &vehicle, nil
}

// List returns a page of vehicles matching the filter plus the total
// match count.
func (r *VehicleRepository) List(filter VehicleFilter) ([]models.MotorVehicle, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	q := r.db.Model(&models.MotorVehicle{})
	switch filter.Kind {
	case models.VehicleKindCar:
		q = q.Joins("JOIN cars ON cars.vehicle_id = motor_vehicles.id")
	case models.VehicleKindMotorcycle:
		q = q.Joins("JOIN motorcycles ON motorcycles.vehicle_id = motor_vehicles.id")
	}
	if filter.City != "" {
		q = q.Where("motor_vehicles.city = ?", filter.City)
	}
	if filter.Status != "" {
		q = q.Where("motor_vehicles.status = ?", filter.Status)
	}
	if filter.MinPrice != nil {
		q = q.Where("motor_vehicles.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("motor_vehicles.price <= ?", *filter.MaxPrice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError("motor_vehicle", 0, err)
	}

	var vehicles []models.MotorVehicle
	err := q.Preload("Car").Preload("Motorcycle").
		Order("motor_vehicles.created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, translateError("motor_vehicle", 0, err)
	}
	return vehicles, total, nil
}

// UpdateVehicle applies base-row changes. The updated_at column is
// refreshed by gorm on every successful update.
func (r *VehicleRepository) UpdateVehicle(id uint, updates map[string]interface{}) error {
	if price, ok := updates["price"].(float64); ok && price < 0 {
		return &ConstraintError{Entity: "motor_vehicle", Field: "price", Reason: "must be non-negative"}
	}
	if status, ok := updates["status"].(string); ok && !models.IsValidVehicleStatus(status) {
		return &ConstraintError{Entity: "motor_vehicle", Field: "status", Reason: "unknown status"}
	}
	res := r.db.Model(&models.MotorVehicle{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("motor_vehicle", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "motor_vehicle", ID: id}
	}
	return nil
}

// UpdateCar applies specialization-row changes to a car.
func (r *VehicleRepository) UpdateCar(id uint, updates map[string]interface{}) error {
	res := r.db.Model(&models.Car{}).Where("vehicle_id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("car", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "car", ID: id}
	}
	return nil
}

// UpdateMotorcycle applies specialization-row changes to a motorcycle.
func (r *VehicleRepository) UpdateMotorcycle(id uint, updates map[string]interface{}) error {
	if disp, ok := updates["engine_displacement"].(int); ok && disp < 0 {
		return &ConstraintError{Entity: "motorcycle", Field: "engine_displacement", Reason: "must be non-negative"}
	}
	res := r.db.Model(&models.Motorcycle{}).Where("vehicle_id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("motorcycle", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "motorcycle", ID: id}
	}
	return nil
}

// Delete removes a vehicle with its specialization, item and image
// rows. It fails with RestrictedError and mutates nothing while any
// sale references the vehicle.
func (r *VehicleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "motor_vehicle", "motor_vehicles", id)
	})
}

// AddCarItem attaches an accessory to a car. The composite primary key
// rejects duplicates.
func (r *VehicleRepository) AddCarItem(carID uint, name string) error {
	var count int64
	if err := r.db.Model(&models.Car{}).Where("vehicle_id = ?", carID).Count(&count).Error; err != nil {
		return translateError("car", carID, err)
	}
	if count == 0 {
		return &NotFoundError{Entity: "car", ID: carID}
	}
	item := models.CarItem{CarID: carID, Name: name}
	if err := r.db.Create(&item).Error; err != nil {
		return translateError("car_item", carID, err)
	}
	return nil
}

// RemoveCarItem detaches an accessory from a car.
func (r *VehicleRepository) RemoveCarItem(carID uint, name string) error {
	res := r.db.Where("car_id = ? AND name = ?", carID, name).Delete(&models.CarItem{})
	if res.Error != nil {
		return translateError("car_item", carID, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "car_item", ID: carID}
	}
	return nil
}

// ListCarItems returns a car's accessories sorted by name.
func (r *VehicleRepository) ListCarItems(carID uint) ([]models.CarItem, error) {
	var items []models.CarItem
	err := r.db.Where("car_id = ?", carID).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, translateError("car_item", carID, err)
	}
	return items, nil
}
