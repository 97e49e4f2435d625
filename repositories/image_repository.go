// File: /repositories/image_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type ImageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

// Create registers image metadata for a vehicle. Position, when left
// at zero, is appended after the vehicle's current highest position so
// uploads keep their arrival order.
func (r *ImageRepository) Create(image *models.VehicleImage) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.MotorVehicle{}).Where("id = ?", image.VehicleID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return &NotFoundError{Entity: "motor_vehicle", ID: image.VehicleID}
		}
		if image.Position <= 0 {
			var maxPos int
			row := tx.Model(&models.VehicleImage{}).
				Where("vehicle_id = ?", image.VehicleID).
				Select("COALESCE(MAX(position), 0)").
				Row()
			if err := row.Scan(&maxPos); err != nil {
				return err
			}
			image.Position = maxPos + 1
		}
		return tx.Create(image).Error
	})
	return translateError("vehicle_image", image.VehicleID, err)
}

// ListByVehicle returns a vehicle's images in display order.
func (r *ImageRepository) ListByVehicle(vehicleID uint) ([]models.VehicleImage, error) {
	var images []models.VehicleImage
	err := r.db.Where("vehicle_id = ?", vehicleID).Order("position ASC").Find(&images).Error
	if err != nil {
		return nil, translateError("vehicle_image", vehicleID, err)
	}
	return images, nil
}

// Reorder moves an image to the given position.
func (r *ImageRepository) Reorder(id uint, position int) error {
	if position <= 0 {
		return &ConstraintError{Entity: "vehicle_image", Field: "position", Reason: "must be positive"}
	}
	res := r.db.Model(&models.VehicleImage{}).Where("id = ?", id).Update("position", position)
	if res.Error != nil {
		return translateError("vehicle_image", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "vehicle_image", ID: id}
	}
	return nil
}

// SetPrimary flags one image as the vehicle's cover, clearing the flag
// on its siblings.
func (r *ImageRepository) SetPrimary(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var image models.VehicleImage
		if err := tx.First(&image, id).Error; err != nil {
			return translateError("vehicle_image", id, err)
		}
		if err := tx.Model(&models.VehicleImage{}).
			Where("vehicle_id = ?", image.VehicleID).
			Update("is_primary", false).Error; err != nil {
			return translateError("vehicle_image", id, err)
		}
		err := tx.Model(&models.VehicleImage{}).Where("id = ?", id).Update("is_primary", true).Error
		return translateError("vehicle_image", id, err)
	})
}

func (r *ImageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "vehicle_image", "vehicle_images", id)
	})
}
