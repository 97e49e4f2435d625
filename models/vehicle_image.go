// File: /models/vehicle_image.go
package models

import (
	"time"
)

// VehicleImage stores the metadata of one uploaded vehicle photo.
// Image bytes live in the file-storage layer; only filename, paths and
// display order are persisted here. Position orders a vehicle's images
// in the listing, starting at 1.
type VehicleImage struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	VehicleID     uint      `json:"vehicle_id" gorm:"not null;index"`
	Filename      string    `json:"filename" gorm:"not null;size:255"`
	Path          string    `json:"path" gorm:"not null;size:500"`
	ThumbnailPath *string   `json:"thumbnail_path" gorm:"size:500"`
	Position      int       `json:"position" gorm:"not null;type:smallint"`
	IsPrimary     bool      `json:"is_primary" gorm:"default:false"`
	UploadedAt    time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}
