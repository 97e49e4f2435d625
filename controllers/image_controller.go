// File: /controllers/image_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Image bytes are written by the file-storage layer; this controller
// only registers the metadata rows and derives the storage paths.
const (
	uploadDir    = "static/uploads/vehicles"
	thumbnailDir = "static/uploads/thumbnails"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type ImageController struct {
	images *repositories.ImageRepository
}

func NewImageController(images *repositories.ImageRepository) *ImageController {
	return &ImageController{images: images}
}

type RegisterImageRequest struct {
	Filename     string `json:"filename" binding:"required"`
	HasThumbnail bool   `json:"has_thumbnail"`
	IsPrimary    bool   `json:"is_primary"`
}

// RegisterImage stores the metadata for an uploaded vehicle photo.
// The stored name is a fresh UUID so original filenames cannot collide
// or escape the upload directory.
func (ic *ImageController) RegisterImage(c *gin.Context) {
	vehicleID, err := parseID(c)
	if err != nil {
		return
	}
	var req RegisterImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !allowedImageExtensions[ext] {
		utils.SendValidationError(c, fmt.Sprintf("Extension %q not allowed", ext))
		return
	}

	storedName := uuid.New().String() + ext
	image := models.VehicleImage{
		VehicleID: vehicleID,
		Filename:  storedName,
		Path:      fmt.Sprintf("%s/%d/%s", uploadDir, vehicleID, storedName),
		IsPrimary: req.IsPrimary,
	}
	if req.HasThumbnail {
		thumbPath := fmt.Sprintf("%s/%d/thumb_%s", thumbnailDir, vehicleID, storedName)
		image.ThumbnailPath = &thumbPath
	}

	if err := ic.images.Create(&image); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (ic *ImageController) ListImages(c *gin.Context) {
	vehicleID, err := parseID(c)
	if err != nil {
		return
	}
	images, err := ic.images.ListByVehicle(vehicleID)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

type ReorderImageRequest struct {
	Position int `json:"position" binding:"required,gt=0"`
}

func (ic *ImageController) ReorderImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req ReorderImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := ic.images.Reorder(id, req.Position); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Image position updated", nil)
}

func (ic *ImageController) SetPrimaryImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := ic.images.SetPrimary(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Primary image updated", nil)
}

func (ic *ImageController) DeleteImage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := ic.images.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Image deleted successfully", nil)
}
