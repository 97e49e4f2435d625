// File: /controllers/motorcycle_controller.go
package controllers

import (
	"net/http"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type MotorcycleController struct {
	vehicles *repositories.VehicleRepository
}

func NewMotorcycleController(vehicles *repositories.VehicleRepository) *MotorcycleController {
	return &MotorcycleController{vehicles: vehicles}
}

type CreateMotorcycleRequest struct {
	Model                 string  `json:"model" binding:"required"`
	Year                  string  `json:"year" binding:"required"`
	Mileage               int     `json:"mileage" binding:"gte=0"`
	FuelType              string  `json:"fuel_type" binding:"required"`
	Color                 string  `json:"color" binding:"required"`
	City                  string  `json:"city" binding:"required"`
	Price                 float64 `json:"price" binding:"gte=0"`
	AdditionalDescription *string `json:"additional_description"`
	Starter               string  `json:"starter" binding:"required"`
	FuelSystem            string  `json:"fuel_system" binding:"required"`
	EngineDisplacement    int     `json:"engine_displacement" binding:"gte=0"`
	Cooling               string  `json:"cooling" binding:"required"`
	Style                 string  `json:"style" binding:"required"`
	EngineType            string  `json:"engine_type" binding:"required"`
	Gears                 int     `json:"gears" binding:"gte=0"`
	FrontRearBrake        string  `json:"front_rear_brake" binding:"required"`
}

func (mc *MotorcycleController) CreateMotorcycle(c *gin.Context) {
	var req CreateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicle := models.MotorVehicle{
		Model:                 req.Model,
		Year:                  req.Year,
		Mileage:               req.Mileage,
		FuelType:              req.FuelType,
		Color:                 req.Color,
		City:                  req.City,
		Price:                 req.Price,
		Status:                models.VehicleStatusAvailable,
		AdditionalDescription: req.AdditionalDescription,
	}
	motorcycle := models.Motorcycle{
		Starter:            req.Starter,
		FuelSystem:         req.FuelSystem,
		EngineDisplacement: req.EngineDisplacement,
		Cooling:            req.Cooling,
		Style:              req.Style,
		EngineType:         req.EngineType,
		Gears:              req.Gears,
		FrontRearBrake:     req.FrontRearBrake,
	}
	if err := mc.vehicles.CreateMotorcycle(&vehicle, &motorcycle); err != nil {
		utils.SendStoreError(c, err)
		return
	}

	created, err := mc.vehicles.GetMotorcycle(vehicle.ID)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mc *MotorcycleController) GetMotorcycle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	motorcycle, err := mc.vehicles.GetMotorcycle(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, motorcycle)
}

func (mc *MotorcycleController) ListMotorcycles(c *gin.Context) {
	filter := vehicleFilterFromQuery(c)
	filter.Kind = models.VehicleKindMotorcycle
	vehicles, total, err := mc.vehicles.List(filter)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, vehicles, filter.Page, filter.Limit, total)
}

type UpdateMotorcycleRequest struct {
	Model                 *string  `json:"model"`
	Year                  *string  `json:"year"`
	Mileage               *int     `json:"mileage"`
	FuelType              *string  `json:"fuel_type"`
	Color                 *string  `json:"color"`
	City                  *string  `json:"city"`
	Price                 *float64 `json:"price"`
	Status                *string  `json:"status"`
	AdditionalDescription *string  `json:"additional_description"`
	Starter               *string  `json:"starter"`
	FuelSystem            *string  `json:"fuel_system"`
	EngineDisplacement    *int     `json:"engine_displacement"`
	Cooling               *string  `json:"cooling"`
	Style                 *string  `json:"style"`
	EngineType            *string  `json:"engine_type"`
	Gears                 *int     `json:"gears"`
	FrontRearBrake        *string  `json:"front_rear_brake"`
}

func (mc *MotorcycleController) UpdateMotorcycle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateMotorcycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vehicleUpdates := map[string]interface{}{}
	setIfPresentStr(vehicleUpdates, "model", req.Model)
	setIfPresentStr(vehicleUpdates, "year", req.Year)
	setIfPresentStr(vehicleUpdates, "fuel_type", req.FuelType)
	setIfPresentStr(vehicleUpdates, "color", req.Color)
	setIfPresentStr(vehicleUpdates, "city", req.City)
	setIfPresentStr(vehicleUpdates, "status", req.Status)
	setIfPresentStr(vehicleUpdates, "additional_description", req.AdditionalDescription)
	if req.Mileage != nil {
		vehicleUpdates["mileage"] = *req.Mileage
	}
	if req.Price != nil {
		vehicleUpdates["price"] = *req.Price
	}

	motoUpdates := map[string]interface{}{}
	setIfPresentStr(motoUpdates, "starter", req.Starter)
	setIfPresentStr(motoUpdates, "fuel_system", req.FuelSystem)
	setIfPresentStr(motoUpdates, "cooling", req.Cooling)
	setIfPresentStr(motoUpdates, "style", req.Style)
	setIfPresentStr(motoUpdates, "engine_type", req.EngineType)
	setIfPresentStr(motoUpdates, "front_rear_brake", req.FrontRearBrake)
	if req.EngineDisplacement != nil {
		motoUpdates["engine_displacement"] = *req.EngineDisplacement
	}
	if req.Gears != nil {
		motoUpdates["gears"] = *req.Gears
	}

	if _, err := mc.vehicles.GetMotorcycle(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	if len(vehicleUpdates) > 0 {
		if err := mc.vehicles.UpdateVehicle(id, vehicleUpdates); err != nil {
			utils.SendStoreError(c, err)
			return
		}
	}
	if len(motoUpdates) > 0 {
		if err := mc.vehicles.UpdateMotorcycle(id, motoUpdates); err != nil {
			utils.SendStoreError(c, err)
			return
		}
	}

	updated, err := mc.vehicles.GetMotorcycle(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (mc *MotorcycleController) DeleteMotorcycle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if _, err := mc.vehicles.GetMotorcycle(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	if err := mc.vehicles.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Motorcycle deleted successfully", nil)
}
