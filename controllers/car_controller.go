// File: /controllers/car_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type CarController struct {
	vehicles *repositories.VehicleRepository
}

func NewCarController(vehicles *repositories.VehicleRepository) *CarController {
	return &CarController{vehicles: vehicles}
}

type CreateCarRequest struct {
	Model                 string   `json:"model" binding:"required"`
	Year                  string   `json:"year" binding:"required"`
	Mileage               int      `json:"mileage" binding:"gte=0"`
	FuelType              string   `json:"fuel_type" binding:"required"`
	Color                 string   `json:"color" binding:"required"`
	City                  string   `json:"city" binding:"required"`
	Price                 float64  `json:"price" binding:"gte=0"`
	AdditionalDescription *string  `json:"additional_description"`
	Bodywork              string   `json:"bodywork" binding:"required"`
	Transmission          string   `json:"transmission" binding:"required"`
	Items                 []string `json:"items"`
}

func (cc *CarController) CreateCar(c *gin.Context) {
	var req CreateCarRequest
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
	car := models.Car{
		Bodywork:     req.Bodywork,
		Transmission: req.Transmission,
	}
	if err := cc.vehicles.CreateCar(&vehicle, &car); err != nil {
		utils.SendStoreError(c, err)
		return
	}

	for _, item := range req.Items {
		if err := cc.vehicles.AddCarItem(car.VehicleID, item); err != nil {
			utils.SendStoreError(c, err)
			return
		}
	}

	created, err := cc.vehicles.GetCar(vehicle.ID)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *CarController) GetCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	car, err := cc.vehicles.GetCar(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (cc *CarController) ListCars(c *gin.Context) {
	filter := vehicleFilterFromQuery(c)
	filter.Kind = models.VehicleKindCar
	vehicles, total, err := cc.vehicles.List(filter)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, vehicles, filter.Page, filter.Limit, total)
}

type UpdateCarRequest struct {
	Model                 *string  `json:"model"`
	Year                  *string  `json:"year"`
	Mileage               *int     `json:"mileage"`
	FuelType              *string  `json:"fuel_type"`
	Color                 *string  `json:"color"`
	City                  *string  `json:"city"`
	Price                 *float64 `json:"price"`
	Status                *string  `json:"status"`
	AdditionalDescription *string  `json:"additional_description"`
	Bodywork              *string  `json:"bodywork"`
	Transmission          *string  `json:"transmission"`
}

func (cc *CarController) UpdateCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateCarRequest
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

	carUpdates := map[string]interface{}{}
	setIfPresentStr(carUpdates, "bodywork", req.Bodywork)
	setIfPresentStr(carUpdates, "transmission", req.Transmission)

	// Ensure the vehicle really is a car before touching either table.
	if _, err := cc.vehicles.GetCar(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	if len(vehicleUpdates) > 0 {
		if err := cc.vehicles.UpdateVehicle(id, vehicleUpdates); err != nil {
			utils.SendStoreError(c, err)
			return
		}
	}
	if len(carUpdates) > 0 {
		if err := cc.vehicles.UpdateCar(id, carUpdates); err != nil {
			utils.SendStoreError(c, err)
			return
		}
	}

	updated, err := cc.vehicles.GetCar(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (cc *CarController) DeleteCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if _, err := cc.vehicles.GetCar(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	if err := cc.vehicles.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Car deleted successfully", nil)
}

type CarItemRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func (cc *CarController) AddItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req CarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := cc.vehicles.AddCarItem(id, req.Name); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendCreated(c, "Item added successfully", models.CarItem{CarID: id, Name: req.Name})
}

func (cc *CarController) RemoveItem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	name := c.Param("name")
	if err := cc.vehicles.RemoveCarItem(id, name); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Item removed successfully", nil)
}

func (cc *CarController) ListItems(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	items, err := cc.vehicles.ListCarItems(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Shared request helpers for the vehicle controllers.

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}

func vehicleFilterFromQuery(c *gin.Context) repositories.VehicleFilter {
	filter := repositories.VehicleFilter{
		City:   c.Query("city"),
		Status: c.Query("status"),
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return filter
}

func setIfPresentStr(updates map[string]interface{}, key string, value *string) {
	if value != nil {
		updates[key] = *value
	}
}
