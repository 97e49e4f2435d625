// File: /controllers/sale_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"autosales-api/repositories"
	"autosales-api/services"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type SaleController struct {
	sales *services.SaleService
}

func NewSaleController(sales *services.SaleService) *SaleController {
	return &SaleController{sales: sales}
}

func (sc *SaleController) CreateSale(c *gin.Context) {
	var input services.CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale, err := sc.sales.CreateSale(input)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (sc *SaleController) GetSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	sale, err := sc.sales.GetSale(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (sc *SaleController) ListSales(c *gin.Context) {
	filter := repositories.SaleFilter{
		Status:        c.Query("status"),
		PaymentMethod: c.Query("payment_method"),
		OrderByValue:  c.Query("order_by_value"),
	}
	if v, err := strconv.ParseUint(c.Query("client_id"), 10, 32); err == nil {
		filter.ClientID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("employee_id"), 10, 32); err == nil {
		filter.EmployeeID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("vehicle_id"), 10, 32); err == nil {
		filter.VehicleID = uint(v)
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	sales, total, err := sc.sales.ListSales(filter)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, sales, filter.Page, filter.Limit, total)
}

func (sc *SaleController) UpdateSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var input services.UpdateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale, err := sc.sales.UpdateSale(id, input)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (sc *SaleController) UpdateSaleStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sale, err := sc.sales.UpdateStatus(id, req.Status)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, sale)
}

func (sc *SaleController) DeleteSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := sc.sales.DeleteSale(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Sale deleted successfully", nil)
}
