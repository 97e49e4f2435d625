// File: /controllers/employee_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type EmployeeController struct {
	employees *repositories.EmployeeRepository
}

func NewEmployeeController(employees *repositories.EmployeeRepository) *EmployeeController {
	return &EmployeeController{employees: employees}
}

type CreateEmployeeRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Phone   *string         `json:"phone"`
	CPF     string          `json:"cpf" binding:"required"`
	Address *AddressRequest `json:"address"`
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsValidCPF(req.CPF) {
		utils.SendValidationError(c, "Invalid CPF")
		return
	}

	employee := models.Employee{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		CPF:    req.CPF,
		Status: models.EmployeeStatusActive,
	}
	if err := ec.employees.Create(&employee, req.Address.toModel()); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	employee, err := ec.employees.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	employees, total, err := ec.employees.List(c.Query("status"), page, limit)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, employees, page, limit, total)
}

type UpdateEmployeeRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	CPF    *string `json:"cpf"`
	Status *string `json:"status"`
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CPF != nil && !utils.IsValidCPF(*req.CPF) {
		utils.SendValidationError(c, "Invalid CPF")
		return
	}
	if req.Email != nil && !utils.IsValidEmail(*req.Email) {
		utils.SendValidationError(c, "Invalid email")
		return
	}

	updates := map[string]interface{}{}
	setIfPresentStr(updates, "name", req.Name)
	setIfPresentStr(updates, "email", req.Email)
	setIfPresentStr(updates, "phone", req.Phone)
	setIfPresentStr(updates, "cpf", req.CPF)
	setIfPresentStr(updates, "status", req.Status)
	if len(updates) == 0 {
		utils.SendValidationError(c, "No fields to update")
		return
	}

	if err := ec.employees.Update(id, updates); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	employee, err := ec.employees.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee removes an employee unless sale history references
// it. The linked user account is removed with it.
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := ec.employees.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Employee deleted successfully", nil)
}
