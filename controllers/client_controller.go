// File: /controllers/client_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type ClientController struct {
	clients *repositories.ClientRepository
}

func NewClientController(clients *repositories.ClientRepository) *ClientController {
	return &ClientController{clients: clients}
}

// AddressRequest carries the optional postal address embedded in
// client and employee payloads.
type AddressRequest struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
}

func (r *AddressRequest) toModel() *models.Address {
	if r == nil {
		return nil
	}
	return &models.Address{
		Street:  r.Street,
		City:    r.City,
		State:   r.State,
		ZipCode: r.ZipCode,
		Country: r.Country,
	}
}

type CreateClientRequest struct {
	Name    string          `json:"name" binding:"required"`
	Email   string          `json:"email" binding:"required,email"`
	Phone   *string         `json:"phone"`
	CPF     string          `json:"cpf" binding:"required"`
	Address *AddressRequest `json:"address"`
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !utils.IsValidCPF(req.CPF) {
		utils.SendValidationError(c, "Invalid CPF")
		return
	}

	client := models.Client{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		CPF:   req.CPF,
	}
	if err := cc.clients.Create(&client, req.Address.toModel()); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (cc *ClientController) GetClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	client, err := cc.clients.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) ListClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	clients, total, err := cc.clients.List(page, limit)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, clients, page, limit, total)
}

type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	CPF   *string `json:"cpf"`
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateClientRequest
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
	if len(updates) == 0 {
		utils.SendValidationError(c, "No fields to update")
		return
	}

	if err := cc.clients.Update(id, updates); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	client, err := cc.clients.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client unless sale history references it.
func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := cc.clients.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Client deleted successfully", nil)
}
