// File: /controllers/message_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/services"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	service  *services.MessageService
	messages *repositories.MessageRepository
}

func NewMessageController(service *services.MessageService, messages *repositories.MessageRepository) *MessageController {
	return &MessageController{service: service, messages: messages}
}

type CreateMessageRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     *string `json:"phone"`
	Message   string  `json:"message" binding:"required"`
	VehicleID *uint   `json:"vehicle_id"`
}

// CreateMessage is the public contact endpoint.
func (mc *MessageController) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message := models.Message{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Body:      req.Message,
		VehicleID: req.VehicleID,
	}
	if err := mc.service.Submit(&message); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendCreated(c, "Message received. We will get in touch soon.", message)
}

func (mc *MessageController) GetMessage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	message, err := mc.messages.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (mc *MessageController) ListMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	messages, total, err := mc.messages.List(c.Query("status"), page, limit)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendPaginated(c, messages, page, limit, total)
}

type AssignMessageRequest struct {
	EmployeeID uint `json:"employee_id" binding:"required,gt=0"`
}

func (mc *MessageController) AssignMessage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req AssignMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	message, err := mc.service.Assign(id, req.EmployeeID)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (mc *MessageController) UpdateMessageStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := mc.messages.UpdateStatus(id, req.Status); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	message, err := mc.messages.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

func (mc *MessageController) DeleteMessage(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	if err := mc.messages.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "Message deleted successfully", nil)
}
