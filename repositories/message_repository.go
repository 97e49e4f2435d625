// File: /repositories/message_repository.go
package repositories

import (
	"time"

	"autosales-api/models"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts an inbound contact message. A vehicle or responsible
// reference that does not exist surfaces as a ConstraintError.
func (r *MessageRepository) Create(message *models.Message) error {
	if err := r.db.Create(message).Error; err != nil {
		return translateError("message", 0, err)
	}
	return nil
}

func (r *MessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.
		Preload("Responsible").
		Preload("Vehicle").
		First(&message, id).Error
	if err != nil {
		return nil, translateError("message", id, err)
	}
	return &message, nil
}

func (r *MessageRepository) List(status string, page, limit int) ([]models.Message, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	q := r.db.Model(&models.Message{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError("message", 0, err)
	}
	var messages []models.Message
	err := q.Preload("Responsible").Preload("Vehicle").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, 0, translateError("message", 0, err)
	}
	return messages, total, nil
}

// Assign hands the message to an employee and stamps the start of
// service on first contact.
func (r *MessageRepository) Assign(id, employeeID uint) error {
	res := r.db.Model(&models.Message{}).Where("id = ?", id).Updates(map[string]interface{}{
		"responsible_id":     employeeID,
		"status":             models.MessageStatusInContact,
		"service_start_time": time.Now(),
	})
	if res.Error != nil {
		return translateError("message", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "message", ID: id}
	}
	return nil
}

func (r *MessageRepository) UpdateStatus(id uint, status string) error {
	if !models.IsValidMessageStatus(status) {
		return &ConstraintError{Entity: "message", Field: "status", Reason: "unknown status"}
	}
	res := r.db.Model(&models.Message{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translateError("message", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "message", ID: id}
	}
	return nil
}

func (r *MessageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "message", "messages", id)
	})
}
