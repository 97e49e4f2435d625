// File: /repositories/client_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create inserts a client, creating its address in the same
// transaction when one is given.
func (r *ClientRepository) Create(client *models.Client, address *models.Address) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if address != nil && !address.IsEmpty() {
			if err := tx.Create(address).Error; err != nil {
				return err
			}
			client.AddressID = &address.ID
		}
		return tx.Create(client).Error
	})
	return translateError("client", 0, err)
}

func (r *ClientRepository) GetByID(id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.Preload("Address").First(&client, id).Error; err != nil {
		return nil, translateError("client", id, err)
	}
	return &client, nil
}

func (r *ClientRepository) List(page, limit int) ([]models.Client, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	var total int64
	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, translateError("client", 0, err)
	}
	var clients []models.Client
	err := r.db.Preload("Address").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&clients).Error
	if err != nil {
		return nil, 0, translateError("client", 0, err)
	}
	return clients, total, nil
}

func (r *ClientRepository) Update(id uint, updates map[string]interface{}) error {
	res := r.db.Model(&models.Client{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("client", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "client", ID: id}
	}
	return nil
}

// Delete removes a client. Fails with RestrictedError while any sale
// references it.
func (r *ClientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "client", "clients", id)
	})
}
