// File: /repositories/sale_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type SaleRepository struct {
	db *gorm.DB
}

func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// SaleFilter narrows List results. OrderByValue sorts by total_amount
// when set to "asc" or "desc", newest-first otherwise.
type SaleFilter struct {
	ClientID      uint
	EmployeeID    uint
	VehicleID     uint
	Status        string
	PaymentMethod string
	OrderByValue  string
	Page          int
	Limit         int
}

// Create inserts a sale. The client, employee and vehicle foreign keys
// are checked by the store; a missing reference surfaces as a
// ConstraintError and no row is written.
func (r *SaleRepository) Create(sale *models.Sale) error {
	if err := r.db.Create(sale).Error; err != nil {
		return translateError("sale", 0, err)
	}
	return nil
}

// GetByID loads a sale with its client, employee and vehicle.
func (r *SaleRepository) GetByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	err := r.db.
		Preload("Client").
		Preload("Employee").
		Preload("Vehicle").
		First(&sale, id).Error
	if err != nil {
		return nil, translateError("sale", id, err)
	}
	return &sale, nil
}

// List returns a page of sales matching the filter plus the total
// match count.
func (r *SaleRepository) List(filter SaleFilter) ([]models.Sale, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	q := r.db.Model(&models.Sale{})
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.EmployeeID != 0 {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.VehicleID != 0 {
		q = q.Where("vehicle_id = ?", filter.VehicleID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.PaymentMethod != "" {
		q = q.Where("payment_method = ?", filter.PaymentMethod)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError("sale", 0, err)
	}

	switch filter.OrderByValue {
	case "asc":
		q = q.Order("total_amount ASC")
	case "desc":
		q = q.Order("total_amount DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var sales []models.Sale
	err := q.Preload("Client").Preload("Employee").Preload("Vehicle").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&sales).Error
	if err != nil {
		return nil, 0, translateError("sale", 0, err)
	}
	return sales, total, nil
}

// Update applies changes to an existing sale and returns the updated
// row.
func (r *SaleRepository) Update(id uint, updates map[string]interface{}) (*models.Sale, error) {
	res := r.db.Model(&models.Sale{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, translateError("sale", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, &NotFoundError{Entity: "sale", ID: id}
	}
	return r.GetByID(id)
}

// Delete removes a sale, releasing the restrict lock it held on its
// client, employee and vehicle.
func (r *SaleRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "sale", "sales", id)
	})
}
