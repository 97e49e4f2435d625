// File: /repositories/employee_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts an employee, creating its address in the same
// transaction when one is given.
func (r *EmployeeRepository) Create(employee *models.Employee, address *models.Address) error {
	if employee.Status != "" && !models.IsValidEmployeeStatus(employee.Status) {
		return &ConstraintError{Entity: "employee", Field: "status", Reason: "unknown status"}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if address != nil && !address.IsEmpty() {
			if err := tx.Create(address).Error; err != nil {
				return err
			}
			employee.AddressID = &address.ID
		}
		return tx.Create(employee).Error
	})
	return translateError("employee", 0, err)
}

func (r *EmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Preload("Address").First(&employee, id).Error; err != nil {
		return nil, translateError("employee", id, err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) List(status string, page, limit int) ([]models.Employee, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	q := r.db.Model(&models.Employee{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, translateError("employee", 0, err)
	}
	var employees []models.Employee
	err := q.Preload("Address").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&employees).Error
	if err != nil {
		return nil, 0, translateError("employee", 0, err)
	}
	return employees, total, nil
}

func (r *EmployeeRepository) Update(id uint, updates map[string]interface{}) error {
	if status, ok := updates["status"].(string); ok && !models.IsValidEmployeeStatus(status) {
		return &ConstraintError{Entity: "employee", Field: "status", Reason: "unknown status"}
	}
	res := r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("employee", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}

// Delete removes an employee. The linked user row goes with it and
// messages lose their responsible; fails with RestrictedError while
// any sale references the employee.
func (r *EmployeeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "employee", "employees", id)
	})
}
