// File: /repositories/user_repository.go
package repositories

import (
	"autosales-api/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a login principal. The unique indexes on email and
// employee_id reject a second account for the same address or the
// same employee.
func (r *UserRepository) Create(user *models.User) error {
	if !models.IsValidRole(user.Role) {
		return &ConstraintError{Entity: "user", Field: "role", Reason: "unknown role"}
	}
	if err := r.db.Create(user).Error; err != nil {
		return translateError("user", 0, err)
	}
	return nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Employee").First(&user, id).Error; err != nil {
		return nil, translateError("user", id, err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateError("user", 0, err)
	}
	return &user, nil
}

func (r *UserRepository) Update(id uint, updates map[string]interface{}) error {
	if role, ok := updates["role"].(string); ok && !models.IsValidRole(role) {
		return &ConstraintError{Entity: "user", Field: "role", Reason: "unknown role"}
	}
	res := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return translateError("user", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return deleteWithPolicy(tx, "user", "users", id)
	})
}
