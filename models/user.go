// File: /models/user.go
package models

import (
	"time"
)

// User roles.
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User is an authentication principal. At most one user may be linked
// to a given employee; the link cascades when the employee is removed.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null;size:100"`
	Password   string    `json:"-" gorm:"not null;size:255"`
	Role       string    `json:"role" gorm:"not null;size:20"`
	EmployeeID *uint     `json:"employee_id" gorm:"uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employee *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func IsValidRole(role string) bool {
	return role == RoleSeller || role == RoleAdmin
}
