// File: /controllers/user_controller.go
package controllers

import (
	"net/http"

	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UserController manages login principals. All routes are admin only;
// account creation lives in AuthController.Register.
type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

type UpdateUserRequest struct {
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	Role       *string `json:"role"`
	EmployeeID *uint   `json:"employee_id"`
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email != nil && !utils.IsValidEmail(*req.Email) {
		utils.SendValidationError(c, "Invalid email")
		return
	}

	updates := map[string]interface{}{}
	setIfPresentStr(updates, "email", req.Email)
	setIfPresentStr(updates, "role", req.Role)
	if req.EmployeeID != nil {
		updates["employee_id"] = *req.EmployeeID
	}
	if req.Password != nil {
		if !utils.IsValidPassword(*req.Password) {
			utils.SendValidationError(c, "Password must be at least 6 characters and mix character types")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		updates["password"] = string(hashed)
	}
	if len(updates) == 0 {
		utils.SendValidationError(c, "No fields to update")
		return
	}

	if err := uc.users.Update(id, updates); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a login principal. Admin accounts must be demoted
// before they can be removed, so the last admin cannot lock everyone
// out by accident.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}
	user, err := uc.users.GetByID(id)
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	if user.IsAdmin() {
		utils.SendError(c, http.StatusConflict, "Demote the admin account before deleting it")
		return
	}

	if err := uc.users.Delete(id); err != nil {
		utils.SendStoreError(c, err)
		return
	}
	utils.SendSuccess(c, "User deleted successfully", nil)
}
