// File: /controllers/auth_controller.go
package controllers

import (
	"net/http"
	"time"

	"autosales-api/models"
	"autosales-api/repositories"
	"autosales-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	users     *repositories.UserRepository
	tokens    *repositories.TokenRepository
	jwtSecret string
}

func NewAuthController(users *repositories.UserRepository, tokens *repositories.TokenRepository, jwtSecret string) *AuthController {
	return &AuthController{
		users:     users,
		tokens:    tokens,
		jwtSecret: jwtSecret,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.GetByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.generateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Logout blacklists the presented token until it would have expired on
// its own.
func (ac *AuthController) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	tokenString := c.GetString("token")
	userID := c.GetUint("user_id")
	if jti == "" || tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No token to revoke"})
		return
	}

	// Keep the blacklist row only as long as the token itself lives.
	expiresAt := time.Now().Add(tokenLifetime)
	if v, ok := c.Get("token_expires"); ok {
		if exp, ok := v.(time.Time); ok {
			expiresAt = exp
		}
	}

	err := ac.tokens.Blacklist(&models.BlacklistedToken{
		JTI:       jti,
		Token:     tokenString,
		UserID:    userID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

type RegisterUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
	EmployeeID *uint  `json:"employee_id"`
}

// Register creates a login principal. Admin only.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.IsValidPassword(req.Password) {
		utils.SendValidationError(c, "Password must be at least 6 characters and mix character types")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       req.Role,
		EmployeeID: req.EmployeeID,
	}
	if err := ac.users.Create(&user); err != nil {
		utils.SendStoreError(c, err)
		return
	}

	user.Password = ""
	utils.SendCreated(c, "User registered successfully", user)
}

// Me returns the authenticated principal with its linked employee.
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.users.GetByID(c.GetUint("user_id"))
	if err != nil {
		utils.SendStoreError(c, err)
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, user)
}

func (ac *AuthController) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"jti":     uuid.New().String(),
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
