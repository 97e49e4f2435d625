// File: /controllers/auth_controller_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autosales-api/models"
	"autosales-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLogoutBlacklistsUntilTokenExpiry(t *testing.T) {
	db := openTestDB(t)
	ac := NewAuthController(repositories.NewUserRepository(db), repositories.NewTokenRepository(db), "test-secret")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	c.Set("jti", "logout-jti")
	c.Set("token", "the-signed-token")
	c.Set("user_id", uint(7))
	tokenExpiry := time.Now().Add(42 * time.Minute)
	c.Set("token_expires", tokenExpiry)

	ac.Logout(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.BlacklistedToken
	assert.NoError(t, db.Where("jti = ?", "logout-jti").First(&stored).Error)
	assert.EqualValues(t, 7, stored.UserID)
	// The row lives exactly as long as the token itself, not a full
	// token lifetime from now.
	assert.WithinDuration(t, tokenExpiry, stored.ExpiresAt, time.Second)
}

func TestLogoutWithoutTokenContext(t *testing.T) {
	db := openTestDB(t)
	ac := NewAuthController(repositories.NewUserRepository(db), repositories.NewTokenRepository(db), "test-secret")

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)

	ac.Logout(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
