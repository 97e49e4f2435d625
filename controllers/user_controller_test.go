// File: /controllers/user_controller_test.go
package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"autosales-api/models"
	"autosales-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	// A second pool connection would see its own empty in-memory store.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Address{},
		&models.Employee{},
		&models.User{},
		&models.Client{},
		&models.Sale{},
		&models.BlacklistedToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := NewUserController(repositories.NewUserRepository(db))
	r := gin.New()
	r.GET("/users/:id", uc.GetUser)
	r.PUT("/users/:id", uc.UpdateUser)
	r.DELETE("/users/:id", uc.DeleteUser)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hashed", Role: role}
	if err := repositories.NewUserRepository(db).Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetUser(t *testing.T) {
	db := openTestDB(t)
	r := newUserRouter(db)
	user := seedUser(t, db, "seller@autosales.local", models.RoleSeller)

	w := doJSON(r, http.MethodGet, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, user.Email, got.Email)

	w = doJSON(r, http.MethodGet, "/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser(t *testing.T) {
	db := openTestDB(t)
	r := newUserRouter(db)
	seedUser(t, db, "seller@autosales.local", models.RoleSeller)

	w := doJSON(r, http.MethodPut, "/users/1", map[string]interface{}{"role": models.RoleAdmin})
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.User
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.RoleAdmin, got.Role)

	// Bad inputs never reach the store.
	w = doJSON(r, http.MethodPut, "/users/1", map[string]interface{}{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPut, "/users/1", map[string]interface{}{"password": "weak"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown role is a constraint violation from the repository.
	w = doJSON(r, http.MethodPut, "/users/1", map[string]interface{}{"role": "boss"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPut, "/users/99", map[string]interface{}{"role": models.RoleSeller})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	db := openTestDB(t)
	r := newUserRouter(db)
	seedUser(t, db, "seller@autosales.local", models.RoleSeller)
	seedUser(t, db, "admin@autosales.local", models.RoleAdmin)

	w := doJSON(r, http.MethodDelete, "/users/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining int64
	db.Model(&models.User{}).Count(&remaining)
	assert.EqualValues(t, 1, remaining)

	// Admin accounts must be demoted before deletion.
	w = doJSON(r, http.MethodDelete, "/users/2", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	db.Model(&models.User{}).Count(&remaining)
	assert.EqualValues(t, 1, remaining)

	w = doJSON(r, http.MethodDelete, "/users/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
