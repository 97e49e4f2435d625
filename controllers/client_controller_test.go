// File: /controllers/client_controller_test.go
package controllers

import (
	"net/http"
	"testing"

	"autosales-api/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newClientRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cc := NewClientController(repositories.NewClientRepository(openTestDB(t)))
	r := gin.New()
	r.POST("/clients", cc.CreateClient)
	r.PUT("/clients/:id", cc.UpdateClient)
	return r
}

func TestUpdateClientValidatesEmailAndCPF(t *testing.T) {
	r := newClientRouter(t)

	w := doJSON(r, http.MethodPost, "/clients", map[string]interface{}{
		"name":  "Ana Souza",
		"email": "ana@example.com",
		"cpf":   "111.444.777-35",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Partial updates get the same scrutiny as creates.
	w = doJSON(r, http.MethodPut, "/clients/1", map[string]interface{}{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = doJSON(r, http.MethodPut, "/clients/1", map[string]interface{}{"cpf": "111.444.777-36"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/clients/1", map[string]interface{}{"email": "ana.souza@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
}
