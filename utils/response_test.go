// File: /utils/response_test.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"autosales-api/repositories"

	"github.com/gin-gonic/gin"
)

func recordStoreError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SendStoreError(c, err)
	return w
}

func TestSendStoreErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &repositories.NotFoundError{Entity: "client", ID: 1}, http.StatusNotFound},
		{"restricted", &repositories.RestrictedError{Entity: "client", ID: 1, ReferencedBy: "sales"}, http.StatusConflict},
		{"constraint", &repositories.ConstraintError{Entity: "user", Field: "email", Reason: "duplicate entry"}, http.StatusConflict},
		{"busy", fmt.Errorf("tx: %w", repositories.ErrBusy), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := recordStoreError(tc.err)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestSendStoreErrorBusyRetryHint(t *testing.T) {
	w := recordStoreError(repositories.ErrBusy)
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Fatalf("expected Retry-After header, got %q", got)
	}
}
