// File: /middleware/middleware_test.go
package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

type fakeBlacklist struct {
	revoked map[string]bool
}

func (f *fakeBlacklist) IsBlacklisted(jti string) (bool, error) {
	return f.revoked[jti], nil
}

func signToken(t *testing.T, secret, jti string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": float64(42),
		"email":   "seller@example.com",
		"role":    "seller",
		"jti":     jti,
		"exp":     time.Now().Add(expiresIn).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func authTestRouter(blacklist BlacklistChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, blacklist), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	r := authTestRouter(&fakeBlacklist{revoked: map[string]bool{}})
	token := signToken(t, testSecret, "jti-1", time.Hour)

	w := doGet(r, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := authTestRouter(nil)

	if w := doGet(r, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}
	if w := doGet(r, "Token abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	r := authTestRouter(nil)
	token := signToken(t, "other-secret", "jti-1", time.Hour)

	if w := doGet(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong signature, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r := authTestRouter(nil)
	token := signToken(t, testSecret, "jti-1", -time.Minute)

	if w := doGet(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	blacklist := &fakeBlacklist{revoked: map[string]bool{"revoked-jti": true}}
	r := authTestRouter(blacklist)

	token := signToken(t, testSecret, "revoked-jti", time.Hour)
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked token, got %d", w.Code)
	}

	token = signToken(t, testSecret, "live-jti", time.Hour)
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for live token, got %d", w.Code)
	}
}

type failingBlacklist struct{}

func (failingBlacklist) IsBlacklisted(string) (bool, error) {
	return false, errors.New("store down")
}

func TestAuthMiddlewareRejectsWhenBlacklistUnavailable(t *testing.T) {
	// A broken blacklist must not let possibly revoked tokens through.
	r := authTestRouter(failingBlacklist{})
	token := signToken(t, testSecret, "jti-1", time.Hour)

	if w := doGet(r, "Bearer "+token); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while blacklist is down, got %d", w.Code)
	}
}

func TestAuthMiddlewareExposesTokenExpiry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got time.Time
	r.GET("/claims", AuthMiddleware(testSecret, nil), func(c *gin.Context) {
		if v, ok := c.Get("token_expires"); ok {
			got, _ = v.(time.Time)
		}
		c.Status(http.StatusOK)
	})

	token := signToken(t, testSecret, "jti-1", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/claims", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got.IsZero() {
		t.Fatal("expected token expiry in the request context")
	}
	if until := time.Until(got); until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("expected expiry about an hour out, got %v", until)
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(testSecret, nil), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Seller token against an admin route.
	token := signToken(t, testSecret, "jti-1", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for seller on admin route, got %d", w.Code)
	}
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/limited", RateLimit(1, 2), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("burst requests must pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %v", codes)
	}
}
