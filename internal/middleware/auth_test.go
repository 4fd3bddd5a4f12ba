package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/viewtube/backend/internal/auth"
)

func setupRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return router
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthenticate_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(Authenticate(jwtService))

	token, err := jwtService.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	w := request(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(Authenticate(jwtService))

	w := request(router, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for missing token, got %d", w.Code)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(Authenticate(jwtService))

	w := request(router, "Bearer not.a.token")
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for invalid token, got %d", w.Code)
	}
}

func TestRequireToken_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(RequireToken(jwtService))

	token, err := jwtService.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	w := request(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
}

func TestRequireToken_MissingHeader(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(RequireToken(jwtService))

	w := request(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for missing header, got %d", w.Code)
	}
}

func TestRequireToken_InvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(RequireToken(jwtService))

	w := request(router, "Bearer not.a.token")
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for invalid token, got %d", w.Code)
	}
}

func TestRequireToken_WrongSecret(t *testing.T) {
	issuer := auth.NewJWTService("another-secret-key", 24)
	jwtService := auth.NewJWTService("test-secret-key", 24)
	router := setupRouter(RequireToken(jwtService))

	token, err := issuer.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	w := request(router, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for foreign token, got %d", w.Code)
	}
}
