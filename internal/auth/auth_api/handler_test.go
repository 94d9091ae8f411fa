package auth_api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/kalokoh/event-management-system/internal/auth"
	"github.com/kalokoh/event-management-system/internal/auth/auth_api"
	"github.com/kalokoh/event-management-system/internal/database"
	"github.com/kalokoh/event-management-system/internal/logger"
)

const testSecret = "test-secret"

func setupTestHandler(t *testing.T) *auth_api.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	store, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.EnsureSchema(context.Background(), "kalokoh", "kalokoh"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	svc := auth.NewService(&auth.DB{Store: store})
	return auth_api.NewHandler(svc, &logger.Logger{}, testSecret, time.Hour)
}

func postLogin(handler *auth_api.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Login(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	t.Run("Successful login issues a verifiable token", func(t *testing.T) {
		handler := setupTestHandler(t)

		w := postLogin(handler, `{"username":"kalokoh","password":"kalokoh"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool              `json:"success"`
			Data    map[string]string `json:"data"`
		}
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "kalokoh", resp.Data["username"])

		username, err := auth.VerifyToken(testSecret, resp.Data["token"])
		assert.NoError(t, err)
		assert.Equal(t, "kalokoh", username)
	})

	t.Run("Wrong password", func(t *testing.T) {
		handler := setupTestHandler(t)

		w := postLogin(handler, `{"username":"kalokoh","password":"wrong"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "login failed")
	})

	t.Run("Unknown user", func(t *testing.T) {
		handler := setupTestHandler(t)

		w := postLogin(handler, `{"username":"nobody","password":"kalokoh"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		handler := setupTestHandler(t)

		w := postLogin(handler, `{"username":"kalokoh"`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestMiddlewareGuardsProtectedRoutes(t *testing.T) {
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(testSecret))
		r.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(auth.Username(r.Context())))
		})
	})

	t.Run("Missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid token reaches the handler", func(t *testing.T) {
		token, err := auth.IssueToken(testSecret, "kalokoh", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "kalokoh", w.Body.String())
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		token, err := auth.IssueToken("other-secret", "kalokoh", time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
