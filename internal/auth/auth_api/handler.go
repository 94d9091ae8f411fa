package auth_api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kalokoh/event-management-system/internal/auth"
	"github.com/kalokoh/event-management-system/internal/logger"
	"github.com/kalokoh/event-management-system/internal/utils"
)

type Handler struct {
	AuthService *auth.Service
	Logger      *logger.Logger
	JWTSecret   string
	TokenTTL    time.Duration
}

func NewHandler(authService *auth.Service, logger *logger.Logger, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		AuthService: authService,
		Logger:      logger,
		JWTSecret:   jwtSecret,
		TokenTTL:    tokenTTL,
	}
}

// RegisterRoutes registers the public login route on a chi router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.Login)
}

// Login checks the submitted credentials and issues a session token.
// A wrong username or password is a 401, not a server error.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.ErrorResponse("invalid request body", err.Error()))
		return
	}

	ok, err := h.AuthService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		h.Logger.Error("AUTH", "Credential lookup failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("authentication unavailable", err.Error()))
		return
	}
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.ErrorResponse("login failed", "invalid username or password"))
		return
	}

	token, err := auth.IssueToken(h.JWTSecret, req.Username, h.TokenTTL)
	if err != nil {
		h.Logger.Error("AUTH", "Token issuance failed: "+err.Error())
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("token issuance failed", err.Error()))
		return
	}

	h.Logger.Info("AUTH", "User logged in: "+req.Username)
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("login successful", map[string]string{
		"username": req.Username,
		"token":    token,
	}))
}
