package auth

import (
	"time"

	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/httpkit"
	"kynetic_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   string `json:"expiresAt"`
	Email       string `json:"email"`
}

// Handler serves the admin auth endpoints.
type Handler struct {
	svc      *Service
	validate *validator.Validator
}

// NewHandler creates an auth handler.
func NewHandler(svc *Service, validate *validator.Validator) *Handler {
	return &Handler{svc: svc, validate: validate}
}

// Login handles POST /api/v1/auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		httpkit.HandleError(c, apperr.Validation("email and password are required"))
		return
	}

	session, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	httpkit.OK(c, LoginResponse{
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt.Format(time.RFC3339),
		Email:       session.Email,
	})
}

// Me handles GET /api/v1/admin/me. It simply echoes the authenticated admin
// identity; the dashboard uses it to validate a stored token on load.
func (h *Handler) Me(c *gin.Context) {
	email := c.GetString(httpkit.ContextAdminEmailKey)
	httpkit.OK(c, gin.H{"email": email})
}
