package auth

import (
	apphttp "kynetic_backend/internal/http"
	"kynetic_backend/platform/config"
	"kynetic_backend/platform/logger"
	"kynetic_backend/platform/validator"
)

// Module is the admin auth bounded context module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the auth module.
func NewModule(cfg config.AuthConfig, log *logger.Logger) *Module {
	svc := NewService(cfg, log)
	return &Module{
		handler: NewHandler(svc, validator.New()),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts the login route behind the stricter auth rate
// limiter, and the identity echo behind admin auth.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/auth/login", ctx.AuthRateLimiter.RateLimit(), m.handler.Login)
	ctx.Admin.GET("/me", m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
