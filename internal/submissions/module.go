// Package submissions provides the form relay bounded context: it normalizes
// differently-shaped form payloads from the marketing site into canonical
// submissions and relays them to the email notifier.
package submissions

import (
	"kynetic_backend/internal/email"
	"kynetic_backend/internal/events"
	apphttp "kynetic_backend/internal/http"
	"kynetic_backend/platform/logger"
)

// Module is the submissions bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the submissions module with all its dependencies.
func NewModule(sender email.Sender, bus events.Bus, log *logger.Logger) *Module {
	svc := NewService(sender, bus, log)
	return &Module{
		handler: NewHandler(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "submissions"
}

// Service returns the relay service for external use.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts the public relay routes. The paths mirror the
// API routes the site's forms post to.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Forms.POST("/contact", m.handler.Contact)
	ctx.Forms.POST("/price-quote", m.handler.PriceQuote)
	ctx.Forms.POST("/send-email", m.handler.Send)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
