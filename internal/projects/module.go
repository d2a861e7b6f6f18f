// Package projects manages the portfolio projects shown on the marketing
// site and edited from the admin dashboard.
package projects

import (
	apphttp "kynetic_backend/internal/http"
	"kynetic_backend/internal/projects/handler"
	"kynetic_backend/internal/projects/repository"
	"kynetic_backend/internal/projects/service"
	"kynetic_backend/internal/storage"
	"kynetic_backend/platform/logger"
	"kynetic_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the projects bounded context module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the projects module. images may be nil
// when MinIO is not configured; image routes then return errors but the rest
// of the module works.
func NewModule(pool *pgxpool.Pool, images storage.ImageStore, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, images, validator.New(), log)
	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "projects"
}

// RegisterRoutes mounts the public listing and the admin management routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/projects", m.handler.List)

	ctx.Admin.POST("/projects", m.handler.Create)
	ctx.Admin.PUT("/projects/:id", m.handler.Update)
	ctx.Admin.DELETE("/projects/:id", m.handler.Delete)
	ctx.Admin.POST("/projects/:id/reorder", m.handler.Reorder)
	ctx.Admin.POST("/projects/upload-url", m.handler.UploadURL)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
