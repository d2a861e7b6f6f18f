// Package handler exposes the projects HTTP endpoints.
package handler

import (
	"net/http"

	"kynetic_backend/internal/projects/service"
	"kynetic_backend/internal/projects/transport"
	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the public listing and the admin project management routes.
type Handler struct {
	svc *service.Service
}

// New creates a projects handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /api/v1/projects.
func (h *Handler) List(c *gin.Context) {
	projects, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, transport.ListResponse{Projects: projects, Total: len(projects)})
}

// Create handles POST /api/v1/admin/projects.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}

	project, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.JSON(c, http.StatusCreated, project)
}

// Update handles PUT /api/v1/admin/projects/:id.
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, project)
}

// Delete handles DELETE /api/v1/admin/projects/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, gin.H{"success": true})
}

// Reorder handles POST /api/v1/admin/projects/:id/reorder.
func (h *Handler) Reorder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transport.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}

	if err := h.svc.Reorder(c.Request.Context(), id, req); err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, gin.H{"success": true})
}

// UploadURL handles POST /api/v1/admin/projects/upload-url.
func (h *Handler) UploadURL(c *gin.Context) {
	var req transport.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid request body"))
		return
	}

	presigned, err := h.svc.UploadURL(c.Request.Context(), req)
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, presigned)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid project id"))
		return uuid.Nil, false
	}
	return id, true
}
