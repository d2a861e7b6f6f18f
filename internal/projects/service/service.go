// Package service implements the portfolio project use cases.
package service

import (
	"context"
	"fmt"
	"time"

	"kynetic_backend/internal/projects/repository"
	"kynetic_backend/internal/projects/transport"
	"kynetic_backend/internal/storage"
	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/logger"
	"kynetic_backend/platform/validator"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Service implements the projects use cases. The image store is optional;
// without it, projects carry image keys but no resolvable URLs.
type Service struct {
	repo     repository.Repository
	images   storage.ImageStore
	validate *validator.Validator
	log      *logger.Logger
}

// New creates a new projects service. images may be nil when MinIO is not
// configured.
func New(repo repository.Repository, images storage.ImageStore, validate *validator.Validator, log *logger.Logger) *Service {
	return &Service{repo: repo, images: images, validate: validate, log: log}
}

// List returns all projects in display order, with presigned image URLs
// resolved where possible. A failed presign degrades to a key-only entry.
func (s *Service) List(ctx context.Context) ([]transport.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("projects.list", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list projects", err)
	}

	out := make([]transport.Project, 0, len(projects))
	for _, p := range projects {
		out = append(out, s.toTransport(ctx, p))
	}
	return out, nil
}

// Create validates and stores a new project at the end of the display order.
func (s *Service) Create(ctx context.Context, req transport.CreateProjectRequest) (transport.Project, error) {
	if err := s.validate.Struct(req); err != nil {
		return transport.Project{}, apperr.Validation("invalid project payload").WithDetails(err.Error())
	}

	status := req.Status
	if status == "" {
		status = transport.StatusPlanning
	}
	if !status.Valid() {
		return transport.Project{}, apperr.Validation(fmt.Sprintf("unknown project status %q", req.Status))
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return transport.Project{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return transport.Project{}, err
	}

	project, err := s.repo.Create(ctx, repository.CreateProjectParams{
		Title:       req.Title,
		Description: req.Description,
		ImageKey:    req.ImageKey,
		Client:      req.Client,
		Status:      status,
		Progress:    req.Progress,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		s.log.DatabaseError("projects.create", err)
		return transport.Project{}, apperr.Wrap(apperr.KindInternal, "failed to create project", err)
	}

	return s.toTransport(ctx, project), nil
}

// Update applies a partial update to a project.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req transport.UpdateProjectRequest) (transport.Project, error) {
	if err := s.validate.Struct(req); err != nil {
		return transport.Project{}, apperr.Validation("invalid project payload").WithDetails(err.Error())
	}
	if req.Status != nil && !req.Status.Valid() {
		return transport.Project{}, apperr.Validation(fmt.Sprintf("unknown project status %q", *req.Status))
	}

	startDate, err := parseDatePtr(req.StartDate)
	if err != nil {
		return transport.Project{}, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return transport.Project{}, err
	}

	project, err := s.repo.Update(ctx, repository.UpdateProjectParams{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageKey:    req.ImageKey,
		Client:      req.Client,
		Status:      req.Status,
		Progress:    req.Progress,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return transport.Project{}, err
		}
		s.log.DatabaseError("projects.update", err)
		return transport.Project{}, apperr.Wrap(apperr.KindInternal, "failed to update project", err)
	}

	return s.toTransport(ctx, project), nil
}

// Delete removes a project and, best-effort, its stored image.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return err
		}
		s.log.DatabaseError("projects.get", err)
		return apperr.Wrap(apperr.KindInternal, "failed to delete project", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return err
		}
		s.log.DatabaseError("projects.delete", err)
		return apperr.Wrap(apperr.KindInternal, "failed to delete project", err)
	}

	if s.images != nil && project.ImageKey != "" {
		if err := s.images.Delete(ctx, project.ImageKey); err != nil {
			s.log.Warn("failed to delete project image", "fileKey", project.ImageKey, "error", err)
		}
	}
	return nil
}

// Reorder moves a project one position up or down in the display order.
func (s *Service) Reorder(ctx context.Context, id uuid.UUID, req transport.ReorderRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return apperr.Validation("direction must be up or down")
	}

	if err := s.repo.Reorder(ctx, id, repository.Direction(req.Direction)); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return err
		}
		s.log.DatabaseError("projects.reorder", err)
		return apperr.Wrap(apperr.KindInternal, "failed to reorder project", err)
	}
	return nil
}

// UploadURL presigns an image upload for the admin dashboard.
func (s *Service) UploadURL(ctx context.Context, req transport.UploadURLRequest) (*storage.PresignedURL, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperr.Validation("invalid upload request").WithDetails(err.Error())
	}
	if s.images == nil {
		return nil, apperr.Internal("image storage is not configured")
	}

	presigned, err := s.images.PresignUpload(ctx, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		if apperr.Is(err, apperr.KindValidation) {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to presign upload", err)
	}
	return presigned, nil
}

func (s *Service) toTransport(ctx context.Context, p repository.Project) transport.Project {
	out := transport.Project{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		ImageKey:    p.ImageKey,
		Client:      p.Client,
		Status:      p.Status,
		Progress:    p.Progress,
		SortOrder:   p.SortOrder,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		out.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		out.EndDate = p.EndDate.Format(dateLayout)
	}
	if s.images != nil && p.ImageKey != "" {
		if presigned, err := s.images.PresignDownload(ctx, p.ImageKey); err == nil {
			out.ImageURL = presigned.URL
		}
	}
	return out
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, apperr.Validation(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value))
	}
	return &t, nil
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	return parseDate(*value)
}
