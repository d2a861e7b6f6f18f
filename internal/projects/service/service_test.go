package service

import (
	"context"
	"testing"
	"time"

	"kynetic_backend/internal/projects/repository"
	"kynetic_backend/internal/projects/transport"
	"kynetic_backend/internal/storage"
	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/logger"
	"kynetic_backend/platform/validator"

	"github.com/google/uuid"
)

type fakeRepo struct {
	projects map[uuid.UUID]repository.Project
	order    []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{projects: make(map[uuid.UUID]repository.Project)}
}

func (r *fakeRepo) Create(_ context.Context, params repository.CreateProjectParams) (repository.Project, error) {
	p := repository.Project{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		ImageKey:    params.ImageKey,
		Client:      params.Client,
		Status:      params.Status,
		Progress:    params.Progress,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		SortOrder:   len(r.order) + 1,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, params repository.UpdateProjectParams) (repository.Project, error) {
	p, ok := r.projects[params.ID]
	if !ok {
		return repository.Project{}, apperr.NotFound("project not found")
	}
	if params.Title != nil {
		p.Title = *params.Title
	}
	if params.Progress != nil {
		p.Progress = *params.Progress
	}
	if params.Status != nil {
		p.Status = *params.Status
	}
	r.projects[params.ID] = p
	return p, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.projects[id]; !ok {
		return apperr.NotFound("project not found")
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return repository.Project{}, apperr.NotFound("project not found")
	}
	return p, nil
}

func (r *fakeRepo) List(_ context.Context) ([]repository.Project, error) {
	out := make([]repository.Project, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) Reorder(context.Context, uuid.UUID, repository.Direction) error {
	return nil
}

type fakeImages struct {
	deleted []string
}

func (f *fakeImages) PresignUpload(_ context.Context, fileName, _ string, _ int64) (*storage.PresignedURL, error) {
	return &storage.PresignedURL{URL: "https://minio.example/" + fileName, FileKey: "projects/" + fileName}, nil
}

func (f *fakeImages) PresignDownload(_ context.Context, fileKey string) (*storage.PresignedURL, error) {
	return &storage.PresignedURL{URL: "https://minio.example/" + fileKey, FileKey: fileKey}, nil
}

func (f *fakeImages) Delete(_ context.Context, fileKey string) error {
	f.deleted = append(f.deleted, fileKey)
	return nil
}

func (f *fakeImages) EnsureBucket(context.Context) error { return nil }

func newTestService(repo repository.Repository, images storage.ImageStore) *Service {
	return New(repo, images, validator.New(), logger.New("development"))
}

func TestCreateDefaultsToPlanning(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)

	project, err := svc.Create(context.Background(), transport.CreateProjectRequest{
		Title:       "Nettbutikk for Nordmann AS",
		Description: "Headless nettbutikk med Stripe.",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if project.Status != transport.StatusPlanning {
		t.Fatalf("status = %q, want planning", project.Status)
	}
	if project.SortOrder != 1 {
		t.Fatalf("sortOrder = %d, want 1", project.SortOrder)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	ctx := context.Background()

	cases := []transport.CreateProjectRequest{
		{},                                    // missing title and description
		{Title: "x", Description: "y", Status: "done"},              // unknown status
		{Title: "x", Description: "y", StartDate: "01.02.2026"},     // wrong date format
		{Title: "x", Description: "y", Progress: 150},               // progress out of range
	}

	for i, req := range cases {
		if _, err := svc.Create(ctx, req); !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("case %d: error = %v, want validation", i, err)
		}
	}
}

func TestListResolvesImageURLs(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeImages{})

	if _, err := svc.Create(context.Background(), transport.CreateProjectRequest{
		Title:       "Portefølje",
		Description: "Side med bilder.",
		ImageKey:    "projects/hero_ab12cd34.webp",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if projects[0].ImageURL != "https://minio.example/projects/hero_ab12cd34.webp" {
		t.Fatalf("ImageURL = %q", projects[0].ImageURL)
	}
}

func TestListWithoutImageStore(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	if _, err := svc.Create(context.Background(), transport.CreateProjectRequest{
		Title:       "Portefølje",
		Description: "Side med bilder.",
		ImageKey:    "projects/hero.webp",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	projects, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if projects[0].ImageURL != "" {
		t.Fatalf("ImageURL = %q, want empty without image store", projects[0].ImageURL)
	}
	if projects[0].ImageKey != "projects/hero.webp" {
		t.Fatalf("ImageKey = %q", projects[0].ImageKey)
	}
}

func TestDeleteRemovesStoredImage(t *testing.T) {
	repo := newFakeRepo()
	images := &fakeImages{}
	svc := newTestService(repo, images)

	project, err := svc.Create(context.Background(), transport.CreateProjectRequest{
		Title:       "Portefølje",
		Description: "Side med bilder.",
		ImageKey:    "projects/hero.webp",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), uuid.MustParse(project.ID)); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(images.deleted) != 1 || images.deleted[0] != "projects/hero.webp" {
		t.Fatalf("deleted = %v", images.deleted)
	}
}

func TestDeleteUnknownProject(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)

	if err := svc.Delete(context.Background(), uuid.New()); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("error = %v, want not found", err)
	}
}

func TestReorderRejectsInvalidDirection(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)

	err := svc.Reorder(context.Background(), uuid.New(), transport.ReorderRequest{Direction: "sideways"})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("error = %v, want validation", err)
	}
}

func TestUploadURLWithoutStore(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)

	_, err := svc.UploadURL(context.Background(), transport.UploadURLRequest{
		FileName:    "hero.webp",
		ContentType: "image/webp",
		SizeBytes:   1024,
	})
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("error = %v, want internal when storage is disabled", err)
	}
}
