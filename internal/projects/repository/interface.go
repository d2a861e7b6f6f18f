package repository

import (
	"context"
	"time"

	"kynetic_backend/internal/projects/transport"

	"github.com/google/uuid"
)

// Project is the repository model of a portfolio project.
type Project struct {
	ID          uuid.UUID
	Title       string
	Description string
	ImageKey    string
	Client      string
	Status      transport.Status
	Progress    int
	StartDate   *time.Time
	EndDate     *time.Time
	SortOrder   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProjectParams holds the fields for creating a project. The sort
// order is assigned by the repository (appended at the end).
type CreateProjectParams struct {
	Title       string
	Description string
	ImageKey    string
	Client      string
	Status      transport.Status
	Progress    int
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateProjectParams holds the fields for updating a project.
// Nil pointers leave the stored value unchanged.
type UpdateProjectParams struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	ImageKey    *string
	Client      *string
	Status      *transport.Status
	Progress    *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// Direction is a one-step move in the display order.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Repository is the persistence interface of the projects module.
type Repository interface {
	Create(ctx context.Context, params CreateProjectParams) (Project, error)
	Update(ctx context.Context, params UpdateProjectParams) (Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (Project, error)
	List(ctx context.Context) ([]Project, error)

	// Reorder swaps the project's sort order with its neighbour in the given
	// direction. Moving the first project up or the last down is a no-op.
	Reorder(ctx context.Context, id uuid.UUID, direction Direction) error
}
