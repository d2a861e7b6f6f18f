package repository

import (
	"context"
	"errors"
	"fmt"

	"kynetic_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectNotFoundMessage = "project not found"

const projectColumns = `id, title, description, image_key, client, status, progress,
	start_date, end_date, sort_order, created_at, updated_at`

// Repo implements the projects repository on Postgres.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new projects repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// Create inserts a project at the end of the display order.
func (r *Repo) Create(ctx context.Context, params CreateProjectParams) (Project, error) {
	query := `
		INSERT INTO projects (title, description, image_key, client, status, progress, start_date, end_date, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT COALESCE(MAX(sort_order), 0) + 1 FROM projects))
		RETURNING ` + projectColumns

	row := r.pool.QueryRow(ctx, query,
		params.Title, params.Description, params.ImageKey, params.Client,
		params.Status, params.Progress, params.StartDate, params.EndDate,
	)

	project, err := scanProject(row)
	if err != nil {
		return Project{}, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// Update applies the non-nil fields and bumps updated_at.
func (r *Repo) Update(ctx context.Context, params UpdateProjectParams) (Project, error) {
	query := `
		UPDATE projects
		SET title = COALESCE($2, title),
			description = COALESCE($3, description),
			image_key = COALESCE($4, image_key),
			client = COALESCE($5, client),
			status = COALESCE($6, status),
			progress = COALESCE($7, progress),
			start_date = COALESCE($8, start_date),
			end_date = COALESCE($9, end_date),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + projectColumns

	row := r.pool.QueryRow(ctx, query,
		params.ID, params.Title, params.Description, params.ImageKey,
		params.Client, params.Status, params.Progress, params.StartDate, params.EndDate,
	)

	project, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMessage)
		}
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes a project.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound(projectNotFoundMessage)
	}
	return nil
}

// GetByID retrieves a project by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, apperr.NotFound(projectNotFoundMessage)
		}
		return Project{}, fmt.Errorf("get project by id: %w", err)
	}
	return project, nil
}

// List returns all projects in display order.
func (r *Repo) List(ctx context.Context) ([]Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY sort_order ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// Reorder swaps the project's sort order with its neighbour in a transaction.
func (r *Repo) Reorder(ctx context.Context, id uuid.UUID, direction Direction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback(ctx)

	var current int
	if err := tx.QueryRow(ctx,
		`SELECT sort_order FROM projects WHERE id = $1 FOR UPDATE`, id,
	).Scan(&current); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(projectNotFoundMessage)
		}
		return fmt.Errorf("reorder lookup: %w", err)
	}

	neighbourQuery := `
		SELECT id, sort_order FROM projects
		WHERE sort_order < $1
		ORDER BY sort_order DESC LIMIT 1 FOR UPDATE`
	if direction == DirectionDown {
		neighbourQuery = `
			SELECT id, sort_order FROM projects
			WHERE sort_order > $1
			ORDER BY sort_order ASC LIMIT 1 FOR UPDATE`
	}

	var neighbourID uuid.UUID
	var neighbourOrder int
	if err := tx.QueryRow(ctx, neighbourQuery, current).Scan(&neighbourID, &neighbourOrder); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already at the edge of the list.
			return nil
		}
		return fmt.Errorf("reorder neighbour lookup: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE projects SET sort_order = $2, updated_at = now() WHERE id = $1`, id, neighbourOrder,
	); err != nil {
		return fmt.Errorf("reorder update: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE projects SET sort_order = $2, updated_at = now() WHERE id = $1`, neighbourID, current,
	); err != nil {
		return fmt.Errorf("reorder neighbour update: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageKey, &p.Client, &p.Status,
		&p.Progress, &p.StartDate, &p.EndDate, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}
