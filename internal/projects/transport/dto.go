// Package transport defines the wire-level types of the projects module.
package transport

// Status is the lifecycle stage of a portfolio project.
type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known project statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusReview, StatusCompleted:
		return true
	}
	return false
}

// Project is a portfolio project as exposed over the API.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageKey    string `json:"imageKey,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Client      string `json:"client,omitempty"`
	Status      Status `json:"status"`
	Progress    int    `json:"progress"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateProjectRequest is the admin payload for creating a project.
type CreateProjectRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
	ImageKey    string `json:"imageKey" validate:"omitempty,max=500"`
	Client      string `json:"client" validate:"omitempty,max=200"`
	Status      Status `json:"status" validate:"omitempty"`
	Progress    int    `json:"progress" validate:"gte=0,lte=100"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateProjectRequest is the admin payload for updating a project.
// Nil pointers leave the stored value unchanged.
type UpdateProjectRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	ImageKey    *string `json:"imageKey" validate:"omitempty,max=500"`
	Client      *string `json:"client" validate:"omitempty,max=200"`
	Status      *Status `json:"status"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
	StartDate   *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}

// ReorderRequest moves a project one position in the display order.
type ReorderRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// UploadURLRequest asks for a presigned image upload URL.
type UploadURLRequest struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required"`
	SizeBytes   int64  `json:"sizeBytes" validate:"required,gt=0"`
}

// ListResponse wraps a project listing.
type ListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
