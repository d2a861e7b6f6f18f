package ledger

import (
	"time"

	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/httpkit"
	"kynetic_backend/platform/sanitize"

	"github.com/gin-gonic/gin"
)

// Handler serves the admin view over the submission ledger.
type Handler struct {
	store Store
}

// NewHandler creates a ledger handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// EntryResponse is one ledger entry as shown to the admin dashboard.
type EntryResponse struct {
	ID        string                        `json:"id"`
	Kind      transport.Kind                `json:"kind"`
	Data      transport.CanonicalSubmission `json:"data"`
	CreatedAt string                        `json:"createdAt"`
}

// ListResponse wraps the admin submission list.
type ListResponse struct {
	Submissions []EntryResponse `json:"submissions"`
	Total       int             `json:"total"`
}

// List handles GET /api/v1/admin/submissions. An optional ?kind= query
// restricts the result to one submission kind; "all" or absence returns
// everything. Free-text fields are stripped of HTML before display.
func (h *Handler) List(c *gin.Context) {
	entries, err := h.store.List(c.Request.Context())
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}

	kind := transport.Kind(c.Query("kind"))
	filter := kind != "" && kind != "all"

	out := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		if filter && entry.Kind != kind {
			continue
		}
		out = append(out, toEntryResponse(entry))
	}

	httpkit.OK(c, ListResponse{Submissions: out, Total: len(out)})
}

func toEntryResponse(entry Entry) EntryResponse {
	data := entry.Data
	data.Message = sanitize.Text(data.Message)
	data.ExtraNotes = sanitize.Text(data.ExtraNotes)

	return EntryResponse{
		ID:        entry.ID.String(),
		Kind:      entry.Kind,
		Data:      data,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
