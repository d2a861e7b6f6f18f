package submissions

import (
	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/apperr"
	"kynetic_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const msgInvalidType = "invalid submission type"

// Handler handles HTTP requests for the public form relay endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new submissions handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Contact relays a contact form submission.
// POST /api/contact
// Accepts JSON or multipart form data, English or Norwegian field names.
func (h *Handler) Contact(c *gin.Context) {
	h.relay(c, transport.KindContact)
}

// PriceQuote relays a price-quote request from the prisforslag form.
// POST /api/price-quote
func (h *Handler) PriceQuote(c *gin.Context) {
	h.relay(c, transport.KindPriceQuote)
}

// Send relays a generic submission. The "type" field discriminates between
// contact, calculator and newsletter payloads.
// POST /api/send-email
func (h *Handler) Send(c *gin.Context) {
	payload, err := ParsePayload(c.Request)
	if httpkit.HandleError(c, err) {
		return
	}

	kind := transport.Kind(payload.First("type"))
	if kind == "" || kind == transport.KindPriceQuote || !kind.Valid() {
		httpkit.HandleError(c, apperr.BadRequest(msgInvalidType))
		return
	}

	h.relayPayload(c, kind, payload)
}

func (h *Handler) relay(c *gin.Context, kind transport.Kind) {
	payload, err := ParsePayload(c.Request)
	if httpkit.HandleError(c, err) {
		return
	}
	h.relayPayload(c, kind, payload)
}

func (h *Handler) relayPayload(c *gin.Context, kind transport.Kind, payload Payload) {
	sub := Normalize(kind, payload)

	if err := h.svc.Relay(c.Request.Context(), kind, sub); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.RelayResponse{Success: true})
}
