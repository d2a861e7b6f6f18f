package ledger

import (
	"context"

	"kynetic_backend/internal/events"
	apphttp "kynetic_backend/internal/http"
	"kynetic_backend/platform/logger"
)

// Module is the submission ledger bounded context module.
type Module struct {
	store   Store
	handler *Handler
	log     *logger.Logger
}

// NewModule creates the ledger module around the given store.
func NewModule(store Store, log *logger.Logger) *Module {
	return &Module{
		store:   store,
		handler: NewHandler(store),
		log:     log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "ledger"
}

// Store returns the ledger store for external use.
func (m *Module) Store() Store {
	return m.store
}

// RegisterRoutes mounts the admin submission history routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/submissions", m.handler.List)
}

// RegisterEventHandlers subscribes the ledger to relay events. Recording is
// best-effort: a failed append is logged and dropped, it never affects the
// relay response already sent to the visitor.
func (m *Module) RegisterEventHandlers(bus events.Bus) {
	bus.Subscribe("submissions.relayed", events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		relayed, ok := event.(events.SubmissionRelayed)
		if !ok {
			return nil
		}

		if _, err := m.store.Record(ctx, relayed.Kind, relayed.Data); err != nil {
			m.log.LedgerError("record", err)
		}
		return nil
	}))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
