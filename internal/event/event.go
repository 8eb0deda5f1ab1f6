// Package event serves the published events of the event management system,
// localized for the locale a client asks for.
package event

import (
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
)

type Module struct {
	repo    *repository
	svc     *service
	handler *Handler
}

func (m *Module) Handler() *Handler {
	return m.handler
}

func NewModule(dbExec db.Executor, txMgr db.TxManager) *Module {
	repo := NewRepository(dbExec)
	svc := NewService(repo, txMgr)
	handler := NewHandler(svc)
	return &Module{
		repo:    repo,
		svc:     svc,
		handler: handler,
	}
}
