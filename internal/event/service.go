package event

import (
	"context"
	"fmt"
	"math"

	"github.com/ferdiebergado/eventsapi/internal/platform/db"
)

// Repository is the storage of published events.
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]Event, error)
	Find(ctx context.Context, eventID int64) (*Event, error)
}

type ListParams struct {
	Locale string `json:"locale" validate:"required,max=10"`
	Page   int    `json:"page" validate:"gte=1"`
	Size   int    `json:"size" validate:"gte=1,lte=100"`
}

// Offset is the number of events skipped before the requested page.
// It saturates at math.MaxInt, so a page past any real data is just empty.
func (p ListParams) Offset() int {
	if p.Page <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Size
}

type FindParams struct {
	EventID int64  `json:"event_id"`
	Locale  string `json:"locale" validate:"required"`
}

type service struct {
	repo  Repository
	txMgr db.TxManager
}

var _ Service = (*service)(nil)

// List returns one page of published events, newest first, localized for params.Locale.
func (s *service) List(ctx context.Context, params ListParams) ([]ListView, error) {
	var events []Event
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		events, err = s.repo.List(txCtx, params.Size, params.Offset())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list events page %d: %w", params.Page, err)
	}

	views := make([]ListView, 0, len(events))
	for i := range events {
		views = append(views, newListView(&events[i], params.Locale))
	}

	return views, nil
}

// Find returns a published event localized for params.Locale, or ErrNotFound.
func (s *service) Find(ctx context.Context, params FindParams) (*DetailView, error) {
	var e *Event
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		e, err = s.repo.Find(txCtx, params.EventID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("find event %d: %w", params.EventID, err)
	}

	return newDetailView(e, params.Locale), nil
}

func NewService(repo Repository, txMgr db.TxManager) *service {
	return &service{
		repo:  repo,
		txMgr: txMgr,
	}
}
