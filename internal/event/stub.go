package event

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc func(ctx context.Context, params ListParams) ([]ListView, error)
	FindFunc func(ctx context.Context, params FindParams) (*DetailView, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, params ListParams) ([]ListView, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, params)
}

func (s *StubService) Find(ctx context.Context, params FindParams) (*DetailView, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, params)
}

type StubRepo struct {
	ListFunc func(ctx context.Context, limit, offset int) ([]Event, error)
	FindFunc func(ctx context.Context, eventID int64) (*Event, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context, limit, offset int) ([]Event, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, limit, offset)
}

func (r *StubRepo) Find(ctx context.Context, eventID int64) (*Event, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, eventID)
}
