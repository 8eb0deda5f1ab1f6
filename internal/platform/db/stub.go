package db

import (
	"context"
	"errors"
)

type StubTxManager struct {
	RunInTxFunc func(context.Context, func(context.Context) error) error
}

var _ TxManager = (*StubTxManager)(nil)

func (s *StubTxManager) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if s.RunInTxFunc == nil {
		return errors.New("RunInTx not implemented by StubTxManager")
	}

	return s.RunInTxFunc(ctx, fn)
}

type StubPinger struct {
	PingContextFunc func(context.Context) error
}

var _ Pinger = (*StubPinger)(nil)

func (s *StubPinger) PingContext(ctx context.Context) error {
	if s.PingContextFunc == nil {
		return errors.New("PingContext not implemented by StubPinger")
	}

	return s.PingContextFunc(ctx)
}
