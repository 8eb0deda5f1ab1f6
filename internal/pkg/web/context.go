package web

import (
	"context"
	"errors"
	"fmt"
)

// ErrParamsMissing is returned when a handler runs without its decoded params.
var ErrParamsMissing = errors.New("request params missing from context")

type paramsKey struct{}

// NewContextWithParams stores the decoded request params for the handler.
//
//nolint:ireturn //This function needs to return a context.
func NewContextWithParams(baseCtx context.Context, params any) context.Context {
	return context.WithValue(baseCtx, paramsKey{}, params)
}

// ParamsFromContext returns the params stored by NewContextWithParams when they are a T.
//
//nolint:ireturn //This is a generic function.
func ParamsFromContext[T any](ctx context.Context) (T, error) {
	params, ok := ctx.Value(paramsKey{}).(T)
	if !ok {
		return params, fmt.Errorf("%w: want %T", ErrParamsMissing, params)
	}
	return params, nil
}
