package error_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errorx "github.com/ferdiebergado/eventsapi/internal/pkg/error"
)

func TestIsContextError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"Canceled", context.Canceled, true},
		{"Deadline exceeded", context.DeadlineExceeded, true},
		{"Wrapped canceled", fmt.Errorf("list events: %w", context.Canceled), true},
		{"Other error", errors.New("connection refused"), false},
		{"Nil", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := errorx.IsContextError(tc.err); got != tc.want {
				t.Errorf("errorx.IsContextError(%v) = %t, want: %t", tc.err, got, tc.want)
			}
		})
	}
}
