package error

import (
	"context"
	"errors"
	"log/slog"
)

// IsContextError reports whether err was caused by a cancelled or expired
// request context. Such failures are logged at warn level only.
func IsContextError(err error) bool {
	switch {
	case errors.Is(err, context.Canceled):
		slog.Warn("Request cancelled by the client.", "reason", err)
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("Request timed out.", "reason", err)
	default:
		return false
	}
	return true
}
