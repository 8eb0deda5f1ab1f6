package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/eventsapi/internal/pkg/message"
	"github.com/ferdiebergado/eventsapi/internal/pkg/web"
)

// QueryDecoder builds the params of a request from its path and query string.
// It returns per-field messages for values that cannot be converted.
type QueryDecoder[T any] func(r *http.Request) (T, map[string]string)

// DecodeQuery stores the params decoded by decode in the request context,
// where ValidateInput and the handler read them back.
func DecodeQuery[T any](decode QueryDecoder[T]) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Decoding request parameters...")
			params, errs := decode(r)
			if len(errs) > 0 {
				web.RespondUnprocessableEntity(w, errors.New("malformed request parameters"), message.InvalidInput, errs)
				return
			}

			ctx := web.NewContextWithParams(r.Context(), params)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
