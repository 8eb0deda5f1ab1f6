package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/eventsapi/internal/pkg/message"
	"github.com/ferdiebergado/eventsapi/internal/pkg/web"
	"github.com/ferdiebergado/eventsapi/internal/platform/validation"
)

// ValidateInput validates the params of type T stored in the request context by a decode middleware.
func ValidateInput[T any](validator validation.Validator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Validating input...")
			params, err := web.ParamsFromContext[T](r.Context())
			if err != nil {
				web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
				return
			}

			if errs := validator.ValidateStruct(params); errs != nil {
				web.RespondUnprocessableEntity(w, errors.New("invalid input"), message.InvalidInput, errs)
				return
			}

			slog.Debug("Input is valid.")
			next.ServeHTTP(w, r)
		})
	}
}
