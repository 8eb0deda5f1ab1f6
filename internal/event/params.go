package event

import (
	"net/http"
	"strconv"

	"github.com/ferdiebergado/eventsapi/internal/config"
	"github.com/ferdiebergado/eventsapi/internal/middleware"
)

const PathEventID = "event_id"

// ListParamsDecoder reads locale, page and size from the query string,
// using the configured defaults for the missing ones.
func ListParamsDecoder(cfg *config.Events) middleware.QueryDecoder[ListParams] {
	return func(r *http.Request) (ListParams, map[string]string) {
		query := r.URL.Query()
		params := ListParams{
			Locale: queryString(query.Get("locale"), cfg.DefaultLocale),
			Page:   1,
			Size:   cfg.DefaultPageSize,
		}

		errs := make(map[string]string)
		if raw := query.Get("page"); raw != "" {
			page, err := strconv.Atoi(raw)
			if err != nil {
				errs["page"] = "page must be an integer"
			}
			params.Page = page
		}

		if raw := query.Get("size"); raw != "" {
			size, err := strconv.Atoi(raw)
			if err != nil {
				errs["size"] = "size must be an integer"
			}
			params.Size = size
		}

		return params, errs
	}
}

// FindParamsDecoder reads the event id from the path and the locale from the query string.
func FindParamsDecoder(cfg *config.Events) middleware.QueryDecoder[FindParams] {
	return func(r *http.Request) (FindParams, map[string]string) {
		params := FindParams{
			Locale: queryString(r.URL.Query().Get("locale"), cfg.DefaultLocale),
		}

		id, err := strconv.ParseInt(r.PathValue(PathEventID), 10, 64)
		if err != nil {
			return params, map[string]string{PathEventID: "event_id must be an integer"}
		}
		params.EventID = id

		return params, nil
	}
}

func queryString(val, fallback string) string {
	if val == "" {
		return fallback
	}
	return val
}
