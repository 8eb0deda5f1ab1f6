package router

import (
	"net/http"
)

type Middleware = func(next http.Handler) http.Handler

// Router registers the read-only routes of the API.
//
// Patterns follow net/http.ServeMux syntax, so wildcards such as
// "/events/{event_id}" are read back with (*http.Request).PathValue
// and a trailing slash matches the whole subtree.
type Router interface {
	http.Handler

	Use(middleware Middleware)
	Get(pattern string, handlerFunc http.HandlerFunc, middlewares ...Middleware)
	Mount(pattern string, handler http.Handler, middlewares ...Middleware)
	Group(prefix string, fn func(r Router), middlewares ...Middleware)
}
