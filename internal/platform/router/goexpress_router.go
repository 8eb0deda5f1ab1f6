package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	mux *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

// NewGoexpressRouter returns a Router backed by goexpress.
//
//nolint:ireturn //Callers depend on the Router abstraction.
func NewGoexpressRouter() Router {
	return &goexpressRouter{mux: goexpress.New()}
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Use applies middleware to the routes registered after it.
func (r *goexpressRouter) Use(middleware Middleware) {
	r.mux.Use(middleware)
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mux.Get(pattern, handler, middlewares...)
}

// Mount serves handler for GET and HEAD requests matching pattern.
func (r *goexpressRouter) Mount(pattern string, handler http.Handler, middlewares ...Middleware) {
	r.mux.Get(pattern, handler.ServeHTTP, middlewares...)
}

// Group registers the routes added by fn under prefix. goexpress mounts the
// group as a subtree of the parent mux with the prefix stripped, so patterns in
// fn are relative to prefix and "/{$}" matches the prefix with a trailing slash.
// The parent's global middlewares still run first, then the given ones.
func (r *goexpressRouter) Group(prefix string, fn func(r Router), middlewares ...Middleware) {
	r.mux.Group(prefix, func(group *goexpress.Router) {
		fn(&goexpressRouter{mux: group})
	}, middlewares...)
}
