package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
)

// SafeResponseWriter records the status and size of a response for the access
// log and drops anything written after the request context is done.
//
//nolint:containedctx //The writer checks the request context on every write.
type SafeResponseWriter struct {
	http.ResponseWriter
	ctx context.Context

	mu            sync.Mutex
	status        int
	headerWritten bool
	bytes         int
}

func (w *SafeResponseWriter) WriteHeader(statusCode int) {
	if w.ctxDone() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.writeHeaderLocked(statusCode)
}

func (w *SafeResponseWriter) Write(b []byte) (int, error) {
	if err := w.ctx.Err(); err != nil {
		slog.Warn("Response dropped.", "reason", err)
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.writeHeaderLocked(http.StatusOK)
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// writeHeaderLocked sends the header once; later calls are ignored.
func (w *SafeResponseWriter) writeHeaderLocked(statusCode int) {
	if w.headerWritten {
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
	w.status = statusCode
	w.headerWritten = true
}

func (w *SafeResponseWriter) ctxDone() bool {
	if err := w.ctx.Err(); err != nil {
		slog.Warn("Response header dropped.", "reason", err)
		return true
	}
	return false
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *SafeResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *SafeResponseWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *SafeResponseWriter) BytesWritten() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bytes
}

func NewSafeResponseWriter(ctx context.Context, w http.ResponseWriter) *SafeResponseWriter {
	return &SafeResponseWriter{
		ResponseWriter: w,
		ctx:            ctx,
		status:         http.StatusOK,
	}
}
