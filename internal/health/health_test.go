package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/health"
	"github.com/ferdiebergado/eventsapi/internal/pkg/message"
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
)

func TestHandler_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pingErr     error
		wantStatus  int
		wantMessage string
	}{
		{"Database reachable", nil, http.StatusOK, message.ServiceHealthy},
		{"Database down", errors.New("connection refused"), http.StatusServiceUnavailable, message.ServiceUnhealthy},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			pinger := &db.StubPinger{
				PingContextFunc: func(ctx context.Context) error {
					if _, ok := ctx.Deadline(); !ok {
						return errors.New("ping without deadline")
					}
					return tc.pingErr
				},
			}

			h := health.NewHandler(pinger, 500*time.Millisecond)
			rec := httptest.NewRecorder()
			h.Check(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rec.Code != tc.wantStatus {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tc.wantStatus)
			}

			var body struct {
				Message string         `json:"message"`
				Data    *health.Status `json:"data"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}

			if body.Message != tc.wantMessage {
				t.Errorf("body.Message = %q, want: %q", body.Message, tc.wantMessage)
			}

			if tc.pingErr == nil && (body.Data == nil || body.Data.Status != "ok") {
				t.Errorf("body.Data = %+v, want status ok", body.Data)
			}
		})
	}
}
