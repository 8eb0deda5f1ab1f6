package web

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	HeaderContentType = "Content-Type"
	MimeJSON          = "application/json"
)

// SendJSON writes data as is, without the message/data envelope of OK.
// The payload is encoded before anything is written so that an encoding
// failure still yields a clean 500.
func SendJSON(w http.ResponseWriter, statusCode int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		RespondInternalServerError(w, err)
		return
	}

	w.Header().Set(HeaderContentType, MimeJSON)
	w.WriteHeader(statusCode)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write json response", "reason", err)
	}
}
