package httputil

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	// Unix epoch milliseconds
	Timestamp int64  `json:"timestamp"`
	Message   string `json:"message"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	WriteJSONResponse(w, statusCode, ErrorResponse{
		Timestamp: time.Now().UnixMilli(),
		Message:   message,
	})
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}
