package utils

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Response is the envelope every user-facing error travels in. Status is
// machine-checkable, Message human-readable; Errors carries field-level
// detail when there is more than one thing to say.
type Response struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string, errs ...string) {
	RespondWithJSON(w, code, Response{
		Status:  "error",
		Message: message,
		Errors:  errs,
	})
}
