package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed  = "method_not_allowed"
	codeNotFound          = "not_found"
	codeInvalidBody       = "invalid_request_body"
	codeMissingField      = "missing_required_field"
	codeInvalidID         = "invalid_id"
	codeBookingNotFound   = "booking_not_found"
	codeUserNotFound      = "user_not_found"
	codeInvalidDate       = "invalid_date"
	codeInvalidTime       = "invalid_time"
	codeInvalidDuration   = "invalid_duration"
	codeRecipientRequired = "recipient_required"
	codeMailSendFailed    = "mail_send_failed"
	codeForbidden         = "forbidden"
	codeInternalError     = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
