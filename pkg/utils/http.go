package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the envelope every service answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, data any, code int) error {
	return WriteJSON(w, Response{Success: true, Data: data}, code)
}

// WriteList mirrors listing responses of the services: data plus a count.
func WriteList(w http.ResponseWriter, data any, count int) error {
	return WriteJSON(w, Response{Success: true, Data: data, Count: &count}, http.StatusOK)
}

func WriteMessage(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, Response{Success: true, Message: message}, code)
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteJSON(w, Response{Success: false, Message: message}, code)
}

// WriteErrorCause carries the underlying cause string alongside the
// human-readable message. Callers are expected to pass an empty cause in
// production configurations.
func WriteErrorCause(w http.ResponseWriter, message, cause string, code int) error {
	return WriteJSON(w, Response{Success: false, Message: message, Error: cause}, code)
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	fields := make([]string, 0)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields = append(fields, fe.Field()+" "+fe.Tag())
		}
	}

	return WriteJSON(w, Response{
		Success: false,
		Message: "invalid request",
		Error:   strings.Join(fields, ", "),
	}, http.StatusBadRequest)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
