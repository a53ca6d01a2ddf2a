package web

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is a bare error body for failures raised by the framework
// itself, before any application error handling is in place.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"-"`
}

func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Status: http.StatusInternalServerError}
}

func (e ErrorResponse) Encode() ([]byte, string, error) {
	data, err := json.Marshal(e)
	return data, "application/json", err
}

func (e ErrorResponse) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusInternalServerError
	}
	return e.Status
}
