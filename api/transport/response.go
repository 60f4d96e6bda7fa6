package transport

import "encoding/json"

// ErrorResponse is the body returned for every failed request. Success
// responses carry the entity itself, without a wrapper.
type ErrorResponse struct {
	Status string `json:"status"`
	Code   string `json:"code"`
	Error  string `json:"error"`
}

// NewError returns an error response body.
func NewError(code string, message string) ErrorResponse {
	return ErrorResponse{
		Status: "error",
		Code:   code,
		Error:  message,
	}
}

// String returns the JSON representation (best-effort) for logging purposes.
func (e ErrorResponse) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		return "{}"
	}
	return string(out)
}

// MessageResponse is the confirmation body for destructive operations.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports process and dependency liveness. The HTTP status is
// always 200; a database outage shows up only in the Database field.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Service  string `json:"service"`
}
