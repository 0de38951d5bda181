package backend

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSessionExpired is returned whenever the backend answers 401. The web
// layer treats it as a navigation event, never as an inline form error.
var ErrSessionExpired = errors.New("session expired")

// genericMessage is shown when the backend gave no usable error message
// (transport failure, empty body, unexpected shape).
const genericMessage = "An error occurred"

// APIError is a non-401 error response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// ErrorMessage converts any client error into the message shown to the user:
// the backend's own message verbatim when it sent one, a generic fallback
// otherwise.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericMessage
}

// decodeErrorBody pulls the message out of the backend's {"error": "..."}
// error shape. Returns "" if the body is anything else.
func decodeErrorBody(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Error
}
