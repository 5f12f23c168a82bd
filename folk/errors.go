// ABOUTME: Error types for Folk API failures and pre-flight input validation
// ABOUTME: Network failures surface as synthetic status-500 API errors
package folk

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when a request is attempted without a configured
// API key. The check happens at first use, never at construction.
var ErrNoAPIKey = errors.New("folk: FOLK_API_KEY is not set")

// APIError is a failed upstream call: either a non-2xx response, or a
// transport failure reported with status 500.
type APIError struct {
	Status  int
	Message string
	// Details is the decoded response body, kept for callers that need the
	// raw upstream payload. Log the status, not this.
	Details map[string]any

	cause error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Folk API error %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.cause }

// networkError wraps a transport-level failure (DNS, refused connection,
// timeout) as a synthetic status-500 APIError.
func networkError(err error) *APIError {
	return &APIError{
		Status:  500,
		Message: "Network error: " + err.Error(),
		cause:   err,
	}
}

// ValidationError reports malformed input rejected before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// errorMessage digs a human-readable message out of an error response body.
// Probe order: error.message, error as a bare string, top-level message.
func errorMessage(body []byte) (string, map[string]any) {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "Unknown error", nil
	}

	if errField, ok := decoded["error"]; ok {
		switch e := errField.(type) {
		case map[string]any:
			if msg, ok := e["message"].(string); ok && msg != "" {
				return msg, decoded
			}
		case string:
			if e != "" {
				return e, decoded
			}
		}
	}
	if msg, ok := decoded["message"].(string); ok && msg != "" {
		return msg, decoded
	}
	return "Unknown error", decoded
}
