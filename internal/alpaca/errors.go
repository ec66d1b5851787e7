package alpaca

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-success HTTP response from the Alpaca API. The error
// message embeds the numeric status, status text, and the JSON-serialized
// upstream error body, in the form "<status> <statusText> - <json-body>".
type APIError struct {
	StatusCode int
	Status     string // e.g. "404 Not Found"
	Body       string // compact JSON of the upstream error body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s - %s", e.Status, e.Body)
}

// newAPIError parses the error response body as JSON and wraps it in an
// APIError. A body that is not valid JSON surfaces as a decode error
// instead.
func newAPIError(statusCode int, status string, body []byte) error {
	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to parse error response body: %w", err)
	}

	compact, err := json.Marshal(parsed)
	if err != nil {
		return fmt.Errorf("failed to serialize error response body: %w", err)
	}

	return &APIError{
		StatusCode: statusCode,
		Status:     status,
		Body:       string(compact),
	}
}
