package backupapi

import "fmt"

// APIError indicates that the server processed the request and replied with
// an envelope whose Status is neither 200 nor 201. Use errors.As to check
// whether an error is an *APIError.
type APIError struct {
	// Status is the envelope status code (e.g., 400).
	Status int

	// Message is the envelope message (e.g., "User not found").
	Message string
}

var _ error = &APIError{}

// Error implements error.
func (err *APIError) Error() string {
	return fmt.Sprintf("backupapi: server replied with status %d: %s", err.Status, err.Message)
}
