package models

// ErrorResponse is the error body written by the fare API.
type ErrorResponse struct {
	Error  string `json:"error"`
	Errors any    `json:"errors,omitempty"`
}
