package dto

// ErrorResponse HTTP error body. Error carries optional detail and is
// omitted for 5xx responses, where the detail is only logged.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}
