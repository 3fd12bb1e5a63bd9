// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

// MessageResponse is the success envelope: a single user-facing sentence.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure envelope. Error is always a short,
// actionable, user-safe sentence; internal detail stays in the logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewMessageResponse creates a success response.
func NewMessageResponse(message string) *MessageResponse {
	return &MessageResponse{Message: message}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// ContactRequest is the POST /api/contact payload.
// Field-presence rules are business validation with exact user-facing
// messages, so they are enforced in the domain layer rather than with
// binding tags.
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Subject  string `json:"subject"`
	FormType string `json:"formType"`
}

// NewsletterRequest is the POST /api/newsletter payload.
type NewsletterRequest struct {
	Email string `json:"email"`
}
