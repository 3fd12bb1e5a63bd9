package domain

import "regexp"

// User-facing validation messages. These are part of the public API
// contract and are returned verbatim to the browser.
const (
	MsgContactFieldsRequired = "Name, email, and message are required"
	MsgEmailRequired         = "Email is required"
	MsgInvalidEmail          = "Please enter a valid email address"
)

// DefaultFormType is used when the submitter did not label the form origin.
const DefaultFormType = "Contact Form"

// emailPattern accepts local@domain.tld: exactly one "@", at least one
// "." after it, and no whitespace anywhere. Deliverability is the mail
// provider's problem; this only rejects obvious garbage.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the accepted address shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ContactSubmission is one contact form payload. It exists only for the
// duration of a single validate-then-send call and is never persisted.
type ContactSubmission struct {
	Name     string
	Email    string
	Company  string
	Phone    string
	Message  string
	Subject  string
	FormType string
}

// Validate checks required fields and the email shape, in submission
// order. The first failure wins.
func (s *ContactSubmission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return NewValidationError("", MsgContactFieldsRequired)
	}

	if !ValidEmail(s.Email) {
		return NewValidationError("email", MsgInvalidEmail)
	}

	return nil
}

// Label returns the form-origin label, defaulting when absent.
func (s *ContactSubmission) Label() string {
	if s.FormType == "" {
		return DefaultFormType
	}

	return s.FormType
}

// NewsletterSubmission is one newsletter signup payload. Transient,
// request-scoped, never persisted.
type NewsletterSubmission struct {
	Email string
}

// Validate checks that an email was supplied and has a plausible shape.
func (s *NewsletterSubmission) Validate() error {
	if s.Email == "" {
		return NewValidationError("email", MsgEmailRequired)
	}

	if !ValidEmail(s.Email) {
		return NewValidationError("email", MsgInvalidEmail)
	}

	return nil
}
