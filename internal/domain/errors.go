// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and are mapped to HTTP responses
// by the adapter layer.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the submitted payload failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrMisconfigured indicates a required external setting is absent.
	// The operation fails closed without contacting the provider.
	ErrMisconfigured = errors.New("service misconfigured")

	// ErrSendFailed indicates the mail provider rejected the message or
	// the transport failed.
	ErrSendFailed = errors.New("send failed")

	// ErrUnavailable indicates a required dependency is unreachable.
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	Slug   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Slug != "" {
		return fmt.Sprintf("%s with slug %q not found", e.Entity, e.Slug)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, slug string) error {
	return &NotFoundError{Entity: entity, Slug: slug}
}

// ValidationError provides context for validation errors.
// Message is user-facing and returned verbatim in the HTTP response.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// MisconfiguredError names the settings that were missing. Setting names
// are logged server-side and never included in HTTP responses.
type MisconfiguredError struct {
	Service  string
	Settings []string
}

// Error implements the error interface.
func (e *MisconfiguredError) Error() string {
	if len(e.Settings) > 0 {
		return fmt.Sprintf("%s misconfigured: missing %v", e.Service, e.Settings)
	}

	return e.Service + " misconfigured"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MisconfiguredError) Unwrap() error {
	return ErrMisconfigured
}

// NewMisconfiguredError creates a misconfiguration error with context.
func NewMisconfiguredError(service string, settings ...string) error {
	return &MisconfiguredError{Service: service, Settings: settings}
}

// SendError provides context for mail delivery failures.
type SendError struct {
	Provider string
	Reason   string
}

// Error implements the error interface.
func (e *SendError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("sending via %s failed: %s", e.Provider, e.Reason)
	}

	return "sending via " + e.Provider + " failed"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *SendError) Unwrap() error {
	return ErrSendFailed
}

// NewSendError creates a send error with context.
func NewSendError(provider, reason string) error {
	return &SendError{Provider: provider, Reason: reason}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsMisconfigured checks if an error is a misconfiguration error.
func IsMisconfigured(err error) bool {
	return errors.Is(err, ErrMisconfigured)
}

// IsSendFailed checks if an error is a send failure.
func IsSendFailed(err error) bool {
	return errors.Is(err, ErrSendFailed)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// UserMessage returns the user-facing message for a validation error,
// or empty string when err is not a validation error.
func UserMessage(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	return ""
}
