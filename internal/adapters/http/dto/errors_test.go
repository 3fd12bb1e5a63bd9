package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reignofvision/agency-api/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	const sendFailMsg = "Failed to send message. Please check server logs for details."

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation error carries its message",
			err:        domain.NewValidationError("email", domain.MsgInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.MsgInvalidEmail,
		},
		{
			name:       "missing fields",
			err:        domain.NewValidationError("", domain.MsgContactFieldsRequired),
			wantStatus: http.StatusBadRequest,
			wantError:  domain.MsgContactFieldsRequired,
		},
		{
			name:       "not found",
			err:        domain.NewNotFoundError("article", "missing-post"),
			wantStatus: http.StatusNotFound,
			wantError:  `article with slug "missing-post" not found`,
		},
		{
			name:       "misconfigured hides setting names",
			err:        domain.NewMisconfiguredError("ses", "secret_access_key"),
			wantStatus: http.StatusInternalServerError,
			wantError:  MsgMisconfigured,
		},
		{
			name:       "send failure uses the operation message",
			err:        domain.NewSendError("ses", "MessageRejected"),
			wantStatus: http.StatusInternalServerError,
			wantError:  sendFailMsg,
		},
		{
			name:       "unknown error is generic",
			err:        errors.New("database on fire"),
			wantStatus: http.StatusInternalServerError,
			wantError:  MsgUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err, sendFailMsg)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestMapDomainError_NeverLeaksInternalDetail(t *testing.T) {
	// Provider and infrastructure detail stays out of responses.
	_, resp := MapDomainError(domain.NewSendError("ses", "AccessDenied: arn:aws:iam::123"), "Failed to subscribe. Please try again.")
	assert.NotContains(t, resp.Error, "AccessDenied")
	assert.NotContains(t, resp.Error, "ses")

	_, resp = MapDomainError(domain.NewMisconfiguredError("ses", "access_key_id"), "x")
	assert.NotContains(t, resp.Error, "access_key_id")
}

func TestResponses(t *testing.T) {
	msg := NewMessageResponse("Thank you!")
	assert.Equal(t, "Thank you!", msg.Message)

	errResp := NewErrorResponse("Email is required")
	assert.Equal(t, "Email is required", errResp.Error)
}
