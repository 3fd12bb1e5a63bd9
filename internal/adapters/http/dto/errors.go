package dto

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reignofvision/agency-api/internal/domain"
	"github.com/reignofvision/agency-api/internal/platform/logging"
)

// User-facing messages for non-validation failures. Validation messages
// travel inside domain.ValidationError; these cover everything else.
const (
	// MsgMisconfigured is returned when provider settings are absent.
	// Deliberately generic so configuration detail never leaks.
	MsgMisconfigured = "Email service is not properly configured. Please contact support."

	// MsgUnexpected is the catch-all for anything not in the taxonomy.
	MsgUnexpected = "An unexpected error occurred. Please try again."
)

// MapDomainError maps a domain error to an HTTP status and the flat
// {error: string} envelope. sendFailMsg is the operation-specific text
// for send failures (contact and newsletter phrase it differently).
// Unknown errors map to 500 with a generic message.
func MapDomainError(err error, sendFailMsg string) (int, *ErrorResponse) {
	switch {
	case domain.IsValidation(err):
		msg := domain.UserMessage(err)
		if msg == "" {
			msg = err.Error()
		}

		return http.StatusBadRequest, NewErrorResponse(msg)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(err.Error())

	case domain.IsMisconfigured(err):
		return http.StatusInternalServerError, NewErrorResponse(MsgMisconfigured)

	case domain.IsSendFailed(err):
		return http.StatusInternalServerError, NewErrorResponse(sendFailMsg)

	default:
		return http.StatusInternalServerError, NewErrorResponse(MsgUnexpected)
	}
}

// HandleError writes a mapped error response. Internal failures are
// logged with full detail; the response body never carries it.
func HandleError(c *gin.Context, err error, sendFailMsg string) {
	status, errResp := MapDomainError(err, sendFailMsg)

	if status >= http.StatusInternalServerError {
		logger := logging.FromContext(c.Request.Context())
		logger.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(status, errResp)
}
