package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reignofvision/agency-api/internal/adapters/http/dto"
	"github.com/reignofvision/agency-api/internal/app"
	"github.com/reignofvision/agency-api/internal/domain"
)

// Operation-specific failure messages for the send step. Everything else
// in the error contract is shared; only this sentence differs per form.
const (
	msgContactSendFailed    = "Failed to send message. Please check server logs for details."
	msgNewsletterSendFailed = "Failed to subscribe. Please try again."
)

// FormHandler handles form submission endpoints.
type FormHandler struct {
	service *app.FormService
}

// NewFormHandler creates a new form handler.
func NewFormHandler(service *app.FormService) *FormHandler {
	return &FormHandler{
		service: service,
	}
}

// SubmitContact handles POST /api/contact.
// A signal that something failed never carries provider detail; the body
// is one of the fixed user-facing sentences.
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unreadable body is outside the validation taxonomy; it maps
		// to the generic failure, matching the submission contract.
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgUnexpected))
		return
	}

	sub := domain.ContactSubmission{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Phone:    req.Phone,
		Message:  req.Message,
		Subject:  req.Subject,
		FormType: req.FormType,
	}

	msg, err := h.service.SubmitContact(c.Request.Context(), sub)
	if err != nil {
		dto.HandleError(c, err, msgContactSendFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(msg))
}

// SubmitNewsletter handles POST /api/newsletter.
func (h *FormHandler) SubmitNewsletter(c *gin.Context) {
	var req dto.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(dto.MsgUnexpected))
		return
	}

	msg, err := h.service.SubmitNewsletter(c.Request.Context(), domain.NewsletterSubmission{Email: req.Email})
	if err != nil {
		dto.HandleError(c, err, msgNewsletterSendFailed)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(msg))
}

// RegisterFormRoutes registers form routes on the given router group.
func (h *FormHandler) RegisterFormRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitContact)
	rg.POST("/newsletter", h.SubmitNewsletter)
}
