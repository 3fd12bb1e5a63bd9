package app

import (
	"context"
	"log/slog"

	"github.com/reignofvision/agency-api/internal/domain"
	"github.com/reignofvision/agency-api/internal/ports"
)

// Success messages returned verbatim to the site after a form
// submission is delivered.
const (
	MsgContactSuccess    = "Thank you! Your message has been sent successfully."
	MsgNewsletterSuccess = "Thank you! You've been subscribed to our newsletter."
)

// FormService validates form submissions and forwards them to the
// notification mailer. Validation always runs before any delivery
// attempt, so an invalid submission never reaches the mailer.
type FormService struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewFormService creates a new form service.
// Panics if mailer is nil. Defaults logger to slog.Default() if nil.
func NewFormService(mailer ports.Mailer, logger *slog.Logger) *FormService {
	if mailer == nil {
		panic("app: mailer is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &FormService{
		mailer: mailer,
		logger: logger.With(slog.String("component", "app.FormService")),
	}
}

// SubmitContact validates and delivers a contact submission, returning
// the user-facing success message.
func (s *FormService) SubmitContact(ctx context.Context, sub domain.ContactSubmission) (string, error) {
	if err := sub.Validate(); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "contact submission received",
		slog.String("form_type", sub.Label()),
		slog.String("email", sub.Email),
	)

	if err := s.mailer.SendContactNotification(ctx, sub); err != nil {
		return "", err
	}

	return MsgContactSuccess, nil
}

// SubmitNewsletter validates and delivers a newsletter signup,
// returning the user-facing success message.
func (s *FormService) SubmitNewsletter(ctx context.Context, sub domain.NewsletterSubmission) (string, error) {
	if err := sub.Validate(); err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "newsletter signup received",
		slog.String("email", sub.Email),
	)

	if err := s.mailer.SendNewsletterNotification(ctx, sub); err != nil {
		return "", err
	}

	return MsgNewsletterSuccess, nil
}
