// Package mail delivers form-submission notifications over Amazon SES.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/reignofvision/agency-api/internal/domain"
	appconfig "github.com/reignofvision/agency-api/internal/platform/config"
)

const providerName = "ses"

// sesAPI is the subset of the SES v2 client used by the sender.
type sesAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender implements ports.Mailer on top of Amazon SES.
type Sender struct {
	client sesAPI
	cfg    appconfig.EmailConfig
	logger *slog.Logger
	now    func() time.Time
}

// NewSender creates a new SES-backed mailer.
// Panics if client is nil. Defaults logger to slog.Default() if nil.
func NewSender(client sesAPI, cfg appconfig.EmailConfig, logger *slog.Logger) *Sender {
	if client == nil {
		panic("mail: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Sender{
		client: client,
		cfg:    cfg,
		logger: logger.With(slog.String("component", "mail.Sender")),
		now:    time.Now,
	}
}

// SendContactNotification emails the configured inbox about a contact
// submission. The submitter's address goes on Reply-To so the inbox can
// answer directly.
func (s *Sender) SendContactNotification(ctx context.Context, sub domain.ContactSubmission) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	subject := sub.Subject
	if subject == "" {
		subject = "New Contact Form Submission from " + sub.Name
	}

	html, err := renderContactHTML(sub, s.now())
	if err != nil {
		return fmt.Errorf("rendering contact email: %w", err)
	}

	s.logger.InfoContext(ctx, "sending contact notification",
		slog.String("from", s.cfg.FromAddress),
		slog.String("to", s.cfg.ToAddress),
		slog.String("subject", subject),
	)

	return s.send(ctx, subject, html, contactText(sub, s.now()), sub.Email)
}

// SendNewsletterNotification emails the configured inbox about a
// newsletter signup.
func (s *Sender) SendNewsletterNotification(ctx context.Context, sub domain.NewsletterSubmission) error {
	if err := s.checkConfigured(); err != nil {
		return err
	}

	subject := "New Newsletter Subscription from " + sub.Email

	html, err := renderNewsletterHTML(sub, s.now())
	if err != nil {
		return fmt.Errorf("rendering newsletter email: %w", err)
	}

	return s.send(ctx, subject, html, newsletterText(sub, s.now()), sub.Email)
}

// checkConfigured verifies every delivery setting is present before any
// send is attempted. Missing settings are named so operators can fix
// the deployment rather than chase send failures.
func (s *Sender) checkConfigured() error {
	var missing []string

	if s.cfg.FromAddress == "" {
		missing = append(missing, "from_address")
	}

	if s.cfg.ToAddress == "" {
		missing = append(missing, "to_address")
	}

	if s.cfg.AccessKeyID == "" {
		missing = append(missing, "access_key_id")
	}

	if s.cfg.SecretAccessKey == "" {
		missing = append(missing, "secret_access_key")
	}

	if len(missing) > 0 {
		s.logger.Error("email delivery not configured",
			slog.String("missing", strings.Join(missing, ",")))

		return domain.NewMisconfiguredError(providerName, missing...)
	}

	return nil
}

func (s *Sender) send(ctx context.Context, subject, html, text, replyTo string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.cfg.FromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.cfg.ToAddress},
		},
		ReplyToAddresses: []string{replyTo},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(html),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(text),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "SES send failed", slog.Any("error", err))
		return domain.NewSendError(providerName, err.Error())
	}

	s.logger.InfoContext(ctx, "email sent",
		slog.String("message_id", aws.ToString(out.MessageId)))

	return nil
}
