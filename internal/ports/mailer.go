package ports

import (
	"context"

	"github.com/reignofvision/agency-api/internal/domain"
)

// Mailer is the contract against the transactional email provider.
// Implementations compose the notification body, set the submitter as
// the reply-to address, and submit exactly one send call. No retries,
// no queueing.
//
// Error contract:
//   - domain.ErrMisconfigured when a required provider setting is absent;
//     the implementation must NOT attempt a send in that case.
//   - domain.ErrSendFailed when the provider rejects the message or the
//     transport fails.
type Mailer interface {
	// SendContactNotification forwards a contact submission to the
	// configured recipient.
	SendContactNotification(ctx context.Context, sub domain.ContactSubmission) error

	// SendNewsletterNotification forwards a newsletter signup to the
	// configured recipient.
	SendNewsletterNotification(ctx context.Context, sub domain.NewsletterSubmission) error
}
