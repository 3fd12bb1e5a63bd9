package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/reignofvision/agency-api/internal/domain"
)

const timestampLayout = "1/2/2006, 3:04:05 PM"

const emailStyle = `
      body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
      .container { max-width: 600px; margin: 0 auto; padding: 20px; }
      .header { background: linear-gradient(135deg, #731bdd 0%, #6a23c4 100%); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0; }
      .content { background: #f8f9fa; padding: 30px; border-radius: 0 0 8px 8px; }
      .field { margin-bottom: 20px; }
      .label { font-weight: bold; color: #731bdd; display: block; margin-bottom: 5px; }
      .value { background: white; padding: 10px; border-radius: 4px; border-left: 4px solid #731bdd; }
      .footer { margin-top: 30px; padding-top: 20px; border-top: 2px solid #731bdd; text-align: center; color: #666; }
`

var contactTmpl = template.Must(template.New("contact").Parse(`<html>
  <head>
    <style>` + emailStyle + `</style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>New Contact Form Submission</h1>
        <p>Reign of Vision - Digital Agency</p>
      </div>
      <div class="content">
        <div class="field">
          <span class="label">Form Type:</span>
          <div class="value">{{.FormType}}</div>
        </div>
        <div class="field">
          <span class="label">Name:</span>
          <div class="value">{{.Name}}</div>
        </div>
        <div class="field">
          <span class="label">Email:</span>
          <div class="value">{{.Email}}</div>
        </div>
        {{if .Company}}<div class="field">
          <span class="label">Company:</span>
          <div class="value">{{.Company}}</div>
        </div>
        {{end}}{{if .Phone}}<div class="field">
          <span class="label">Phone:</span>
          <div class="value">{{.Phone}}</div>
        </div>
        {{end}}{{if .Subject}}<div class="field">
          <span class="label">Subject:</span>
          <div class="value">{{.Subject}}</div>
        </div>
        {{end}}<div class="field">
          <span class="label">Message:</span>
          <div class="value">{{.Message}}</div>
        </div>
        <div class="footer">
          <p>Reply to: {{.Email}}</p>
          <p>Submitted: {{.Submitted}}</p>
        </div>
      </div>
    </div>
  </body>
</html>`))

var newsletterTmpl = template.Must(template.New("newsletter").Parse(`<html>
  <head>
    <style>` + emailStyle + `</style>
  </head>
  <body>
    <div class="container">
      <div class="header">
        <h1>New Newsletter Subscription</h1>
        <p>Reign of Vision - Digital Agency</p>
      </div>
      <div class="content">
        <div class="field">
          <span class="label">Email:</span>
          <div class="value">{{.Email}}</div>
        </div>
        <div class="footer">
          <p>Subscribed: {{.Subscribed}}</p>
        </div>
      </div>
    </div>
  </body>
</html>`))

type contactEmailData struct {
	FormType  string
	Name      string
	Email     string
	Company   string
	Phone     string
	Subject   string
	Message   string
	Submitted string
}

func renderContactHTML(sub domain.ContactSubmission, at time.Time) (string, error) {
	var buf strings.Builder

	err := contactTmpl.Execute(&buf, contactEmailData{
		FormType:  sub.Label(),
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Phone:     sub.Phone,
		Subject:   sub.Subject,
		Message:   sub.Message,
		Submitted: at.Format(timestampLayout),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderNewsletterHTML(sub domain.NewsletterSubmission, at time.Time) (string, error) {
	var buf strings.Builder

	err := newsletterTmpl.Execute(&buf, struct {
		Email      string
		Subscribed string
	}{
		Email:      sub.Email,
		Subscribed: at.Format(timestampLayout),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func contactText(sub domain.ContactSubmission, at time.Time) string {
	var b strings.Builder

	b.WriteString("New Contact Form Submission - Reign of Vision\n\n")
	fmt.Fprintf(&b, "Form Type: %s\n", sub.Label())
	fmt.Fprintf(&b, "Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)

	if sub.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", sub.Company)
	}

	if sub.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	}

	if sub.Subject != "" {
		fmt.Fprintf(&b, "Subject: %s\n", sub.Subject)
	}

	fmt.Fprintf(&b, "\nMessage:\n%s\n\n", sub.Message)
	fmt.Fprintf(&b, "Reply to: %s\n", sub.Email)
	fmt.Fprintf(&b, "Submitted: %s\n", at.Format(timestampLayout))

	return b.String()
}

func newsletterText(sub domain.NewsletterSubmission, at time.Time) string {
	var b strings.Builder

	b.WriteString("New Newsletter Subscription - Reign of Vision\n\n")
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Subscribed: %s\n", at.Format(timestampLayout))

	return b.String()
}
