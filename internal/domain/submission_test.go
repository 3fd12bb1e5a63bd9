package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "simple address", email: "jane@x.com", want: true},
		{name: "subdomain", email: "a@mail.example.co.uk", want: true},
		{name: "plus tag", email: "a+tag@example.com", want: true},
		{name: "empty", email: "", want: false},
		{name: "no at sign", email: "not-an-email", want: false},
		{name: "no dot after at", email: "a@example", want: false},
		{name: "dot before at only", email: "a.b@example", want: false},
		{name: "two at signs", email: "a@@example.com", want: false},
		{name: "space in local part", email: "a b@example.com", want: false},
		{name: "space in domain", email: "a@exa mple.com", want: false},
		{name: "trailing whitespace", email: "a@example.com ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.email))
		})
	}
}

func TestContactSubmission_Validate(t *testing.T) {
	valid := ContactSubmission{
		Name:    "Jane",
		Email:   "jane@x.com",
		Message: "Hi",
	}

	t.Run("valid minimal submission", func(t *testing.T) {
		sub := valid
		require.NoError(t, sub.Validate())
	})

	t.Run("valid full submission", func(t *testing.T) {
		sub := valid
		sub.Company = "Acme"
		sub.Phone = "+1 555 0100"
		sub.Subject = "Quote request"
		sub.FormType = "Footer Form"
		require.NoError(t, sub.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*ContactSubmission)
		wantMsg string
	}{
		{
			name:    "missing name",
			mutate:  func(s *ContactSubmission) { s.Name = "" },
			wantMsg: MsgContactFieldsRequired,
		},
		{
			name:    "missing email",
			mutate:  func(s *ContactSubmission) { s.Email = "" },
			wantMsg: MsgContactFieldsRequired,
		},
		{
			name:    "missing message",
			mutate:  func(s *ContactSubmission) { s.Message = "" },
			wantMsg: MsgContactFieldsRequired,
		},
		{
			name:    "invalid email",
			mutate:  func(s *ContactSubmission) { s.Email = "not-an-email" },
			wantMsg: MsgInvalidEmail,
		},
		{
			// Presence is checked before shape, so an empty email reports
			// the missing-fields message, not the invalid-email one.
			name: "missing email wins over shape",
			mutate: func(s *ContactSubmission) {
				s.Email = ""
				s.Name = "Jane"
			},
			wantMsg: MsgContactFieldsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid
			tt.mutate(&sub)

			err := sub.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.wantMsg, UserMessage(err))
		})
	}
}

func TestContactSubmission_Label(t *testing.T) {
	sub := ContactSubmission{}
	assert.Equal(t, DefaultFormType, sub.Label())

	sub.FormType = "Popup Form"
	assert.Equal(t, "Popup Form", sub.Label())
}

func TestNewsletterSubmission_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantMsg string
	}{
		{name: "valid", email: "jane@x.com", wantMsg: ""},
		{name: "missing email", email: "", wantMsg: MsgEmailRequired},
		{name: "invalid email", email: "not-an-email", wantMsg: MsgInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := NewsletterSubmission{Email: tt.email}

			err := sub.Validate()
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))
			assert.Equal(t, tt.wantMsg, UserMessage(err))
		})
	}
}
