package mailing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMail_NotConfigured(t *testing.T) {
	err := NewMailer(MailConfig{}).SendMail("a@example.com", "subject", "body")
	assert.ErrorIs(t, err, ErrMailNotConfigured)
}

func TestSendMail_BadPort(t *testing.T) {
	err := NewMailer(MailConfig{SMTPHost: "smtp.example.com", SMTPEmail: "noreply@example.com", SMTPPort: "abc"}).
		SendMail("a@example.com", "subject", "body")
	assert.Error(t, err)
}

func TestMessageHeaders(t *testing.T) {
	m := &smtpMailer{config: MailConfig{SMTPEmail: "noreply@example.com", SMTPSender: "Meal Planner"}}

	msg := m.message("a@example.com", "Reset your password", "<p>hi</p>")

	assert.Equal(t, []string{"a@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Reset your password"}, msg.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Meal Planner")
	assert.Contains(t, buf.String(), "<p>hi</p>")
}
