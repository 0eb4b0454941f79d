package mailer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"medisupply-api/internal/config"
	"medisupply-api/internal/models"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testContact() models.ContactMessage {
	return models.ContactMessage{
		FirstName: "Ana",
		LastName:  "Torres",
		Email:     "ana@example.com",
		Subject:   "sales",
		Message:   "Bulk pricing?",
	}
}

func TestDisabledMailerIsNoOp(t *testing.T) {
	m := New(config.SMTPConfig{})
	assert.False(t, m.Enabled())

	result, err := m.SendContactNotification(testContact())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.MessageID)
}

func TestSendContactNotificationSendsBothMails(t *testing.T) {
	sender := &fakeSender{}
	cfg := config.SMTPConfig{
		Host:     "smtp.example.com",
		From:     "noreply@medisupply.example",
		NotifyTo: "admin@medisupply.example",
	}
	m := NewWithSender(cfg, sender)

	result, err := m.SendContactNotification(testContact())
	require.NoError(t, err)
	assert.True(t, result.Success)

	// Aviso al administrador y confirmación al remitente.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"admin@medisupply.example"}, sender.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"ana@example.com"}, sender.sent[1].GetHeader("To"))
}

func TestSendContactNotificationTransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	m := NewWithSender(config.SMTPConfig{Host: "smtp.example.com"}, sender)

	_, err := m.SendContactNotification(testContact())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAdminTemplateContainsContactFields(t *testing.T) {
	body, err := renderAdminNotification(testContact())
	require.NoError(t, err)

	assert.Contains(t, body, "Ana Torres")
	assert.Contains(t, body, "ana@example.com")
	assert.Contains(t, body, "sales")
	assert.Contains(t, body, "Bulk pricing?")
	assert.Contains(t, body, "Not provided") // sin teléfono
}

func TestUserTemplateGreetsByFirstName(t *testing.T) {
	body, err := renderUserConfirmation(testContact())
	require.NoError(t, err)

	assert.Contains(t, body, "Dear Ana")
	assert.Contains(t, body, "Bulk pricing?")
}

func TestTemplatesEscapeHTML(t *testing.T) {
	msg := testContact()
	msg.Message = "<script>alert(1)</script>"

	body, err := renderAdminNotification(msg)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
