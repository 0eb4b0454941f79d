// Package mailer envía las notificaciones del formulario de contacto.
// El contrato es de mejor esfuerzo: la persistencia del mensaje es
// obligatoria, la notificación es consultiva y su fallo nunca tumba el envío.
package mailer

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"medisupply-api/internal/config"
	"medisupply-api/internal/models"
)

// Result describe el desenlace de una notificación.
type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId"`
}

// Sender abstrae el transporte SMTP para poder falsearlo en tests.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	cfg    config.SMTPConfig
	sender Sender
}

// New construye el mailer. Sin host SMTP queda deshabilitado: los envíos
// devuelven éxito sin tocar la red, como en los despliegues de demo.
func New(cfg config.SMTPConfig) *Mailer {
	m := &Mailer{cfg: cfg}
	if cfg.Enabled() {
		m.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

// NewWithSender inyecta un transporte alternativo (tests).
func NewWithSender(cfg config.SMTPConfig, sender Sender) *Mailer {
	return &Mailer{cfg: cfg, sender: sender}
}

// Enabled indica si hay transporte configurado.
func (m *Mailer) Enabled() bool {
	return m.sender != nil
}

// SendContactNotification envía el aviso al administrador y la confirmación
// al remitente. Devuelve el identificador del envío.
func (m *Mailer) SendContactNotification(msg models.ContactMessage) (Result, error) {
	messageID := fmt.Sprintf("msg_%d", time.Now().UnixMilli())

	if !m.Enabled() {
		zap.S().Infow("mailer disabled, skipping contact notification",
			"subject", msg.Subject, "from", msg.Email)
		return Result{Success: true, MessageID: messageID}, nil
	}

	adminBody, err := renderAdminNotification(msg)
	if err != nil {
		return Result{}, fmt.Errorf("render admin notification: %w", err)
	}
	userBody, err := renderUserConfirmation(msg)
	if err != nil {
		return Result{}, fmt.Errorf("render user confirmation: %w", err)
	}

	admin := gomail.NewMessage()
	admin.SetHeader("From", m.cfg.From)
	admin.SetHeader("To", m.cfg.NotifyTo)
	admin.SetHeader("Subject", fmt.Sprintf("New Contact Form Submission - %s", msg.Subject))
	admin.SetBody("text/html", adminBody)

	confirmation := gomail.NewMessage()
	confirmation.SetHeader("From", m.cfg.From)
	confirmation.SetHeader("To", msg.Email)
	confirmation.SetHeader("Subject", "Thank you for contacting us - MediSupply")
	confirmation.SetBody("text/html", userBody)

	if err := m.sender.DialAndSend(admin, confirmation); err != nil {
		return Result{}, fmt.Errorf("send contact notification: %w", err)
	}
	return Result{Success: true, MessageID: messageID}, nil
}
