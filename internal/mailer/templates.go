package mailer

import (
	"html/template"
	"strings"
	"time"

	"medisupply-api/internal/models"
)

var adminTemplate = template.Must(template.New("admin").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">New Contact Form Submission</h2>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Contact Information</h3>
    <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{.Phone}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Message</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
    <p style="color: #6b7280; font-size: 14px;">
      This message was sent from the MediSupply website contact form.
    </p>
    <p style="color: #6b7280; font-size: 14px;">Submitted on: {{.SubmittedAt}}</p>
  </div>
</div>`))

var userTemplate = template.Must(template.New("user").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Thank you for contacting us!</h2>

  <p>Dear {{.FirstName}},</p>

  <p>Thank you for reaching out to us. We have received your message and will
  get back to you within 24 hours.</p>

  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #374151; margin-top: 0;">Your Message Summary</h3>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <p style="white-space: pre-wrap; background: white; padding: 10px; border-radius: 4px;">{{.Message}}</p>
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e5e7eb;">
    <p style="color: #6b7280; font-size: 14px;">
      Best regards,<br>
      The MediSupply Team
    </p>
  </div>
</div>`))

type templateData struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt string
}

func newTemplateData(msg models.ContactMessage) templateData {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}
	return templateData{
		FirstName:   msg.FirstName,
		LastName:    msg.LastName,
		Email:       msg.Email,
		Phone:       phone,
		Subject:     msg.Subject,
		Message:     msg.Message,
		SubmittedAt: time.Now().Format(time.RFC1123),
	}
}

func renderAdminNotification(msg models.ContactMessage) (string, error) {
	var sb strings.Builder
	if err := adminTemplate.Execute(&sb, newTemplateData(msg)); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func renderUserConfirmation(msg models.ContactMessage) (string, error) {
	var sb strings.Builder
	if err := userTemplate.Execute(&sb, newTemplateData(msg)); err != nil {
		return "", err
	}
	return sb.String(), nil
}
