package models

import (
	"fmt"
	"regexp"
	"time"
)

// Estados de un mensaje de contacto.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Asuntos admitidos en el formulario de contacto.
var ContactSubjects = []string{
	"general",
	"sales",
	"support",
	"partnership",
	"compliance",
	"other",
}

// ValidContactSubject indica si el asunto pertenece a la lista fija.
func ValidContactSubject(subject string) bool {
	for _, s := range ContactSubjects {
		if s == subject {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail valida la dirección contra un patrón simple.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ContactMessage representa un envío del formulario de contacto.
type ContactMessage struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	FirstName string    `json:"firstName" bson:"firstName" binding:"required"`
	LastName  string    `json:"lastName" bson:"lastName" binding:"required"`
	Email     string    `json:"email" bson:"email" binding:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject" bson:"subject" binding:"required"`
	Message   string    `json:"message" bson:"message" binding:"required"`
	Status    string    `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Validate comprueba el mensaje antes de enviarlo al almacén.
func (m *ContactMessage) Validate() error {
	if m.FirstName == "" || m.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if !ValidEmail(m.Email) {
		return fmt.Errorf("invalid email address %q", m.Email)
	}
	if !ValidContactSubject(m.Subject) {
		return fmt.Errorf("invalid subject %q", m.Subject)
	}
	if m.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
