package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medisupply-api/internal/mailer"
	"medisupply-api/internal/models"
	"medisupply-api/internal/repository"
)

type ContactHandler struct {
	repo   *repository.ContactRepository
	mailer *mailer.Mailer
}

func NewContactHandler(repo *repository.ContactRepository, m *mailer.Mailer) *ContactHandler {
	return &ContactHandler{repo: repo, mailer: m}
}

// SubmitContact guarda el mensaje y dispara la notificación por correo.
// La persistencia es obligatoria; la notificación es de mejor esfuerzo y su
// fallo solo se loguea, nunca convierte el envío en error.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid-argument"})
		return
	}

	id, err := h.repo.Add(c.Request.Context(), &msg)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	go func(saved models.ContactMessage) {
		result, err := h.mailer.SendContactNotification(saved)
		if err != nil {
			zap.S().Warnw("contact notification failed",
				"contactId", saved.ID, "error", err)
			return
		}
		zap.S().Infow("contact notification sent",
			"contactId", saved.ID, "messageId", result.MessageID)
	}(msg)

	c.JSON(http.StatusCreated, SuccessResponse{Message: "message received", ID: id})
}

// ListContacts devuelve los mensajes recibidos, el más reciente primero.
// No hay datos de muestra para contactos: un fallo de lectura se propaga.
func (h *ContactHandler) ListContacts(c *gin.Context) {
	messages, err := h.repo.List(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "total": len(messages)})
}
