package repository

import (
	"context"
	"time"

	"medisupply-api/internal/models"
	"medisupply-api/internal/store"
)

type ContactRepository struct {
	gw *Gateway
}

func NewContactRepository(gw *Gateway) *ContactRepository {
	return &ContactRepository{gw: gw}
}

// Add guarda un mensaje del formulario de contacto y devuelve su id. La
// validación (incluido el patrón de email) corre antes de tocar el almacén;
// el estado inicial siempre es "new" y lo asigna el servidor, no el cliente.
func (r *ContactRepository) Add(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if err := msg.Validate(); err != nil {
		return "", store.NewError(store.CodeInvalidArgument, err)
	}
	col, err := r.gw.collection(store.Contacts)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc := map[string]any{
		"firstName": msg.FirstName,
		"lastName":  msg.LastName,
		"email":     msg.Email,
		"phone":     msg.Phone,
		"subject":   msg.Subject,
		"message":   msg.Message,
		"status":    models.ContactStatusNew,
		"createdAt": now,
	}

	id, err := r.gw.mutate(ctx, func(ctx context.Context) (string, error) {
		return col.InsertOne(ctx, doc)
	})
	if err != nil {
		return "", err
	}

	msg.ID = id
	msg.Status = models.ContactStatusNew
	msg.CreatedAt = now
	return id, nil
}

// List devuelve los mensajes recibidos, el más reciente primero.
func (r *ContactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	col, err := r.gw.collection(store.Contacts)
	if err != nil {
		return nil, err
	}
	messages := make([]models.ContactMessage, 0)
	q := store.Query{SortField: "createdAt", SortDesc: true}
	if err := col.Find(ctx, q, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
