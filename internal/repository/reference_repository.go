package repository

import (
	"context"
	"time"

	"medisupply-api/internal/models"
	"medisupply-api/internal/store"
)

// ReferenceRepository agrupa las colecciones de solo lectura que alimentan
// las páginas informativas.
type ReferenceRepository struct {
	gw *Gateway
}

func NewReferenceRepository(gw *Gateway) *ReferenceRepository {
	return &ReferenceRepository{gw: gw}
}

func (r *ReferenceRepository) Partners(ctx context.Context) ([]models.Partner, error) {
	col, err := r.gw.collection(store.Partners)
	if err != nil {
		return nil, err
	}
	partners := make([]models.Partner, 0)
	if err := col.Find(ctx, store.Query{SortField: "name"}, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func (r *ReferenceRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	col, err := r.gw.collection(store.Testimonials)
	if err != nil {
		return nil, err
	}
	testimonials := make([]models.Testimonial, 0)
	q := store.Query{SortField: "createdAt", SortDesc: true}
	if err := col.Find(ctx, q, &testimonials); err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *ReferenceRepository) Team(ctx context.Context) ([]models.TeamMember, error) {
	col, err := r.gw.collection(store.Team)
	if err != nil {
		return nil, err
	}
	team := make([]models.TeamMember, 0)
	if err := col.Find(ctx, store.Query{SortField: "name"}, &team); err != nil {
		return nil, err
	}
	return team, nil
}

// AddTestimonial guarda una reseña nueva por la tubería de mutación.
func (r *ReferenceRepository) AddTestimonial(ctx context.Context, t *models.Testimonial) (string, error) {
	if t.Name == "" || t.Content == "" {
		return "", store.Errorf(store.CodeInvalidArgument, "testimonial name and content are required")
	}
	col, err := r.gw.collection(store.Testimonials)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc := map[string]any{
		"name":      t.Name,
		"position":  t.Position,
		"company":   t.Company,
		"content":   t.Content,
		"rating":    t.Rating,
		"image":     t.Image,
		"createdAt": now,
	}

	id, err := r.gw.mutate(ctx, func(ctx context.Context) (string, error) {
		return col.InsertOne(ctx, doc)
	})
	if err != nil {
		return "", err
	}

	t.ID = id
	t.CreatedAt = now
	return id, nil
}
