package models

import "time"

// Entidades de referencia: se leen para mostrar, no se mutan desde la API
// pública salvo los testimonios.

// Partner representa una empresa asociada.
type Partner struct {
	ID               string `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string `json:"name" bson:"name"`
	Logo             string `json:"logo,omitempty" bson:"logo,omitempty"`
	Description      string `json:"description" bson:"description"`
	Category         string `json:"category" bson:"category"`
	PartnershipYears int    `json:"partnershipYears" bson:"partnershipYears"`
}

// Testimonial representa la reseña de un cliente.
type Testimonial struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name" binding:"required"`
	Position  string    `json:"position" bson:"position"`
	Company   string    `json:"company" bson:"company"`
	Content   string    `json:"content" bson:"content" binding:"required"`
	Rating    int       `json:"rating" bson:"rating" binding:"gte=0,lte=5"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// TeamMember representa un miembro del equipo.
type TeamMember struct {
	ID       string `json:"id,omitempty" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Position string `json:"position" bson:"position"`
	Image    string `json:"image,omitempty" bson:"image,omitempty"`
	Bio      string `json:"bio,omitempty" bson:"bio,omitempty"`
}
