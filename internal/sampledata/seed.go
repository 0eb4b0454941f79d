package sampledata

import (
	"context"
	"encoding/json"
	"time"

	"medisupply-api/internal/store"
)

// Seed carga los datos de muestra en un almacén vacío. Se usa con el backend
// en memoria para que el modo local arranque con catálogo.
func Seed(ctx context.Context, db store.Database) error {
	now := time.Now().UTC()

	for _, p := range Products() {
		p.ID = ""
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := insert(ctx, db.Collection(store.Products), p); err != nil {
			return err
		}
	}
	for _, p := range Partners() {
		p.ID = ""
		if err := insert(ctx, db.Collection(store.Partners), p); err != nil {
			return err
		}
	}
	for _, t := range Testimonials() {
		t.ID = ""
		t.CreatedAt = now
		if err := insert(ctx, db.Collection(store.Testimonials), t); err != nil {
			return err
		}
	}
	for _, m := range Team() {
		m.ID = ""
		if err := insert(ctx, db.Collection(store.Team), m); err != nil {
			return err
		}
	}
	return nil
}

func insert(ctx context.Context, col store.Collection, entity any) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	delete(doc, "id")
	_, err = col.InsertOne(ctx, doc)
	return err
}
