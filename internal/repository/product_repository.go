package repository

import (
	"context"
	"time"

	"medisupply-api/internal/models"
	"medisupply-api/internal/store"
)

type ProductRepository struct {
	gw *Gateway
}

func NewProductRepository(gw *Gateway) *ProductRepository {
	return &ProductRepository{gw: gw}
}

// List devuelve el catálogo completo, el más reciente primero.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, store.Query{SortField: "createdAt", SortDesc: true})
}

// ListByCategory filtra el catálogo por categoría.
func (r *ProductRepository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	if !models.ValidCategory(category) {
		return nil, store.Errorf(store.CodeInvalidArgument, "invalid category %q", category)
	}
	return r.find(ctx, store.Query{
		Filter:    map[string]any{"category": category},
		SortField: "createdAt",
		SortDesc:  true,
	})
}

func (r *ProductRepository) find(ctx context.Context, q store.Query) ([]models.Product, error) {
	col, err := r.gw.collection(store.Products)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0)
	if err := col.Find(ctx, q, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID obtiene un producto por id.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	col, err := r.gw.collection(store.Products)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := col.FindByID(ctx, id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Create guarda un producto nuevo y devuelve el id asignado por el almacén.
// Los timestamps los asigna el servidor: createdAt == updatedAt al crear.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	if err := product.Validate(); err != nil {
		return "", store.NewError(store.CodeInvalidArgument, err)
	}
	col, err := r.gw.collection(store.Products)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	doc := map[string]any{
		"name":           product.Name,
		"category":       product.Category,
		"sku":            product.SKU,
		"price":          product.Price,
		"description":    product.Description,
		"specifications": product.Specifications,
		"image":          product.Image,
		"inStock":        product.InStock,
		"stockQuantity":  product.StockQuantity,
		"createdAt":      now,
		"updatedAt":      now,
	}

	id, err := r.gw.mutate(ctx, func(ctx context.Context) (string, error) {
		return col.InsertOne(ctx, doc)
	})
	if err != nil {
		return "", err
	}

	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now
	return id, nil
}

// Update aplica un parche parcial y refresca updatedAt.
func (r *ProductRepository) Update(ctx context.Context, id string, patch models.ProductUpdate) error {
	fields, err := patch.Fields()
	if err != nil {
		return store.NewError(store.CodeInvalidArgument, err)
	}
	if len(fields) == 0 {
		return store.Errorf(store.CodeInvalidArgument, "no fields to update")
	}
	col, err := r.gw.collection(store.Products)
	if err != nil {
		return err
	}

	fields["updatedAt"] = time.Now().UTC()

	_, err = r.gw.mutate(ctx, func(ctx context.Context) (string, error) {
		return id, col.UpdateOne(ctx, id, fields)
	})
	return err
}

// Delete elimina el producto de forma definitiva. No pasa por la sonda ni
// por reintentos, pero el fallo sí llega enriquecido al llamador.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	col, err := r.gw.collection(store.Products)
	if err != nil {
		return err
	}
	if err := col.DeleteOne(ctx, id); err != nil {
		return enrich(err)
	}
	return nil
}
