package models

import (
	"fmt"
	"time"
)

// Categorías del catálogo.
const (
	CategoryMedicines   = "medicines"
	CategoryEquipment   = "equipment"
	CategoryDiagnostics = "diagnostics"
	CategorySurgical    = "surgical"
	CategoryConsumables = "consumables"
)

// Categories lista las categorías válidas en orden de presentación.
var Categories = []string{
	CategoryMedicines,
	CategoryEquipment,
	CategoryDiagnostics,
	CategorySurgical,
	CategoryConsumables,
}

// ValidCategory indica si la categoría pertenece al catálogo.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo.
type Product struct {
	ID             string            `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string            `json:"name" bson:"name" binding:"required"`
	Category       string            `json:"category" bson:"category" binding:"required,category"`
	SKU            string            `json:"sku" bson:"sku" binding:"required"`
	Price          float64           `json:"price" bson:"price" binding:"gte=0"`
	Description    string            `json:"description" bson:"description"`
	Specifications map[string]string `json:"specifications" bson:"specifications"`
	Image          string            `json:"image,omitempty" bson:"image,omitempty"`
	InStock        bool              `json:"inStock" bson:"inStock"`
	StockQuantity  int               `json:"stockQuantity" bson:"stockQuantity" binding:"gte=0"`
	CreatedAt      time.Time         `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt" bson:"updatedAt"`
}

// Validate comprueba los invariantes del producto antes de persistirlo.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.SKU == "" {
		return fmt.Errorf("product sku is required")
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("invalid category %q", p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("stock quantity must not be negative")
	}
	return nil
}

// ProductUpdate representa los campos actualizables de un producto.
type ProductUpdate struct {
	Name           *string           `json:"name,omitempty"`
	Category       *string           `json:"category,omitempty"`
	SKU            *string           `json:"sku,omitempty"`
	Price          *float64          `json:"price,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Image          *string           `json:"image,omitempty"`
	InStock        *bool             `json:"inStock,omitempty"`
	StockQuantity  *int              `json:"stockQuantity,omitempty"`
}

// Fields devuelve los campos presentes del parche como mapa para el almacén.
func (u *ProductUpdate) Fields() (map[string]any, error) {
	fields := map[string]any{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.Category != nil {
		if !ValidCategory(*u.Category) {
			return nil, fmt.Errorf("invalid category %q", *u.Category)
		}
		fields["category"] = *u.Category
	}
	if u.SKU != nil {
		fields["sku"] = *u.SKU
	}
	if u.Price != nil {
		if *u.Price < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		fields["price"] = *u.Price
	}
	if u.Description != nil {
		fields["description"] = *u.Description
	}
	if u.Specifications != nil {
		fields["specifications"] = u.Specifications
	}
	if u.Image != nil {
		fields["image"] = *u.Image
	}
	if u.InStock != nil {
		fields["inStock"] = *u.InStock
	}
	if u.StockQuantity != nil {
		if *u.StockQuantity < 0 {
			return nil, fmt.Errorf("stock quantity must not be negative")
		}
		fields["stockQuantity"] = *u.StockQuantity
	}
	return fields, nil
}
