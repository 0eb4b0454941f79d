package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisupply-api/internal/models"
	"medisupply-api/internal/store"
	"medisupply-api/internal/store/memstore"
)

func newTestGateway() *Gateway {
	return NewGateway(memstore.New(),
		WithProbe(probeAlways(true)),
		WithRetryConfig(fastRetry()),
	)
}

func TestProductCreateThenFindByID(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	input := &models.Product{
		Name:     "Digital Thermometer",
		Category: models.CategoryEquipment,
		SKU:      "TH-100",
		Price:    19.99,
		Specifications: map[string]string{
			"Range": "32-42°C",
		},
		InStock:       true,
		StockQuantity: 30,
	}

	id, err := repo.Create(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, input.ID)

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.Category, got.Category)
	assert.Equal(t, input.SKU, got.SKU)
	assert.Equal(t, input.Price, got.Price)
	assert.Equal(t, input.Specifications, got.Specifications)
	assert.Equal(t, input.StockQuantity, got.StockQuantity)
	// Los timestamps los asigna el servidor al crear, iguales entre sí.
	assert.False(t, got.CreatedAt.IsZero())
	assert.True(t, got.UpdatedAt.Equal(got.CreatedAt))
}

func TestProductCreateValidation(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	tests := []struct {
		name    string
		product models.Product
	}{
		{"missing name", models.Product{Category: models.CategoryMedicines, SKU: "A"}},
		{"missing sku", models.Product{Name: "A", Category: models.CategoryMedicines}},
		{"bad category", models.Product{Name: "A", SKU: "A", Category: "gadgets"}},
		{"negative price", models.Product{Name: "A", SKU: "A", Category: models.CategoryMedicines, Price: -1}},
		{"negative stock", models.Product{Name: "A", SKU: "A", Category: models.CategoryMedicines, StockQuantity: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.product
			_, err := repo.Create(ctx, &p)
			require.Error(t, err)
			assert.Equal(t, store.CodeInvalidArgument, store.CodeOf(err))
		})
	}
}

func TestProductUpdatePartial(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	product := testProduct()
	id, err := repo.Create(ctx, product)
	require.NoError(t, err)

	newPrice := 149.99
	require.NoError(t, repo.Update(ctx, id, models.ProductUpdate{Price: &newPrice}))

	got, err := repo.FindByID(ctx, id)
	require.NoError(t, err)

	// Solo cambia el precio; el resto queda intacto y updatedAt avanza.
	assert.Equal(t, 149.99, got.Price)
	assert.Equal(t, product.Name, got.Name)
	assert.Equal(t, product.SKU, got.SKU)
	assert.Equal(t, product.Category, got.Category)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestProductUpdateNoFields(t *testing.T) {
	repo := NewProductRepository(newTestGateway())

	err := repo.Update(context.Background(), "any", models.ProductUpdate{})
	require.Error(t, err)
	assert.Equal(t, store.CodeInvalidArgument, store.CodeOf(err))
}

func TestProductUpdateMissing(t *testing.T) {
	repo := NewProductRepository(newTestGateway())

	price := 5.0
	err := repo.Update(context.Background(), "missing", models.ProductUpdate{Price: &price})
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestProductDeleteThenFind(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	id, err := repo.Create(ctx, testProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.FindByID(ctx, id)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestProductListScenario(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	_, err := repo.Create(ctx, testProduct())
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "S1", products[0].SKU)
	assert.Equal(t, 10.0, products[0].Price)
}

func TestProductListByCategory(t *testing.T) {
	repo := NewProductRepository(newTestGateway())
	ctx := context.Background()

	meds := testProduct()
	_, err := repo.Create(ctx, meds)
	require.NoError(t, err)

	equipment := testProduct()
	equipment.SKU = "S2"
	equipment.Category = models.CategoryEquipment
	_, err = repo.Create(ctx, equipment)
	require.NoError(t, err)

	got, err := repo.ListByCategory(ctx, models.CategoryMedicines)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "S1", got[0].SKU)

	_, err = repo.ListByCategory(ctx, "gadgets")
	require.Error(t, err)
	assert.Equal(t, store.CodeInvalidArgument, store.CodeOf(err))
}
