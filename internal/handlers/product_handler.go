package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medisupply-api/internal/cache"
	"medisupply-api/internal/models"
	"medisupply-api/internal/repository"
	"medisupply-api/internal/sampledata"
)

const (
	listCacheTTL = 2 * time.Minute
	itemCacheTTL = 5 * time.Minute
)

type ProductHandler struct {
	repo  *repository.ProductRepository
	cache *cache.Cache
}

func NewProductHandler(repo *repository.ProductRepository, c *cache.Cache) *ProductHandler {
	return &ProductHandler{repo: repo, cache: c}
}

type productListResponse struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Source   string           `json:"source"`
}

// ListProducts lista el catálogo, con filtro opcional por categoría. Si la
// lectura falla se sirven los datos de muestra con source "fallback" para
// que la página siga renderizando.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	cacheKey := fmt.Sprintf("products:list:cat:%s", category)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	var (
		products []models.Product
		err      error
	)
	if category != "" {
		products, err = h.repo.ListByCategory(c.Request.Context(), category)
	} else {
		products, err = h.repo.List(c.Request.Context())
	}
	if err != nil {
		zap.S().Warnw("product list failed, serving sample data", "error", err)
		fallback := sampledata.Products()
		if category != "" {
			filtered := make([]models.Product, 0)
			for _, p := range fallback {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			fallback = filtered
		}
		c.JSON(http.StatusOK, productListResponse{
			Products: fallback,
			Total:    len(fallback),
			Source:   "fallback",
		})
		return
	}

	response := productListResponse{Products: products, Total: len(products), Source: "store"}
	h.cache.Set(cacheKey, response, listCacheTTL)
	c.JSON(http.StatusOK, response)
}

// GetProduct obtiene un producto por ID (con caché)
func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID := c.Param("id")
	cacheKey := fmt.Sprintf("product:%s", productID)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	product, err := h.repo.FindByID(c.Request.Context(), productID)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	h.cache.Set(cacheKey, product, itemCacheTTL)
	c.JSON(http.StatusOK, product)
}

// CreateProduct crea un nuevo producto
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid-argument"})
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), &product); err != nil {
		writeStoreError(c, err)
		return
	}

	// Invalidar caché de listados
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza parcialmente un producto
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID := c.Param("id")

	var patch models.ProductUpdate
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid-argument"})
		return
	}

	if err := h.repo.Update(c.Request.Context(), productID, patch); err != nil {
		writeStoreError(c, err)
		return
	}

	// Invalidar caché relacionado
	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, SuccessResponse{Message: "product updated", ID: productID})
}

// DeleteProduct elimina un producto
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID := c.Param("id")

	if err := h.repo.Delete(c.Request.Context(), productID); err != nil {
		writeStoreError(c, err)
		return
	}

	h.cache.Delete(fmt.Sprintf("product:%s", productID))
	h.cache.DeleteByPrefix("products:list:")

	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted", ID: productID})
}
