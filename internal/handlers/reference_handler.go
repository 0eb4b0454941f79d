package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medisupply-api/internal/cache"
	"medisupply-api/internal/models"
	"medisupply-api/internal/repository"
	"medisupply-api/internal/sampledata"
)

// ReferenceHandler sirve partners, testimonios y equipo. Son lecturas de
// presentación: ante cualquier fallo se responden los datos de muestra.
type ReferenceHandler struct {
	repo  *repository.ReferenceRepository
	cache *cache.Cache
}

func NewReferenceHandler(repo *repository.ReferenceRepository, c *cache.Cache) *ReferenceHandler {
	return &ReferenceHandler{repo: repo, cache: c}
}

func (h *ReferenceHandler) GetPartners(c *gin.Context) {
	serveList(h.cache, c, "reference:partners", func() ([]models.Partner, error) {
		return h.repo.Partners(c.Request.Context())
	}, sampledata.Partners)
}

func (h *ReferenceHandler) GetTestimonials(c *gin.Context) {
	serveList(h.cache, c, "reference:testimonials", func() ([]models.Testimonial, error) {
		return h.repo.Testimonials(c.Request.Context())
	}, sampledata.Testimonials)
}

func (h *ReferenceHandler) GetTeam(c *gin.Context) {
	serveList(h.cache, c, "reference:team", func() ([]models.TeamMember, error) {
		return h.repo.Team(c.Request.Context())
	}, sampledata.Team)
}

// AddTestimonial guarda una reseña nueva.
func (h *ReferenceHandler) AddTestimonial(c *gin.Context) {
	var t models.Testimonial
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "invalid-argument"})
		return
	}

	id, err := h.repo.AddTestimonial(c.Request.Context(), &t)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	h.cache.Delete("reference:testimonials")
	c.JSON(http.StatusCreated, SuccessResponse{Message: "testimonial added", ID: id})
}

type listResponse[T any] struct {
	Items  []T    `json:"items"`
	Total  int    `json:"total"`
	Source string `json:"source"`
}

func serveList[T any](cc *cache.Cache, c *gin.Context, cacheKey string, fetch func() ([]T, error), fallback func() []T) {
	if cached, found := cc.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	items, err := fetch()
	if err != nil {
		zap.S().Warnw("reference read failed, serving sample data",
			"key", cacheKey, "error", err)
		sample := fallback()
		c.JSON(http.StatusOK, listResponse[T]{Items: sample, Total: len(sample), Source: "fallback"})
		return
	}

	response := listResponse[T]{Items: items, Total: len(items), Source: "store"}
	cc.Set(cacheKey, response, listCacheTTL)
	c.JSON(http.StatusOK, response)
}
