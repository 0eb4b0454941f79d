package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medisupply-api/internal/cache"
	"medisupply-api/internal/handlers"
	"medisupply-api/internal/mailer"
	"medisupply-api/internal/repository"
)

// Deps agrupa las dependencias que necesita la capa HTTP.
type Deps struct {
	Gateway  *repository.Gateway
	Mailer   *mailer.Mailer
	ProbeURL string
}

// RegisterRoutes monta la API bajo /v1 más los endpoints operativos.
func RegisterRoutes(router *gin.Engine, deps Deps) {
	handlers.RegisterValidations()

	responseCache := cache.New(5 * time.Minute)

	products := handlers.NewProductHandler(
		repository.NewProductRepository(deps.Gateway), responseCache)
	contacts := handlers.NewContactHandler(
		repository.NewContactRepository(deps.Gateway), deps.Mailer)
	reference := handlers.NewReferenceHandler(
		repository.NewReferenceRepository(deps.Gateway), responseCache)
	check := handlers.NewSelfCheckHandler(deps.Gateway, deps.ProbeURL)

	v1 := router.Group("/v1")
	{
		v1.GET("/products", products.ListProducts)
		v1.POST("/products", products.CreateProduct)
		v1.GET("/products/:id", products.GetProduct)
		v1.PATCH("/products/:id", products.UpdateProduct)
		v1.DELETE("/products/:id", products.DeleteProduct)

		v1.GET("/partners", reference.GetPartners)
		v1.GET("/testimonials", reference.GetTestimonials)
		v1.POST("/testimonials", reference.AddTestimonial)
		v1.GET("/team", reference.GetTeam)

		v1.POST("/contact", contacts.SubmitContact)
		v1.GET("/contact", contacts.ListContacts)

		v1.GET("/selfcheck", check.SelfCheck)
	}

	router.GET("/healthz", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
