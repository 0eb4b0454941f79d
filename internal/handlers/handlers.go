package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"medisupply-api/internal/models"
	"medisupply-api/internal/repository"
	"medisupply-api/internal/store"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// RegisterValidations añade las reglas de binding propias del dominio.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return models.ValidCategory(fl.Field().String())
		})
	}
}

// writeStoreError traduce un fallo de repositorio al estado HTTP y al cuerpo
// con el mensaje clasificado para el usuario.
func writeStoreError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrUninitialized) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Service is not configured. Please contact support.",
			Code:  "uninitialized",
		})
		return
	}
	if errors.Is(err, repository.ErrNoConnectivity) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:      "No internet connection detected. Please check your network and try again.",
			Code:       "no-connectivity",
			Suggestion: "Check your network connection and retry.",
		})
		return
	}

	var se *repository.StoreError
	if errors.As(err, &se) {
		c.JSON(statusForCode(se.Code), ErrorResponse{
			Error:      se.UserMessage,
			Code:       se.Code,
			Suggestion: se.Suggestion,
		})
		return
	}

	// Fallos de lectura llegan crudos, con su código pero sin clasificar.
	c.JSON(statusForCode(store.CodeOf(err)), ErrorResponse{
		Error: err.Error(),
		Code:  store.CodeOf(err),
	})
}

func statusForCode(code string) int {
	switch code {
	case store.CodeNotFound:
		return http.StatusNotFound
	case store.CodeInvalidArgument:
		return http.StatusBadRequest
	case store.CodePermissionDenied:
		return http.StatusForbidden
	case store.CodeAlreadyExists:
		return http.StatusConflict
	case store.CodeResourceExhausted:
		return http.StatusTooManyRequests
	case store.CodeUnavailable, store.CodeDeadlineExceeded:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
