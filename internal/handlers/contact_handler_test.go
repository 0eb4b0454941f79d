package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medisupply-api/internal/config"
	"medisupply-api/internal/mailer"
	"medisupply-api/internal/repository"
	"medisupply-api/internal/store"
	"medisupply-api/internal/store/memstore"
)

func contactRouter(db store.Database) *gin.Engine {
	router := gin.New()
	h := NewContactHandler(
		repository.NewContactRepository(testGateway(db)),
		mailer.New(config.SMTPConfig{}), // deshabilitado: no toca la red
	)
	router.POST("/v1/contact", h.SubmitContact)
	router.GET("/v1/contact", h.ListContacts)
	return router
}

func TestSubmitContact(t *testing.T) {
	db := memstore.New()
	router := contactRouter(db)

	body := `{
		"firstName": "Ana", "lastName": "Torres",
		"email": "ana@example.com", "subject": "sales",
		"message": "Bulk pricing for gloves?"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)

	// El mensaje quedó persistido con estado inicial.
	list := httptest.NewRecorder()
	router.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/v1/contact", nil))
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), `"status":"new"`)
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	db := memstore.New()
	router := contactRouter(db)

	body := `{
		"firstName": "Ana", "lastName": "Torres",
		"email": "not-an-email", "subject": "sales",
		"message": "hola"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Rechazado en el binding, antes de llegar al almacén.
	assert.Equal(t, http.StatusBadRequest, w.Code)

	list := httptest.NewRecorder()
	router.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/v1/contact", nil))
	assert.Contains(t, list.Body.String(), `"total":0`)
}

func TestSubmitContactStoreDown(t *testing.T) {
	router := contactRouter(&downDB{code: store.CodeResourceExhausted})

	body := `{
		"firstName": "Ana", "lastName": "Torres",
		"email": "ana@example.com", "subject": "sales",
		"message": "hola"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "busy")
	assert.Equal(t, store.CodeResourceExhausted, resp.Code)
}
