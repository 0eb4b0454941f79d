package retry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckConnectivityReachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	assert.True(t, CheckConnectivity(context.Background(), server.URL))
}

func TestCheckConnectivityUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	assert.False(t, CheckConnectivity(context.Background(), server.URL))
}

func TestCheckConnectivityBadURL(t *testing.T) {
	// Nunca lanza: una URL inválida cuenta como sin conectividad.
	assert.False(t, CheckConnectivity(context.Background(), "http://[::1]:namedport"))
}

func TestCheckConnectivityServerError(t *testing.T) {
	// Una respuesta, aunque sea 5xx, demuestra que hay red.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	assert.True(t, CheckConnectivity(context.Background(), server.URL))
}
