package repository

import (
	"errors"
	"fmt"

	"medisupply-api/internal/store"
)

// ErrUninitialized indica que el gateway se construyó sin almacén. Es un
// error de configuración, no se reintenta.
var ErrUninitialized = errors.New("document store is not configured")

// ErrNoConnectivity indica que la sonda de red falló antes de intentar la
// operación. Es consultivo: la operación ni siquiera se intentó.
var ErrNoConnectivity = errors.New("no network connectivity detected")

// StoreError enriquece un fallo residual de mutación con el mensaje de
// usuario y la pista de diagnóstico del clasificador.
type StoreError struct {
	UserMessage string
	Suggestion  string
	Code        string
	Err         error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation failed (%s): %v", e.Code, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsNotFound indica si el error corresponde a un documento inexistente.
func IsNotFound(err error) bool {
	return store.CodeOf(err) == store.CodeNotFound
}
