// Package store define el contrato con el almacén de documentos.
// Las implementaciones viven en mongostore (producción) y memstore (local/tests).
package store

import (
	"context"
	"errors"
	"fmt"
)

// Códigos de error expuestos por el backend.
const (
	CodeUnavailable       = "unavailable"
	CodePermissionDenied  = "permission-denied"
	CodeDeadlineExceeded  = "deadline-exceeded"
	CodeResourceExhausted = "resource-exhausted"
	CodeInvalidArgument   = "invalid-argument"
	CodeNotFound          = "not-found"
	CodeAlreadyExists     = "already-exists"
	CodeInternal          = "internal"
	CodeUnknown           = "unknown"
)

// Colecciones conocidas.
const (
	Products     = "products"
	Testimonials = "testimonials"
	Partners     = "partners"
	Team         = "team"
	Contacts     = "contacts"
	SelfCheck    = "selfcheck"
)

// Error envuelve un fallo del backend con su código de la taxonomía.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Code
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError construye un error con código.
func NewError(code string, err error) *Error {
	return &Error{Code: code, Err: err}
}

// Errorf construye un error con código a partir de un formato.
func Errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// CodeOf extrae el código de un error; CodeUnknown si no lo lleva.
func CodeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeUnknown
}

// Query describe una consulta de listado: filtro por igualdad y orden.
type Query struct {
	// Filter aplica igualdad campo a campo. Vacío lista todo.
	Filter map[string]any
	// SortField ordena el resultado; vacío deja el orden del backend.
	SortField string
	SortDesc  bool
}

// Collection expone las operaciones por colección. Los documentos se
// intercambian como mapas planos; el id lo asigna el almacén.
type Collection interface {
	// InsertOne guarda un documento y devuelve el id asignado.
	InsertOne(ctx context.Context, doc map[string]any) (string, error)
	// FindByID decodifica el documento con ese id en out.
	// Falla con CodeNotFound si no existe.
	FindByID(ctx context.Context, id string, out any) error
	// Find decodifica los documentos que cumplen la consulta en out
	// (puntero a slice).
	Find(ctx context.Context, q Query, out any) error
	// UpdateOne aplica un merge parcial de campos sobre el documento.
	// Falla con CodeNotFound si no existe.
	UpdateOne(ctx context.Context, id string, fields map[string]any) error
	// DeleteOne elimina el documento.
	// Falla con CodeNotFound si no existe.
	DeleteOne(ctx context.Context, id string) error
}

// Database agrupa colecciones con un chequeo de conexión.
type Database interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
}
