// Package repository expone las operaciones tipadas por colección contra el
// almacén de documentos. Las mutaciones pasan por la tubería completa
// (chequeo de configuración, sonda de red, reintentos, clasificación); las
// lecturas fallan directas y el llamador decide si sirve datos de muestra.
package repository

import (
	"context"

	"medisupply-api/internal/retry"
	"medisupply-api/internal/store"
)

// ProbeFunc es la firma de la sonda de conectividad.
type ProbeFunc func(ctx context.Context, url string) bool

// Gateway agrupa el almacén inyectado con la configuración de reintentos.
// El traslado entre documentos del almacén y entidades en memoria es
// responsabilidad exclusiva de los repositorios construidos sobre él; los
// llamadores nunca fabrican identificadores.
type Gateway struct {
	db       store.Database
	probe    ProbeFunc
	probeURL string
	retryCfg retry.Config
}

// Option ajusta la construcción del gateway.
type Option func(*Gateway)

// WithProbe sustituye la sonda de conectividad.
func WithProbe(probe ProbeFunc) Option {
	return func(g *Gateway) { g.probe = probe }
}

// WithProbeURL cambia el recurso que sondea la red.
func WithProbeURL(url string) Option {
	return func(g *Gateway) { g.probeURL = url }
}

// WithRetryConfig cambia los parámetros de reintento de las mutaciones.
func WithRetryConfig(cfg retry.Config) Option {
	return func(g *Gateway) { g.retryCfg = cfg }
}

// NewGateway construye el gateway sobre un almacén ya conectado. Un db nil
// produce ErrUninitialized en cada operación en vez de un panic tardío.
func NewGateway(db store.Database, opts ...Option) *Gateway {
	g := &Gateway{
		db:       db,
		probe:    retry.CheckConnectivity,
		probeURL: retry.DefaultProbeURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Initialized indica si el gateway tiene almacén configurado.
func (g *Gateway) Initialized() bool {
	return g != nil && g.db != nil
}

// Database devuelve el almacén subyacente; nil si no está configurado.
func (g *Gateway) Database() store.Database {
	if g == nil {
		return nil
	}
	return g.db
}

func (g *Gateway) collection(name string) (store.Collection, error) {
	if !g.Initialized() {
		return nil, ErrUninitialized
	}
	return g.db.Collection(name), nil
}

// mutate ejecuta la secuencia de mutación: configuración, sonda de red,
// operación con reintentos y, si queda un fallo residual, enriquecimiento
// con el clasificador.
func (g *Gateway) mutate(ctx context.Context, op func(context.Context) (string, error)) (string, error) {
	if !g.Initialized() {
		return "", ErrUninitialized
	}
	if !g.probe(ctx, g.probeURL) {
		return "", ErrNoConnectivity
	}

	id, err := retry.Do(ctx, g.retryCfg, op)
	if err != nil {
		return "", enrich(err)
	}
	return id, nil
}

// enrich envuelve un fallo del almacén con la clasificación para el usuario.
func enrich(err error) *StoreError {
	c := retry.Classify(err)
	return &StoreError{
		UserMessage: c.UserMessage,
		Suggestion:  c.Suggestion,
		Code:        store.CodeOf(err),
		Err:         err,
	}
}
