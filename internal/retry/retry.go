// Package retry reintenta operaciones contra el almacén de documentos con
// backoff lineal, y clasifica los fallos para mostrarlos al usuario.
package retry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"medisupply-api/internal/store"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Config controla el número de intentos y la espera base entre ellos.
// La espera antes del reintento k+1 es BaseDelay * k.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration

	// sleep se sobreescribe en tests para no esperar de verdad.
	sleep func(time.Duration)
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.sleep == nil {
		c.sleep = time.Sleep
	}
	return c
}

// retryable indica si merece la pena reintentar un error con ese código.
// permission-denied, invalid-argument y not-found no cambian por esperar.
func retryable(code string) bool {
	switch code {
	case store.CodePermissionDenied, store.CodeInvalidArgument, store.CodeNotFound:
		return false
	default:
		return true
	}
}

// Do ejecuta op hasta cfg.MaxAttempts veces de forma secuencial. Los errores
// no reintenables cortan de inmediato; agotados los intentos devuelve el
// último error observado.
//
// La operación debe ser idempotente desde el punto de vista del llamador: un
// create que el servidor confirmó pero cuyo intento falló al reportar puede
// duplicarse al reintentar. El backend no expone claves de idempotencia, así
// que ese riesgo se asume.
func Do[T any](ctx context.Context, cfg Config, op func(context.Context) (T, error)) (T, error) {
	cfg = cfg.withDefaults()

	var zero T
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		code := store.CodeOf(err)
		if !retryable(code) {
			zap.S().Debugw("store operation failed, not retryable",
				"attempt", attempt, "code", code)
			return zero, err
		}

		if attempt < cfg.MaxAttempts {
			wait := cfg.BaseDelay * time.Duration(attempt)
			zap.S().Debugw("store operation failed, retrying",
				"attempt", attempt, "code", code, "wait", wait)
			cfg.sleep(wait)
		}
	}
	return zero, lastErr
}
