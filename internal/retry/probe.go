package retry

import (
	"context"
	"net/http"
	"time"
)

// DefaultProbeURL es un recurso pequeño y estable para sondear conectividad.
const DefaultProbeURL = "https://www.google.com/favicon.ico"

var probeClient = &http.Client{Timeout: 3 * time.Second}

// CheckConnectivity hace una petición HEAD a url como sonda de red. Es un
// chequeo de mejor esfuerzo: true no garantiza que la operación posterior
// funcione y false solo sirve para fallar rápido con un mensaje más claro.
// Nunca devuelve error; cualquier fallo interno cuenta como false.
func CheckConnectivity(ctx context.Context, url string) bool {
	if url == "" {
		url = DefaultProbeURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := probeClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
