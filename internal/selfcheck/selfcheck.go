// Package selfcheck produce un informe tipado del estado de la instalación:
// variables de entorno, almacén y conectividad. No escribe logs; eso queda
// para el llamador.
package selfcheck

import (
	"context"
	"fmt"
	"os"
	"time"

	"medisupply-api/internal/config"
	"medisupply-api/internal/retry"
	"medisupply-api/internal/store"
)

// EnvCheck describe la presencia de una variable requerida.
type EnvCheck struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// Report es el resultado estructurado del chequeo.
type Report struct {
	CheckedAt        time.Time  `json:"checkedAt"`
	Env              []EnvCheck `json:"env"`
	EnvOK            bool       `json:"envOk"`
	StoreInitialized bool       `json:"storeInitialized"`
	StoreReachable   bool       `json:"storeReachable"`
	Connectivity     bool       `json:"connectivity"`
	WriteOK          bool       `json:"writeOk"`
	ReadOK           bool       `json:"readOk"`
	Problems         []string   `json:"problems,omitempty"`
}

// Healthy indica si todos los chequeos pasaron.
func (r Report) Healthy() bool {
	return r.EnvOK && r.StoreInitialized && r.StoreReachable &&
		r.Connectivity && r.WriteOK && r.ReadOK
}

// Run ejecuta el chequeo completo contra el almacén inyectado. La prueba de
// escritura y lectura usa una colección aparte para no ensuciar datos reales.
func Run(ctx context.Context, db store.Database, probeURL string) Report {
	report := Report{CheckedAt: time.Now().UTC(), EnvOK: true}

	for _, name := range config.RequiredVars {
		present := os.Getenv(name) != ""
		report.Env = append(report.Env, EnvCheck{Name: name, Present: present})
		if !present {
			report.EnvOK = false
			report.Problems = append(report.Problems,
				fmt.Sprintf("environment variable %s is not set", name))
		}
	}

	report.Connectivity = retry.CheckConnectivity(ctx, probeURL)
	if !report.Connectivity {
		report.Problems = append(report.Problems, "connectivity probe failed")
	}

	if db == nil {
		report.Problems = append(report.Problems, "document store is not initialized")
		return report
	}
	report.StoreInitialized = true

	if err := db.Ping(ctx); err != nil {
		report.Problems = append(report.Problems,
			fmt.Sprintf("store ping failed: %v", err))
		return report
	}
	report.StoreReachable = true

	col := db.Collection(store.SelfCheck)
	doc := map[string]any{
		"message":   "selfcheck probe",
		"timestamp": time.Now().UTC(),
	}
	id, err := col.InsertOne(ctx, doc)
	if err != nil {
		report.Problems = append(report.Problems,
			fmt.Sprintf("write probe failed: %v", err))
		return report
	}
	report.WriteOK = true

	var read map[string]any
	if err := col.FindByID(ctx, id, &read); err != nil {
		report.Problems = append(report.Problems,
			fmt.Sprintf("read probe failed: %v", err))
	} else {
		report.ReadOK = true
	}

	// Mejor esfuerzo: si el borrado falla, el documento de prueba queda
	// huérfano pero el informe no cambia.
	_ = col.DeleteOne(ctx, id)

	return report
}
