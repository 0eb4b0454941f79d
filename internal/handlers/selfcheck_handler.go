package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"medisupply-api/internal/repository"
	"medisupply-api/internal/selfcheck"
)

// SelfCheckHandler expone el diagnóstico de la instalación como informe
// tipado, en lugar de volcar el estado por consola.
type SelfCheckHandler struct {
	gw       *repository.Gateway
	probeURL string
}

func NewSelfCheckHandler(gw *repository.Gateway, probeURL string) *SelfCheckHandler {
	return &SelfCheckHandler{gw: gw, probeURL: probeURL}
}

func (h *SelfCheckHandler) SelfCheck(c *gin.Context) {
	report := selfcheck.Run(c.Request.Context(), h.gw.Database(), h.probeURL)

	if !report.Healthy() {
		zap.S().Warnw("selfcheck reported problems", "problems", report.Problems)
		c.JSON(http.StatusServiceUnavailable, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Health responde el chequeo básico de vida del proceso.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
