package retry

import (
	"fmt"

	"medisupply-api/internal/store"
)

// Classification traduce un fallo del backend a texto para el usuario más
// una pista de diagnóstico para soporte.
type Classification struct {
	UserMessage string `json:"userMessage"`
	Suggestion  string `json:"suggestion"`
}

// Classify es total sobre la taxonomía de códigos: cualquier código no
// reconocido cae en la rama genérica conservando el código original en la
// sugerencia. No tiene efectos secundarios.
func Classify(err error) Classification {
	code := store.CodeOf(err)
	switch code {
	case store.CodeUnavailable:
		return Classification{
			UserMessage: "Service temporarily unavailable. Please check your internet connection and try again.",
			Suggestion:  "Check your network connection, disable VPN if active, or try again in a few moments.",
		}
	case store.CodePermissionDenied:
		return Classification{
			UserMessage: "Permission denied. Please contact support.",
			Suggestion:  "Check database security rules or authentication status.",
		}
	case store.CodeDeadlineExceeded:
		return Classification{
			UserMessage: "Request timed out. Please try again.",
			Suggestion:  "Network might be slow. Try again or check connectivity.",
		}
	case store.CodeResourceExhausted:
		return Classification{
			UserMessage: "Service is busy. Please try again later.",
			Suggestion:  "Backend quota might be exceeded. Try again later.",
		}
	default:
		return Classification{
			UserMessage: "An unexpected error occurred. Please try again.",
			Suggestion:  fmt.Sprintf("Unknown error: %s", code),
		}
	}
}
