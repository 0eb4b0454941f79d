package mongostore

import (
	"context"
	"errors"
	"net"

	"go.mongodb.org/mongo-driver/mongo"

	"medisupply-api/internal/store"
)

// Códigos de servidor de Mongo relevantes para la taxonomía.
const (
	codeUnauthorized        = 13
	codeExceededTimeLimit   = 50
	codeDuplicateKey        = 11000
	codeTooManyRequests     = 429 // Atlas rate limiting
	codeShutdownInProgress  = 91
	codeNotWritablePrimary  = 10107
	codePrimarySteppedDown  = 189
	codeInterruptedShutdown = 11600
)

// mapError traduce un error del driver al código de la taxonomía.
// Nunca devuelve nil para un error no nulo.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var se *store.Error
	if errors.As(err, &se) {
		return err
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.NewError(store.CodeNotFound, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return store.NewError(store.CodeDeadlineExceeded, err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return store.NewError(store.CodeAlreadyExists, err)
	}

	var netErr net.Error
	if mongo.IsNetworkError(err) || errors.As(err, &netErr) {
		return store.NewError(store.CodeUnavailable, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return store.NewError(serverCode(cmdErr.Code), err)
	}
	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		for _, we := range writeErr.WriteErrors {
			return store.NewError(serverCode(int32(we.Code)), err)
		}
	}

	return store.NewError(store.CodeInternal, err)
}

func serverCode(code int32) string {
	switch code {
	case codeUnauthorized:
		return store.CodePermissionDenied
	case codeExceededTimeLimit:
		return store.CodeDeadlineExceeded
	case codeDuplicateKey:
		return store.CodeAlreadyExists
	case codeTooManyRequests:
		return store.CodeResourceExhausted
	case codeShutdownInProgress, codeNotWritablePrimary,
		codePrimarySteppedDown, codeInterruptedShutdown:
		return store.CodeUnavailable
	default:
		return store.CodeInternal
	}
}
