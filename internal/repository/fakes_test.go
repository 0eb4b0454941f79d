package repository

import (
	"context"
	"sync/atomic"
	"time"

	"medisupply-api/internal/retry"
	"medisupply-api/internal/store"
)

// Dobles de prueba al estilo de los repositorios con campos-función: cada
// operación delega en el campo correspondiente y cuenta las invocaciones.

var _ store.Database = (*fakeDB)(nil)
var _ store.Collection = (*fakeCollection)(nil)

type fakeDB struct {
	col *fakeCollection
}

func (f *fakeDB) Collection(name string) store.Collection { return f.col }
func (f *fakeDB) Ping(ctx context.Context) error          { return nil }

type fakeCollection struct {
	InsertOneFunc func(ctx context.Context, doc map[string]any) (string, error)
	UpdateOneFunc func(ctx context.Context, id string, fields map[string]any) error
	DeleteOneFunc func(ctx context.Context, id string) error

	insertCalls int32
	updateCalls int32
	deleteCalls int32
}

func (f *fakeCollection) InsertOne(ctx context.Context, doc map[string]any) (string, error) {
	atomic.AddInt32(&f.insertCalls, 1)
	if f.InsertOneFunc != nil {
		return f.InsertOneFunc(ctx, doc)
	}
	return "fake-id", nil
}

func (f *fakeCollection) FindByID(ctx context.Context, id string, out any) error {
	return store.Errorf(store.CodeNotFound, "document %s not found", id)
}

func (f *fakeCollection) Find(ctx context.Context, q store.Query, out any) error {
	return store.Errorf(store.CodeUnavailable, "find is down")
}

func (f *fakeCollection) UpdateOne(ctx context.Context, id string, fields map[string]any) error {
	atomic.AddInt32(&f.updateCalls, 1)
	if f.UpdateOneFunc != nil {
		return f.UpdateOneFunc(ctx, id, fields)
	}
	return nil
}

func (f *fakeCollection) DeleteOne(ctx context.Context, id string) error {
	atomic.AddInt32(&f.deleteCalls, 1)
	if f.DeleteOneFunc != nil {
		return f.DeleteOneFunc(ctx, id)
	}
	return nil
}

// probeAlways fija el resultado de la sonda de conectividad.
func probeAlways(result bool) ProbeFunc {
	return func(ctx context.Context, url string) bool { return result }
}

// fastRetry reintenta sin apenas esperar para que los tests no se eternicen.
func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 3, BaseDelay: time.Millisecond}
}
