// Package memstore implementa store.Database en memoria. Se usa en modo
// local (sin Mongo) y como doble de pruebas.
package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"medisupply-api/internal/store"
)

type Database struct {
	mu   sync.RWMutex
	cols map[string]*collection
	seq  uint64
}

// New crea una base vacía.
func New() *Database {
	return &Database{cols: make(map[string]*collection)}
}

func (d *Database) Collection(name string) store.Collection {
	d.mu.Lock()
	defer d.mu.Unlock()

	col, ok := d.cols[name]
	if !ok {
		col = &collection{db: d, docs: make(map[string]map[string]any)}
		d.cols[name] = col
	}
	return col
}

func (d *Database) Ping(ctx context.Context) error { return nil }

func (d *Database) nextID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return fmt.Sprintf("mem-%012x", d.seq)
}

type collection struct {
	db   *Database
	mu   sync.RWMutex
	docs map[string]map[string]any
}

func (c *collection) InsertOne(ctx context.Context, doc map[string]any) (string, error) {
	normalized, err := normalize(doc)
	if err != nil {
		return "", store.NewError(store.CodeInvalidArgument, err)
	}

	id := c.db.nextID()
	normalized["_id"] = id

	c.mu.Lock()
	c.docs[id] = normalized
	c.mu.Unlock()
	return id, nil
}

func (c *collection) FindByID(ctx context.Context, id string, out any) error {
	c.mu.RLock()
	doc, ok := c.docs[id]
	if !ok {
		c.mu.RUnlock()
		return store.Errorf(store.CodeNotFound, "document %s not found", id)
	}
	// Serializamos bajo el lock: UpdateOne muta el documento en sitio.
	data, err := json.Marshal(doc)
	c.mu.RUnlock()
	if err != nil {
		return store.NewError(store.CodeInternal, err)
	}
	return unmarshalInto(data, out)
}

func (c *collection) Find(ctx context.Context, q store.Query, out any) error {
	// Todo el recorrido (filtro, orden y serialización) ocurre bajo el lock
	// porque los mapas siguen vivos y UpdateOne los muta en sitio.
	c.mu.RLock()
	matched := make([]map[string]any, 0, len(c.docs))
	for _, doc := range c.docs {
		if matches(doc, q.Filter) {
			matched = append(matched, doc)
		}
	}

	if q.SortField != "" {
		sort.SliceStable(matched, func(i, j int) bool {
			less := compareValues(matched[i][q.SortField], matched[j][q.SortField]) < 0
			if q.SortDesc {
				return !less
			}
			return less
		})
	} else {
		// Orden estable por id para resultados deterministas.
		sort.SliceStable(matched, func(i, j int) bool {
			return fmt.Sprint(matched[i]["_id"]) < fmt.Sprint(matched[j]["_id"])
		})
	}

	data, err := json.Marshal(matched)
	c.mu.RUnlock()
	if err != nil {
		return store.NewError(store.CodeInternal, err)
	}
	return unmarshalInto(data, out)
}

func (c *collection) UpdateOne(ctx context.Context, id string, fields map[string]any) error {
	normalized, err := normalize(fields)
	if err != nil {
		return store.NewError(store.CodeInvalidArgument, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[id]
	if !ok {
		return store.Errorf(store.CodeNotFound, "document %s not found", id)
	}
	for k, v := range normalized {
		doc[k] = v
	}
	return nil
}

func (c *collection) DeleteOne(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return store.Errorf(store.CodeNotFound, "document %s not found", id)
	}
	delete(c.docs, id)
	return nil
}

// normalize pasa el documento por JSON para quedarnos con tipos planos
// (string, float64, bool, mapas y slices), igual que haría el backend real.
func normalize(doc map[string]any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var normalized map[string]any
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, err
	}
	return normalized, nil
}

func unmarshalInto(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return store.NewError(store.CodeInternal, err)
	}
	return nil
}

func matches(doc map[string]any, filter map[string]any) bool {
	for k, want := range filter {
		if compareValues(doc[k], want) != 0 {
			return false
		}
	}
	return true
}

// compareValues ordena timestamps, números y cadenas; el resto se compara
// por su representación textual.
func compareValues(a, b any) int {
	if ta, ok := asTime(a); ok {
		if tb, ok := asTime(b); ok {
			return ta.Compare(tb)
		}
	}
	if na, ok := asFloat(a); ok {
		if nb, ok := asFloat(b); ok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}
	sa, sb := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Time{}, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
