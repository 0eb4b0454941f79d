// Package mongostore implementa store.Database sobre MongoDB.
package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"medisupply-api/internal/store"
)

const (
	connectTimeout = 10 * time.Second
	writeTimeout   = 5 * time.Second
	queryTimeout   = 10 * time.Second
)

// Connect abre el cliente de Mongo y verifica la conexión.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, mapError(err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, mapError(err)
	}
	return client, nil
}

type database struct {
	db *mongo.Database
}

// New envuelve una base de Mongo como store.Database.
func New(db *mongo.Database) store.Database {
	return &database{db: db}
}

func (d *database) Collection(name string) store.Collection {
	return &collection{col: d.db.Collection(name)}
}

func (d *database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := d.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return mapError(err)
	}
	return nil
}

type collection struct {
	col *mongo.Collection
}

// InsertOne asigna un id hexadecimal y guarda el documento.
// El _id se guarda como string para que los llamadores nunca vean ObjectIDs.
func (c *collection) InsertOne(ctx context.Context, doc map[string]any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	id := primitive.NewObjectID().Hex()
	m := bson.M{"_id": id}
	for k, v := range doc {
		m[k] = v
	}
	if _, err := c.col.InsertOne(ctx, m); err != nil {
		return "", mapError(err)
	}
	return id, nil
}

func (c *collection) FindByID(ctx context.Context, id string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := c.col.FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		return mapError(err)
	}
	return nil
}

func (c *collection) Find(ctx context.Context, q store.Query, out any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{}
	for k, v := range q.Filter {
		filter[k] = v
	}

	opts := options.Find()
	if q.SortField != "" {
		order := 1
		if q.SortDesc {
			order = -1
		}
		opts.SetSort(bson.D{{Key: q.SortField, Value: order}})
	}

	cursor, err := c.col.Find(ctx, filter, opts)
	if err != nil {
		return mapError(err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return mapError(err)
	}
	return nil
}

func (c *collection) UpdateOne(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := c.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return mapError(err)
	}
	if result.MatchedCount == 0 {
		return store.Errorf(store.CodeNotFound, "document %s not found", id)
	}
	return nil
}

func (c *collection) DeleteOne(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	result, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if result.DeletedCount == 0 {
		return store.Errorf(store.CodeNotFound, "document %s not found", id)
	}
	return nil
}
