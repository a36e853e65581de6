package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. All services read and write through these four.
const (
	ColUsers    = "users"
	ColProducts = "products"
	ColTickets  = "tickets"
	ColRepairs  = "repairs"
)

// NewMongo connects, validates the connection with a ping, and bootstraps the
// indexes the repositories rely on. Connection failure here is fatal for the
// process (handled by the caller).
func NewMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRegistry(NewBSONRegistry()))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	if err := ensureIndexes(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}

// ensureIndexes creates the unique and lookup indexes. CreateOne is a no-op
// when an identical index already exists, so this is safe to run every boot.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := []struct {
		col   string
		model mongo.IndexModel
	}{
		{ColUsers, mongo.IndexModel{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique}},
		{ColTickets, mongo.IndexModel{Keys: bson.D{{Key: "folio", Value: 1}}, Options: unique}},
		{ColRepairs, mongo.IndexModel{Keys: bson.D{{Key: "folio", Value: 1}}, Options: unique}},
		// qrCode lookups happen on every register scan
		{ColProducts, mongo.IndexModel{Keys: bson.D{{Key: "qrCode", Value: 1}}}},
		{ColProducts, mongo.IndexModel{Keys: bson.D{{Key: "category", Value: 1}}}},
		{ColTickets, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		{ColRepairs, mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
	}

	for _, idx := range indexes {
		if _, err := db.Collection(idx.col).Indexes().CreateOne(ctx, idx.model); err != nil {
			return err
		}
	}
	return nil
}
