package records

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore persists each collection as a single document keyed by the
// collection name, replaced wholesale on every write. This keeps the
// per-key replace-on-write contract identical to the in-memory store.
type MongoStore struct {
	client   *mongo.Client
	dbName   string
	collName string
}

type collectionDoc struct {
	Key       string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri string, dbName string) (*MongoStore, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client:   client,
		dbName:   dbName,
		collName: "collections",
	}, nil
}

// Get fetches the payload stored under key, or nil when absent.
func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, error) {
	coll := m.client.Database(m.dbName).Collection(m.collName)

	var doc collectionDoc
	err := coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", key, err)
	}
	return doc.Payload, nil
}

// Set replaces the payload stored under key, inserting it when absent.
func (m *MongoStore) Set(ctx context.Context, key string, payload []byte) error {
	coll := m.client.Database(m.dbName).Collection(m.collName)

	doc := collectionDoc{Key: key, Payload: payload, UpdatedAt: time.Now().UTC()}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, opts); err != nil {
		return fmt.Errorf("failed to replace %s: %w", key, err)
	}
	return nil
}

// Remove deletes the document for key. Removing an absent key is not an
// error.
func (m *MongoStore) Remove(ctx context.Context, key string) error {
	coll := m.client.Database(m.dbName).Collection(m.collName)

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
