package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionKV = "kv"

// kvDocument is one key of the medium. The key is the document _id.
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KV stores each key as a single document. ReplaceOne swaps the whole document
// atomically, which is all the Record Store needs.
type KV struct {
	col *mongo.Collection
}

func NewKV(db *mongo.Database) *KV {
	return &KV{col: db.Collection(collectionKV)}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	err := k.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mongo kv: get %q: %w", key, err)
	}
	return doc.Value, true, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := k.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo kv: set %q: %w", key, err)
	}
	return nil
}

// Ping checks the server is reachable.
func (k *KV) Ping(ctx context.Context) error {
	return k.col.Database().RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
