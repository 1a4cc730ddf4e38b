package sources

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"storefront/core/catalog"
	"storefront/core/variant"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads product documents from a MongoDB collection.
// Ids that parse as ObjectID hex match both ObjectID and string keys.
type MongoSource struct {
	coll *mongo.Collection
}

// NewMongoSource creates a document store source.
func NewMongoSource(coll *mongo.Collection) *MongoSource {
	return &MongoSource{coll: coll}
}

// Name implements catalog.Source.
func (s *MongoSource) Name() string {
	return catalog.KindMongo
}

// FetchProduct implements catalog.Source.
func (s *MongoSource) FetchProduct(ctx context.Context, id string) (variant.Document, error) {
	var raw bson.M
	err := s.coll.FindOne(ctx, idFilter(id)).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %s", catalog.ErrProductNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", id, err)
	}
	return variant.Document(raw), nil
}

// ListProductIDs implements catalog.Source.
func (s *MongoSource) ListProductIDs(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var row struct {
			ID any `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode product id: %w", err)
		}
		if id, ok := variant.Normalize(row.ID); ok && id != "" {
			ids = append(ids, id)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// SaveProduct implements catalog.Source.
func (s *MongoSource) SaveProduct(ctx context.Context, id string, doc variant.Document) error {
	key := idKey(id)
	replacement := bson.M{}
	for k, v := range doc {
		replacement[k] = v
	}
	replacement["_id"] = key

	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": key}, replacement, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", id, err)
	}
	return nil
}

// idKey stores hex ids as ObjectID and anything else as a plain string.
func idKey(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": bson.M{"$in": bson.A{oid, id}}}
	}
	return bson.M{"_id": id}
}

// DeleteProduct implements catalog.Deleter.
func (s *MongoSource) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.coll.DeleteMany(ctx, idFilter(id)); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}
