package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore wraps the injected database handle. The handle may be nil
// when no database was configured; every operation then reports
// ErrUnavailable instead of panicking.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

func (s *mongoStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("%w: no database configured", ErrUnavailable)
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", ErrUnavailable, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *mongoStore) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64, out interface{}) error {
	if s.db == nil {
		return fmt.Errorf("%w: no database configured", ErrUnavailable)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	query := bson.M{}
	for k, v := range filter {
		query[k] = v
	}
	cursor, err := s.db.Collection(collection).Find(ctx, query, options.Find().SetLimit(limit))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *mongoStore) FindByID(ctx context.Context, collection string, id string, out interface{}) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	if s.db == nil {
		return fmt.Errorf("%w: no database configured", ErrUnavailable)
	}
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *mongoStore) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: no database configured", ErrUnavailable)
	}
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return names, nil
}
