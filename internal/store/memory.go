package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-memory Store used as a substitutable stand-in for the
// real database in tests. Documents round-trip through bson so that tag
// handling (omitempty, field names) matches what the driver would persist.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]bson.M

	// Lookups counts FindByID calls that got past id validation, so tests
	// can assert that malformed ids never reach the store.
	Lookups int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]bson.M)}
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	oid := primitive.NewObjectID()
	m["_id"] = oid

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = append(s.data[collection], m)
	return oid.Hex(), nil
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64, out interface{}) error {
	if limit <= 0 {
		limit = DefaultLimit
	}

	s.mu.Lock()
	var matched []bson.M
	for _, doc := range s.data[collection] {
		if int64(len(matched)) >= limit {
			break
		}
		if matches(doc, filter) {
			matched = append(matched, doc)
		}
	}
	s.mu.Unlock()

	return decodeAll(matched, out)
}

func (s *MemoryStore) FindByID(ctx context.Context, collection string, id string, out interface{}) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.Lookups++
	var found bson.M
	for _, doc := range s.data[collection] {
		if doc["_id"] == oid {
			found = doc
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return ErrNotFound
	}
	raw, err := bson.Marshal(found)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return bson.Unmarshal(raw, out)
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}

func matches(doc bson.M, filter map[string]interface{}) bool {
	for k, v := range filter {
		if doc[k] != v {
			return false
		}
	}
	return true
}

// decodeAll writes matched documents into out, which must be a pointer to a
// slice, the same contract cursor.All has.
func decodeAll(docs []bson.M, out interface{}) error {
	slice := reflect.ValueOf(out)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("%w: out must be a pointer to a slice, got %T", ErrUnavailable, out)
	}
	elems := reflect.MakeSlice(slice.Elem().Type(), 0, len(docs))
	elemType := slice.Elem().Type().Elem()
	for _, doc := range docs {
		raw, err := bson.Marshal(doc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		elems = reflect.Append(elems, elem.Elem())
	}
	slice.Elem().Set(elems)
	return nil
}
