package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names, one per document type. /schema reports this list.
const (
	CollectionUser       = "user"
	CollectionTest       = "test"
	CollectionAttempt    = "attempt"
	CollectionSubmission = "submission"
)

// CollectionNames lists every collection this service knows about.
func CollectionNames() []string {
	return []string{CollectionUser, CollectionTest, CollectionAttempt, CollectionSubmission}
}

// DefaultLimit caps list queries when the caller does not provide a limit.
const DefaultLimit int64 = 50

var (
	// ErrNotFound means the query succeeded but no document matched.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID means the identifier is not well-formed. It is reported
	// before any store round-trip.
	ErrInvalidID = errors.New("invalid document id")
	// ErrUnavailable wraps infrastructure failures of the underlying store.
	ErrUnavailable = errors.New("store unavailable")
)

// Store is a thin, collection-parametrized interface over a document
// database. Only create and read operations exist; there is no update,
// delete, caching, or cross-call transaction.
type Store interface {
	// Insert adds doc as a new document and returns its assigned id as an
	// opaque string.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	// Find decodes all documents matching the exact-match conjunction of
	// filter into out (a pointer to a slice), capped at limit documents.
	// A limit <= 0 falls back to DefaultLimit.
	Find(ctx context.Context, collection string, filter map[string]interface{}, limit int64, out interface{}) error
	// FindByID decodes the document with the given id into out. It returns
	// ErrInvalidID for a malformed id without touching the store, and
	// ErrNotFound when no document has that id.
	FindByID(ctx context.Context, collection string, id string, out interface{}) error
	// Collections lists the collection names present in the store.
	Collections(ctx context.Context) ([]string, error)
}

// ParseID validates the syntactic form of an opaque document id.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
