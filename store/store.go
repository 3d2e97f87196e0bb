package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Store is the document-store surface the handlers need: insert one document
// into a named collection, query a collection with a filter and limit, and
// list collection names. Handlers receive a Store so tests can substitute a
// fake one.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}
