package controllers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is a hand-written Store double. It records the last query and
// every inserted document so tests can assert on filter translation and on
// what would have been stored.
type fakeStore struct {
	docs        map[string][]bson.M
	collections []string

	insertErr error
	findErr   error
	listErr   error

	nextID string

	inserted   map[string][]interface{}
	lastColl   string
	lastFilter bson.M
	lastLimit  int64
	queried    bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		docs:     map[string][]bson.M{},
		inserted: map[string][]interface{}{},
		nextID:   "65f2a0c4b7e1d92f13a45b01",
	}
}

func (f *fakeStore) CreateDocument(_ context.Context, collection string, doc interface{}) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	f.inserted[collection] = append(f.inserted[collection], doc)
	return f.nextID, nil
}

func (f *fakeStore) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	f.queried = true
	f.lastColl = collection
	f.lastFilter = filter
	f.lastLimit = limit
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs[collection], nil
}

func (f *fakeStore) ListCollectionNames(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

// serve mounts a single handler and runs one request against it.
func serve(method, route string, h gin.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, route, h)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
