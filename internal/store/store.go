// Package store persists application state as independent JSON documents
// under fixed string keys, mirroring the browser-storage layout the product
// started with.
package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

type DocumentStore interface {
	// Get returns the raw document stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put overwrites the document under key with a full snapshot.
	Put(ctx context.Context, key string, value []byte) error
}
