// Package storage is the persistence gateway. State lives in whole-collection
// JSON blobs, one per logical table, written without locking or versioning:
// concurrent writers race and the last one wins. Every backend enforces a
// byte quota and reports ErrCapacityExceeded distinctly from other failures.
package storage

import (
	"context"
	"errors"
)

// Collection names, one per persisted blob
const (
	CollectionUsers   = "users"
	CollectionSession = "session"
	CollectionEvents  = "events"
	CollectionBrands  = "brands"
)

// DefaultQuotaBytes mirrors the ~5 MiB browser localStorage quota the
// original store lived under.
const DefaultQuotaBytes = 5 << 20

// ErrCapacityExceeded means the write would push the store past its quota.
// Callers surface it as a storage-full condition; nothing is partially
// written.
var ErrCapacityExceeded = errors.New("storage capacity exceeded")

// ErrNotFound means the collection has never been written
var ErrNotFound = errors.New("collection not found")

// Store reads and writes whole collections as opaque blobs
type Store interface {
	Load(ctx context.Context, collection string) ([]byte, error)
	Save(ctx context.Context, collection string, blob []byte) error
	Delete(ctx context.Context, collection string) error
	Close() error
}
