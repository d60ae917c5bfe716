package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, CollectionEvents, []byte(`[]`)))

	blob, err := store.Load(ctx, CollectionEvents)
	assert.NoError(t, err)
	assert.Equal(t, []byte(`[]`), blob)
}

func TestMemoryStoreMissingCollection(t *testing.T) {
	store := NewMemoryStore(0)

	_, err := store.Load(context.Background(), CollectionBrands)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreQuota(t *testing.T) {
	store := NewMemoryStore(10)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "a", []byte("12345")))

	// The quota counts all collections together
	err := store.Save(ctx, "b", []byte("1234567"))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// The refused write stored nothing
	_, err = store.Load(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)

	// Rewriting an existing collection replaces its contribution
	assert.NoError(t, store.Save(ctx, "a", []byte("1234567890")))
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, CollectionSession, []byte("ana@example.com")))
	assert.NoError(t, store.Delete(ctx, CollectionSession))

	_, err := store.Load(ctx, CollectionSession)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing collection is fine
	assert.NoError(t, store.Delete(ctx, CollectionSession))
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	original := []byte("abc")
	assert.NoError(t, store.Save(ctx, "a", original))
	original[0] = 'x'

	blob, err := store.Load(ctx, "a")
	assert.NoError(t, err)
	assert.Equal(t, []byte("abc"), blob)
}
