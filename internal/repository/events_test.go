package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/storage"
)

func testEvent(id string) *models.Event {
	return &models.Event{
		ID:            id,
		CreatedBy:     "user_1",
		Title:         "Show",
		ShareableLink: "/ticket/" + id,
		Tickets: []models.Ticket{
			{ID: "ga", Name: "GA", Price: 10, InitialQuantity: 5, Quantity: 5, PurchaseLimit: 2},
		},
	}
}

func TestEventRepositoryRoundTrip(t *testing.T) {
	repo := NewEventRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testEvent("evt_1")))
	assert.NoError(t, repo.Insert(ctx, testEvent("evt_2")))

	event, err := repo.GetByID(ctx, "evt_1")
	assert.NoError(t, err)
	assert.NotNil(t, event)
	assert.Equal(t, "Show", event.Title)

	all, err := repo.All(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestEventRepositoryGetMissing(t *testing.T) {
	repo := NewEventRepository(storage.NewMemoryStore(0))

	event, err := repo.GetByID(context.Background(), "evt_none")
	assert.NoError(t, err)
	assert.Nil(t, event)
}

func TestEventRepositoryUpdate(t *testing.T) {
	repo := NewEventRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testEvent("evt_1")))

	event, _ := repo.GetByID(ctx, "evt_1")
	event.Title = "Renamed"
	event.Tickets[0].Quantity = 3
	assert.NoError(t, repo.Update(ctx, event))

	stored, _ := repo.GetByID(ctx, "evt_1")
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, 3, stored.Tickets[0].Quantity)
}

func TestEventRepositoryUpdateMissing(t *testing.T) {
	repo := NewEventRepository(storage.NewMemoryStore(0))

	err := repo.Update(context.Background(), testEvent("evt_ghost"))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestEventRepositoryDelete(t *testing.T) {
	repo := NewEventRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testEvent("evt_1")))
	assert.NoError(t, repo.Insert(ctx, testEvent("evt_2")))
	assert.NoError(t, repo.Delete(ctx, "evt_1"))

	event, _ := repo.GetByID(ctx, "evt_1")
	assert.Nil(t, event)
	all, _ := repo.All(ctx)
	assert.Len(t, all, 1)
}

func TestEventRepositoryMapsQuotaToStorageFull(t *testing.T) {
	// A store too small for the collection surfaces the storage-full
	// error, not a generic one
	repo := NewEventRepository(storage.NewMemoryStore(16))

	err := repo.Insert(context.Background(), testEvent("evt_1"))
	assert.ErrorIs(t, err, apperrors.ErrStorageFull)
}

func TestSnapshotIndependence(t *testing.T) {
	// Two reads decode independent copies; mutating one must not leak
	// into the other or into the store
	repo := NewEventRepository(storage.NewMemoryStore(0))
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, testEvent("evt_1")))

	first, _ := repo.GetByID(ctx, "evt_1")
	first.Tickets[0].Quantity = 0

	second, _ := repo.GetByID(ctx, "evt_1")
	assert.Equal(t, 5, second.Tickets[0].Quantity)
}
