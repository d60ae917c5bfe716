package repository

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/storage"
)

// EventRepository persists the event list as one blob
type EventRepository struct {
	store storage.Store
}

func NewEventRepository(store storage.Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) All(ctx context.Context) ([]models.Event, error) {
	blob, err := r.store.Load(ctx, storage.CollectionEvents)
	if err == storage.ErrNotFound {
		return []models.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	var events []models.Event
	if err := json.Unmarshal(blob, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// GetByID reads the current stored snapshot of one event. Checkout
// validates against this, never against a caller-supplied copy.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	events, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, event := range events {
		if event.ID == id {
			e := event
			return &e, nil
		}
	}
	return nil, nil
}

func (r *EventRepository) Insert(ctx context.Context, event *models.Event) error {
	events, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.saveAll(ctx, append(events, *event))
}

// Update replaces the event with the same id and rewrites the whole
// collection. A failed save leaves the stored snapshot untouched, which
// is what makes purchase all-or-nothing.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	events, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == event.ID {
			events[i] = *event
			return r.saveAll(ctx, events)
		}
	}
	return apperrors.ErrNotFound
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	events, err := r.All(ctx)
	if err != nil {
		return err
	}
	filtered := events[:0:0]
	for _, event := range events {
		if event.ID != id {
			filtered = append(filtered, event)
		}
	}
	return r.saveAll(ctx, filtered)
}

func (r *EventRepository) saveAll(ctx context.Context, events []models.Event) error {
	blob, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	if err := r.store.Save(ctx, storage.CollectionEvents, blob); err != nil {
		if err == storage.ErrCapacityExceeded {
			return apperrors.ErrStorageFull
		}
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}
