package repository

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/storage"
)

// BrandRepository persists the brand list as one blob
type BrandRepository struct {
	store storage.Store
}

func NewBrandRepository(store storage.Store) *BrandRepository {
	return &BrandRepository{store: store}
}

func (r *BrandRepository) All(ctx context.Context) ([]models.Brand, error) {
	blob, err := r.store.Load(ctx, storage.CollectionBrands)
	if err == storage.ErrNotFound {
		return []models.Brand{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}

	var brands []models.Brand
	if err := json.Unmarshal(blob, &brands); err != nil {
		return nil, fmt.Errorf("failed to decode brands: %w", err)
	}
	return brands, nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	brands, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, brand := range brands {
		if brand.ID == id {
			b := brand
			return &b, nil
		}
	}
	return nil, nil
}

// ListByAdmin returns every brand the user administers
func (r *BrandRepository) ListByAdmin(ctx context.Context, userID string) ([]models.Brand, error) {
	brands, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	result := []models.Brand{}
	for _, brand := range brands {
		if brand.IsAdmin(userID) {
			result = append(result, brand)
		}
	}
	return result, nil
}

func (r *BrandRepository) Insert(ctx context.Context, brand *models.Brand) error {
	brands, err := r.All(ctx)
	if err != nil {
		return err
	}
	return r.saveAll(ctx, append(brands, *brand))
}

// Update replaces the brand with the same id. Missing brands are a
// not-found error, never an insert.
func (r *BrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	brands, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range brands {
		if brands[i].ID == brand.ID {
			brands[i] = *brand
			return r.saveAll(ctx, brands)
		}
	}
	return apperrors.ErrNotFound
}

func (r *BrandRepository) saveAll(ctx context.Context, brands []models.Brand) error {
	blob, err := json.Marshal(brands)
	if err != nil {
		return fmt.Errorf("failed to encode brands: %w", err)
	}
	if err := r.store.Save(ctx, storage.CollectionBrands, blob); err != nil {
		if err == storage.ErrCapacityExceeded {
			return apperrors.ErrStorageFull
		}
		return fmt.Errorf("failed to save brands: %w", err)
	}
	return nil
}
