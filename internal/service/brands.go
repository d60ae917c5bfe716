package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/payout"
	"lerida/internal/repository"
)

type BrandService struct {
	brandRepo *repository.BrandRepository
	userRepo  *repository.UserRepository
}

func NewBrandService(brandRepo *repository.BrandRepository, userRepo *repository.UserRepository) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		userRepo:  userRepo,
	}
}

// Create sets up a brand with the caller as its first admin. Bank
// details are mandatory at creation, so the routing code is derived
// immediately.
func (s *BrandService) Create(ctx context.Context, userID string, req *models.CreateBrandRequest) (*models.Brand, error) {
	details := req.BankDetails
	brand := &models.Brand{
		ID:          "brand_" + uuid.New().String(),
		Name:        req.Name,
		BankDetails: &details,
		RoutingCode: payout.NewRoutingCode(payout.KindBrand),
		AdminIDs:    []string{userID},
	}

	if err := s.brandRepo.Insert(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ListMine returns the brands the caller administers
func (s *BrandService) ListMine(ctx context.Context, userID string) ([]models.Brand, error) {
	return s.brandRepo.ListByAdmin(ctx, userID)
}

// SetBankDetails replaces or clears a brand's payout configuration.
// Non-admins are refused.
func (s *BrandService) SetBankDetails(ctx context.Context, userID, brandID string, details *models.BankDetails) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, apperrors.ErrNotFound
	}
	if !brand.IsAdmin(userID) {
		return nil, apperrors.ErrForbidden
	}

	if details != nil {
		brand.BankDetails = details
		brand.RoutingCode = payout.NewRoutingCode(payout.KindBrand)
	} else {
		brand.BankDetails = nil
		brand.RoutingCode = ""
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// AddAdmin adds a registered user to the brand's admin list by email.
// Adding an existing admin is a no-op success.
func (s *BrandService) AddAdmin(ctx context.Context, userID, brandID, email string) (*models.Brand, error) {
	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, apperrors.ErrNotFound
	}
	if !brand.IsAdmin(userID) {
		return nil, apperrors.ErrForbidden
	}

	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if target == nil {
		return nil, apperrors.ErrNotFound
	}
	if brand.IsAdmin(target.ID) {
		return brand, nil
	}

	brand.AdminIDs = append(brand.AdminIDs, target.ID)
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}
