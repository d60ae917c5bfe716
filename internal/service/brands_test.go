package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/repository"
	"lerida/internal/storage"
)

func newBrandFixture(t *testing.T) (*BrandService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(storage.NewMemoryStore(0))
	return NewBrandService(repos.Brands, repos.Users), repos
}

func brandReq() *models.CreateBrandRequest {
	return &models.CreateBrandRequest{
		Name:        "Acme Events",
		BankDetails: models.BankDetails{BankName: "First", AccountNumber: "001", AccountName: "Acme"},
	}
}

func TestCreateBrand(t *testing.T) {
	svc, _ := newBrandFixture(t)

	brand, err := svc.Create(context.Background(), "user_1", brandReq())

	assert.NoError(t, err)
	assert.Equal(t, []string{"user_1"}, brand.AdminIDs)
	assert.True(t, strings.HasPrefix(brand.RoutingCode, "SPL_BRAND_"))
	assert.NotNil(t, brand.BankDetails)
}

func TestListMineFiltersByAdmin(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "user_1", brandReq())
	assert.NoError(t, err)

	mine, err := svc.ListMine(ctx, "user_1")
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	others, err := svc.ListMine(ctx, "user_2")
	assert.NoError(t, err)
	assert.Empty(t, others)
}

func TestSetBankDetailsRegeneratesCode(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	brand, _ := svc.Create(ctx, "user_1", brandReq())
	firstCode := brand.RoutingCode

	details := &models.BankDetails{BankName: "Second", AccountNumber: "002", AccountName: "Acme"}
	updated, err := svc.SetBankDetails(ctx, "user_1", brand.ID, details)

	assert.NoError(t, err)
	assert.NotEqual(t, firstCode, updated.RoutingCode)
	assert.Equal(t, "Second", updated.BankDetails.BankName)
}

func TestSetBankDetailsClears(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	brand, _ := svc.Create(ctx, "user_1", brandReq())

	updated, err := svc.SetBankDetails(ctx, "user_1", brand.ID, nil)

	assert.NoError(t, err)
	assert.Nil(t, updated.BankDetails)
	assert.Empty(t, updated.RoutingCode)
}

func TestSetBankDetailsRefusesNonAdmin(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	brand, _ := svc.Create(ctx, "user_1", brandReq())

	_, err := svc.SetBankDetails(ctx, "user_2", brand.ID, nil)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.SetBankDetails(ctx, "user_1", "brand_ghost", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddAdmin(t *testing.T) {
	svc, repos := newBrandFixture(t)
	ctx := context.Background()

	target := &models.User{ID: "user_2", Email: "bea@example.com"}
	assert.NoError(t, repos.Users.Save(ctx, target))

	brand, _ := svc.Create(ctx, "user_1", brandReq())

	updated, err := svc.AddAdmin(ctx, "user_1", brand.ID, "bea@example.com")
	assert.NoError(t, err)
	assert.Equal(t, []string{"user_1", "user_2"}, updated.AdminIDs)

	// Adding an existing admin is a no-op success
	again, err := svc.AddAdmin(ctx, "user_1", brand.ID, "bea@example.com")
	assert.NoError(t, err)
	assert.Len(t, again.AdminIDs, 2)
}

func TestAddAdminRequiresExistingTarget(t *testing.T) {
	svc, _ := newBrandFixture(t)
	ctx := context.Background()

	brand, _ := svc.Create(ctx, "user_1", brandReq())

	_, err := svc.AddAdmin(ctx, "user_1", brand.ID, "ghost@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAddAdminRefusesNonAdminCaller(t *testing.T) {
	svc, repos := newBrandFixture(t)
	ctx := context.Background()

	target := &models.User{ID: "user_3", Email: "cleo@example.com"}
	assert.NoError(t, repos.Users.Save(ctx, target))

	brand, _ := svc.Create(ctx, "user_1", brandReq())

	_, err := svc.AddAdmin(ctx, "user_2", brand.ID, "cleo@example.com")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
