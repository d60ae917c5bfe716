package payout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lerida/internal/models"
)

func TestNewRoutingCodeFormat(t *testing.T) {
	userCode := NewRoutingCode(KindUser)
	brandCode := NewRoutingCode(KindBrand)

	assert.True(t, strings.HasPrefix(userCode, "SPL_USER_"))
	assert.True(t, strings.HasPrefix(brandCode, "SPL_BRAND_"))
	assert.True(t, strings.HasSuffix(userCode, "_5_95"))
}

func TestNewRoutingCodeRegenerates(t *testing.T) {
	// Codes regenerate on every call; stability across calls is not a
	// contract even for identical inputs
	assert.NotEqual(t, NewRoutingCode(KindUser), NewRoutingCode(KindUser))
}

func noBrand(string) *models.Brand { return nil }
func noUser(string) *models.User   { return nil }

func TestRouteBrandOwnedEvent(t *testing.T) {
	brand := &models.Brand{
		ID:          "brand_1",
		Name:        "Acme Events",
		BankDetails: &models.BankDetails{BankName: "First", AccountNumber: "001", AccountName: "Acme"},
		RoutingCode: "SPL_BRAND_ABC123_5_95",
	}
	event := &models.Event{ID: "evt_1", BrandID: "brand_1", CreatedBy: "user_1"}

	code, beneficiary := Route(event, func(string) *models.Brand { return brand }, noUser)

	assert.Equal(t, "SPL_BRAND_ABC123_5_95", code)
	assert.Equal(t, "Brand: Acme Events (Bank Verified)", beneficiary)
}

func TestRoutePersonalEvent(t *testing.T) {
	creator := &models.User{
		ID:          "user_1",
		Email:       "ana@example.com",
		Name:        "Ana",
		BankDetails: &models.BankDetails{BankName: "First", AccountNumber: "002", AccountName: "Ana"},
		RoutingCode: "SPL_USER_DEF456_5_95",
	}
	event := &models.Event{ID: "evt_1", CreatedBy: "user_1"}

	code, beneficiary := Route(event, noBrand, func(string) *models.User { return creator })

	assert.Equal(t, "SPL_USER_DEF456_5_95", code)
	assert.Equal(t, "User: Ana (Bank Verified)", beneficiary)
}

func TestRouteOwnerWithoutBankDetails(t *testing.T) {
	creator := &models.User{ID: "user_1", Email: "ana@example.com"}
	event := &models.Event{ID: "evt_1", CreatedBy: "user_1"}

	code, beneficiary := Route(event, noBrand, func(string) *models.User { return creator })

	assert.Equal(t, NotConfigured, code)
	assert.Equal(t, "User: ana@example.com (No Bank)", beneficiary)
}

func TestRouteBrandWithoutBankDetails(t *testing.T) {
	brand := &models.Brand{ID: "brand_1", Name: "Acme Events"}
	event := &models.Event{ID: "evt_1", BrandID: "brand_1"}

	code, beneficiary := Route(event, func(string) *models.Brand { return brand }, noUser)

	assert.Equal(t, NotConfigured, code)
	assert.Equal(t, "Brand: Acme Events (No Bank)", beneficiary)
}

func TestRouteDanglingLookups(t *testing.T) {
	brandOwned := &models.Event{ID: "evt_1", BrandID: "brand_gone"}
	personal := &models.Event{ID: "evt_2", CreatedBy: "user_gone"}

	code, _ := Route(brandOwned, noBrand, noUser)
	assert.Equal(t, NotConfigured, code)

	code, _ = Route(personal, noBrand, noUser)
	assert.Equal(t, NotConfigured, code)
}
