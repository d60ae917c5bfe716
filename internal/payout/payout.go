// Package payout derives where sale proceeds are routed. Routing codes
// are opaque split identifiers in the processor's format (5% platform /
// 95% organizer); deriving the route never mutates anything and never
// gates a purchase.
package payout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lerida/internal/models"
)

// NotConfigured is the sentinel routing code for owners without bank
// details. Purchases still succeed with it.
const NotConfigured = "NOT_CONFIGURED"

// Kind distinguishes user and brand routing codes
type Kind string

const (
	KindUser  Kind = "USER"
	KindBrand Kind = "BRAND"
)

// NewRoutingCode generates a fresh split code for the entity kind. It
// regenerates on every call: uniqueness and stability until the next
// bank-details change are the only contracts, not the exact format.
func NewRoutingCode(kind Kind) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("SPL_%s_%s_5_95", kind, token)
}

// Route resolves the routing code and a beneficiary descriptor for an
// event's sale proceeds. Brand-owned events route to the brand, personal
// events to the creator; either without bank details yields the
// NotConfigured sentinel. Lookups returning nil also yield the sentinel.
func Route(event *models.Event, brandByID func(string) *models.Brand, userByID func(string) *models.User) (string, string) {
	if event.BrandID != "" {
		brand := brandByID(event.BrandID)
		if brand == nil {
			return NotConfigured, "Brand: unknown (No Bank)"
		}
		code := brand.RoutingCode
		if code == "" {
			code = NotConfigured
		}
		return code, fmt.Sprintf("Brand: %s (%s)", brand.Name, bankStatus(brand.BankDetails))
	}

	creator := userByID(event.CreatedBy)
	if creator == nil {
		return NotConfigured, "User: unknown (No Bank)"
	}
	code := creator.RoutingCode
	if code == "" {
		code = NotConfigured
	}
	name := creator.Name
	if name == "" {
		name = creator.Email
	}
	return code, fmt.Sprintf("User: %s (%s)", name, bankStatus(creator.BankDetails))
}

func bankStatus(details *models.BankDetails) string {
	if details != nil {
		return "Bank Verified"
	}
	return "No Bank"
}
