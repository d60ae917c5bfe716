package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
)

func testEvent() *models.Event {
	return &models.Event{
		ID:    "evt_1",
		Title: "Test Concert",
		Tickets: []models.Ticket{
			{ID: "ga", Name: "GA", Price: 10, InitialQuantity: 100, Quantity: 100, PurchaseLimit: 5},
			{ID: "vip", Name: "VIP", Price: 50, InitialQuantity: 10, Quantity: 10, PurchaseLimit: 2},
		},
	}
}

func TestQuoteClampsToPurchaseLimit(t *testing.T) {
	event := testEvent()
	event.Tickets[0].Quantity = 5
	event.Tickets[0].PurchaseLimit = 2

	resp := Quote(event, map[string]int{"ga": 10})

	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, 2, resp.Lines[0].Quantity)
	assert.Equal(t, 20.0, resp.TotalCost)
	assert.Equal(t, 2, resp.TicketCount)
}

func TestQuoteClampsToRemainingStock(t *testing.T) {
	event := testEvent()
	event.Tickets[0].Quantity = 3

	resp := Quote(event, map[string]int{"ga": 5})

	assert.Equal(t, 3, resp.Lines[0].Quantity)
	assert.Equal(t, 30.0, resp.TotalCost)
}

func TestQuoteDropsZeroAndNegativeLines(t *testing.T) {
	event := testEvent()

	resp := Quote(event, map[string]int{"ga": 0, "vip": -3})

	assert.Empty(t, resp.Lines)
	assert.Equal(t, 0.0, resp.TotalCost)
	assert.Equal(t, 0, resp.TicketCount)
}

func TestQuoteIgnoresUnknownTickets(t *testing.T) {
	event := testEvent()

	resp := Quote(event, map[string]int{"nope": 4, "vip": 1})

	assert.Len(t, resp.Lines, 1)
	assert.Equal(t, "vip", resp.Lines[0].TicketID)
}

func TestQuoteIsIdempotent(t *testing.T) {
	event := testEvent()
	req := map[string]int{"ga": 3, "vip": 2}

	first := Quote(event, req)
	second := Quote(event, req)

	assert.Equal(t, first, second)
	// Quote must not touch stock
	assert.Equal(t, 100, event.Tickets[0].Quantity)
	assert.Equal(t, 10, event.Tickets[1].Quantity)
}

func TestQuoteMixedLines(t *testing.T) {
	event := testEvent()

	resp := Quote(event, map[string]int{"ga": 3, "vip": 2})

	assert.Len(t, resp.Lines, 2)
	assert.Equal(t, 130.0, resp.TotalCost)
	assert.Equal(t, 5, resp.TicketCount)
}

func TestValidateFailsWhenStockInsufficient(t *testing.T) {
	event := testEvent()
	event.Tickets[0].Quantity = 2
	event.Tickets[0].PurchaseLimit = 5

	err := Validate(event, map[string]int{"ga": 3})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)
	assert.Equal(t, 2, event.Tickets[0].Quantity)
}

func TestValidateFailsOnUnknownTicket(t *testing.T) {
	event := testEvent()

	err := Validate(event, map[string]int{"nope": 1})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)
}

func TestValidateWholeOrderFails(t *testing.T) {
	event := testEvent()
	event.Tickets[1].Quantity = 1

	// One fillable line and one short line fail together
	err := Validate(event, map[string]int{"ga": 2, "vip": 2})

	assert.ErrorIs(t, err, apperrors.ErrInsufficientInventory)
}

func TestValidateAllowsZeroLines(t *testing.T) {
	event := testEvent()

	assert.NoError(t, Validate(event, map[string]int{"ga": 0}))
	assert.NoError(t, Validate(event, map[string]int{}))
	assert.NoError(t, Validate(event, map[string]int{"nope": 0}))
}

func TestApplyDecrementsStockOnly(t *testing.T) {
	event := testEvent()

	total, count := Apply(event, map[string]int{"ga": 3, "vip": 1})

	assert.Equal(t, 80.0, total)
	assert.Equal(t, 4, count)
	assert.Equal(t, 97, event.Tickets[0].Quantity)
	assert.Equal(t, 9, event.Tickets[1].Quantity)
	// InitialQuantity is untouched by purchases
	assert.Equal(t, 100, event.Tickets[0].InitialQuantity)
	assert.Equal(t, 10, event.Tickets[1].InitialQuantity)
}

func TestApplyKeepsQuantityWithinBounds(t *testing.T) {
	event := testEvent()

	Apply(event, map[string]int{"ga": 100, "vip": 10})

	for _, ticket := range event.Tickets {
		assert.GreaterOrEqual(t, ticket.Quantity, 0)
		assert.LessOrEqual(t, ticket.Quantity, ticket.InitialQuantity)
	}
}
