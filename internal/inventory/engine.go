// Package inventory is the ticket-stock engine behind checkout. Quote is
// the forgiving, UI-facing path: it clamps each line to what is actually
// purchasable. Validate/Apply are the authoritative path: any line that
// cannot be fulfilled in full fails the whole order.
package inventory

import (
	apperrors "lerida/internal/errors"
	"lerida/internal/models"
)

// Quote prices a requested quantity map against an event. Each line is
// clamped to max(0, min(requested, purchase limit, remaining stock));
// lines that clamp to zero are dropped. Quote has no side effects and is
// safe to call repeatedly while the buyer adjusts the order.
func Quote(event *models.Event, requested map[string]int) models.QuoteResponse {
	resp := models.QuoteResponse{Lines: []models.QuoteLine{}}

	for _, ticket := range event.Tickets {
		qty := clamp(requested[ticket.ID], &ticket)
		if qty == 0 {
			continue
		}
		resp.Lines = append(resp.Lines, models.QuoteLine{
			TicketID:  ticket.ID,
			Name:      ticket.Name,
			UnitPrice: ticket.Price,
			Quantity:  qty,
			LineTotal: ticket.Price * float64(qty),
		})
		resp.TotalCost += ticket.Price * float64(qty)
		resp.TicketCount += qty
	}
	return resp
}

// Validate checks a purchase against the event's current stock. Every
// ticket with a positive requested quantity must exist and have at least
// that much remaining; no clamping happens here. A zero or negative line
// is a valid no-op.
func Validate(event *models.Event, requested map[string]int) error {
	for ticketID, qty := range requested {
		if qty <= 0 {
			continue
		}
		ticket := event.Ticket(ticketID)
		if ticket == nil || qty > ticket.Quantity {
			return apperrors.ErrInsufficientInventory
		}
	}
	return nil
}

// Apply decrements stock for every positive requested line and returns
// the total cost and ticket count. The caller must have run Validate on
// the same snapshot first; InitialQuantity is never touched.
func Apply(event *models.Event, requested map[string]int) (totalCost float64, ticketCount int) {
	for i := range event.Tickets {
		ticket := &event.Tickets[i]
		qty := requested[ticket.ID]
		if qty <= 0 {
			continue
		}
		ticket.Quantity -= qty
		totalCost += ticket.Price * float64(qty)
		ticketCount += qty
	}
	return totalCost, ticketCount
}

func clamp(requested int, ticket *models.Ticket) int {
	qty := requested
	if qty > ticket.PurchaseLimit {
		qty = ticket.PurchaseLimit
	}
	if qty > ticket.Quantity {
		qty = ticket.Quantity
	}
	if qty < 0 {
		qty = 0
	}
	return qty
}
