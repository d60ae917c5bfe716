package models

import "time"

// NATS subjects
const (
	SubjectOrderCompleted = "orders.completed"
	SubjectEventCreated   = "events.created"
	SubjectEventDeleted   = "events.deleted"
)

// OrderCompletedEvent is published after a successful purchase. Routing
// fields are informational; the consumer logs the simulated payout.
type OrderCompletedEvent struct {
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	Reference   string    `json:"reference"`
	TotalCost   float64   `json:"total_cost"`
	TicketCount int       `json:"ticket_count"`
	RoutingCode string    `json:"routing_code"`
	Beneficiary string    `json:"beneficiary"`
	BuyerEmail  string    `json:"buyer_email"`
	Timestamp   time.Time `json:"timestamp"`
}

// EventLifecycleEvent is published on event create and delete
type EventLifecycleEvent struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	ActorID   string    `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}
