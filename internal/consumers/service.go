// Package consumers hosts the order-feed worker. It tails the completed
// orders subject and writes the simulated payout notice, which is the
// whole of "payment processing" in this system.
package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/stan.go"

	"lerida/internal/config"
	"lerida/internal/messaging"
	"lerida/internal/models"
)

type ConsumerService struct {
	natsClient *messaging.NATSClient
	subs       []stan.Subscription
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &ConsumerService{natsClient: natsClient}, nil
}

// Start subscribes to the order feed with a durable queue subscription
func (s *ConsumerService) Start() error {
	sub, err := s.natsClient.SubscribeQueue(models.SubjectOrderCompleted, "payout-notices", s.handleOrderCompleted)
	if err != nil {
		return err
	}
	s.subs = append(s.subs, sub)
	return nil
}

func (s *ConsumerService) handleOrderCompleted(msg *stan.Msg) {
	var order models.OrderCompletedEvent
	if err := json.Unmarshal(msg.Data, &order); err != nil {
		slog.Error("Failed to decode order message", "error", err)
		return
	}

	slog.Info("Payout notice",
		"reference", order.Reference,
		"event_id", order.EventID,
		"event_title", order.EventTitle,
		"total_cost", order.TotalCost,
		"ticket_count", order.TicketCount,
		"routing_code", order.RoutingCode,
		"beneficiary", order.Beneficiary)
}

func (s *ConsumerService) Shutdown(_ context.Context) error {
	for _, sub := range s.subs {
		if err := sub.Close(); err != nil {
			slog.Warn("Failed to close subscription", "error", err)
		}
	}
	return s.natsClient.Close()
}
