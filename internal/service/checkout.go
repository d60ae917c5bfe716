package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "lerida/internal/errors"
	"lerida/internal/inventory"
	"lerida/internal/messaging"
	"lerida/internal/models"
	"lerida/internal/payout"
	"lerida/internal/repository"
)

var (
	ticketsSold = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lerida_tickets_sold_total",
		Help: "Total number of tickets sold across all events.",
	})
	purchasesFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lerida_purchases_failed_total",
		Help: "Failed purchase attempts by reason.",
	}, []string{"reason"})
)

// CheckoutService runs the authoritative purchase path. Quote is the
// forgiving preview; Purchase revalidates everything against the stored
// snapshot and commits by rewriting the event collection.
type CheckoutService struct {
	eventRepo  *repository.EventRepository
	brandRepo  *repository.BrandRepository
	userRepo   *repository.UserRepository
	natsClient *messaging.NATSClient
}

func NewCheckoutService(eventRepo *repository.EventRepository, brandRepo *repository.BrandRepository, userRepo *repository.UserRepository, natsClient *messaging.NATSClient) *CheckoutService {
	return &CheckoutService{
		eventRepo:  eventRepo,
		brandRepo:  brandRepo,
		userRepo:   userRepo,
		natsClient: natsClient,
	}
}

// Quote prices the requested quantities against the current snapshot,
// clamping per line. Identical inputs on an unchanged event give
// identical output.
func (s *CheckoutService) Quote(ctx context.Context, eventID string, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}

	resp := inventory.Quote(event, req.Quantities)
	return &resp, nil
}

// Purchase validates the buyer and the inventory, decrements stock and
// persists the whole event collection. Any line that cannot be filled
// fails the whole order; a refused persistence write rolls the purchase
// back entirely. The payout route is derived for the log and the order
// feed only and never gates success.
func (s *CheckoutService) Purchase(ctx context.Context, eventID string, req *models.PurchaseRequest) (*models.PurchaseResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}

	if err := validateBuyer(event, req); err != nil {
		purchasesFailed.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := inventory.Validate(event, req.Quantities); err != nil {
		purchasesFailed.WithLabelValues("inventory").Inc()
		return nil, err
	}

	totalCost, ticketCount := inventory.Apply(event, req.Quantities)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		purchasesFailed.WithLabelValues("storage").Inc()
		return nil, err
	}

	routingCode, beneficiary := s.route(ctx, event)
	reference := fmt.Sprintf("LER-%d", time.Now().UnixMilli())

	slog.Info("Payment simulation: processing order",
		"event_id", event.ID, "event_title", event.Title,
		"reference", reference, "total_cost", totalCost,
		"ticket_count", ticketCount)
	slog.Info("Payment simulation: routing proceeds",
		"reference", reference, "routing_code", routingCode,
		"beneficiary", beneficiary)

	ticketsSold.Add(float64(ticketCount))

	order := models.OrderCompletedEvent{
		EventID:     event.ID,
		EventTitle:  event.Title,
		Reference:   reference,
		TotalCost:   totalCost,
		TicketCount: ticketCount,
		RoutingCode: routingCode,
		Beneficiary: beneficiary,
		BuyerEmail:  req.Email,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.natsClient.Publish(models.SubjectOrderCompleted, order); err != nil {
		slog.Warn("Failed to publish order", "reference", reference, "error", err)
	}

	return &models.PurchaseResponse{
		Reference:   reference,
		TotalCost:   totalCost,
		TicketCount: ticketCount,
		RedirectURL: event.RedirectURL,
	}, nil
}

// validateBuyer enforces the checkout-flow requirements that sit in
// front of the engine: contact fields and required custom questions.
func validateBuyer(event *models.Event, req *models.PurchaseRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: buyer name and email are required", apperrors.ErrValidation)
	}
	if event.CollectPhone && strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone number is required", apperrors.ErrValidation)
	}
	for _, q := range event.CustomQuestions {
		if q.Required && strings.TrimSpace(req.Answers[q.ID]) == "" {
			return fmt.Errorf("%w: question %q must be answered", apperrors.ErrValidation, q.Question)
		}
	}
	return nil
}

func (s *CheckoutService) route(ctx context.Context, event *models.Event) (string, string) {
	brandByID := func(id string) *models.Brand {
		brand, err := s.brandRepo.GetByID(ctx, id)
		if err != nil {
			slog.Warn("Failed to load brand for payout routing", "brand_id", id, "error", err)
			return nil
		}
		return brand
	}
	userByID := func(id string) *models.User {
		user, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			slog.Warn("Failed to load user for payout routing", "user_id", id, "error", err)
			return nil
		}
		return user
	}
	return payout.Route(event, brandByID, userByID)
}
