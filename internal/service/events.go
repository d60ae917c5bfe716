package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "lerida/internal/errors"
	"lerida/internal/messaging"
	"lerida/internal/models"
	"lerida/internal/repository"
	"lerida/internal/search"
)

type EventService struct {
	eventRepo  *repository.EventRepository
	brandRepo  *repository.BrandRepository
	natsClient *messaging.NATSClient
	esClient   *search.ElasticsearchClient
}

func NewEventService(eventRepo *repository.EventRepository, brandRepo *repository.BrandRepository, natsClient *messaging.NATSClient, esClient *search.ElasticsearchClient) *EventService {
	return &EventService{
		eventRepo:  eventRepo,
		brandRepo:  brandRepo,
		natsClient: natsClient,
		esClient:   esClient,
	}
}

// Create makes an event for the caller, or for a brand the caller
// administers. The shareable link is derived from the id here and never
// changes afterwards.
func (s *EventService) Create(ctx context.Context, userID string, req *models.EventPayload) (*models.Event, error) {
	if req.BrandID != "" {
		brand, err := s.brandRepo.GetByID(ctx, req.BrandID)
		if err != nil {
			return nil, err
		}
		if brand == nil || !brand.IsAdmin(userID) {
			return nil, apperrors.ErrForbidden
		}
	}

	eventID := "evt_" + uuid.New().String()
	event := &models.Event{
		ID:              eventID,
		CreatedBy:       userID,
		BrandID:         req.BrandID,
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		ExpirationTime:  req.ExpirationTime,
		Location:        req.Location,
		ShareableLink:   "/ticket/" + eventID,
		Tickets:         buildTickets(req.Tickets),
		ImageURL:        req.ImageURL,
		Hashtags:        req.Hashtags,
		RedirectURL:     req.RedirectURL,
		Tags:            req.Tags,
		CollectPhone:    req.CollectPhone,
		CustomQuestions: req.CustomQuestions,
		Rewards:         req.Rewards,
	}

	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, err
	}

	s.index(ctx, event)
	s.publishLifecycle(models.SubjectEventCreated, event, userID)
	return event, nil
}

// Get resolves an event by id. This backs the shareable link, so it is
// public and needs no session.
func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}
	return event, nil
}

// ListMine returns events the caller created plus events of brands the
// caller administers.
func (s *EventService) ListMine(ctx context.Context, userID string) ([]models.Event, error) {
	events, err := s.eventRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.brandRepo.ListByAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}

	adminOf := map[string]bool{}
	for _, brand := range brands {
		adminOf[brand.ID] = true
	}

	result := []models.Event{}
	for _, event := range events {
		if event.CreatedBy == userID || (event.BrandID != "" && adminOf[event.BrandID]) {
			result = append(result, event)
		}
	}
	return result, nil
}

// Update replaces every editable field while preserving id, creator and
// shareable link. Submitting a ticket tier resets its InitialQuantity
// to the submitted quantity: editing stock is restocking, not a delta.
func (s *EventService) Update(ctx context.Context, userID, id string, req *models.EventPayload) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.ErrNotFound
	}
	if ok, err := s.canManage(ctx, event, userID); err != nil {
		return nil, err
	} else if !ok {
		return nil, apperrors.ErrForbidden
	}

	event.BrandID = req.BrandID
	event.Title = req.Title
	event.Description = req.Description
	event.Date = req.Date
	event.Time = req.Time
	event.ExpirationTime = req.ExpirationTime
	event.Location = req.Location
	event.Tickets = buildTickets(req.Tickets)
	event.ImageURL = req.ImageURL
	event.Hashtags = req.Hashtags
	event.RedirectURL = req.RedirectURL
	event.Tags = req.Tags
	event.CollectPhone = req.CollectPhone
	event.CustomQuestions = req.CustomQuestions
	event.Rewards = req.Rewards

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.index(ctx, event)
	return event, nil
}

// Delete removes an event. Only the creator or a brand admin may do it.
func (s *EventService) Delete(ctx context.Context, userID, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperrors.ErrNotFound
	}
	if ok, err := s.canManage(ctx, event, userID); err != nil {
		return err
	} else if !ok {
		return apperrors.ErrForbidden
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	if s.esClient != nil {
		if err := s.esClient.DeleteEvent(ctx, id); err != nil {
			slog.Warn("Failed to remove event from search index", "event_id", id, "error", err)
		}
	}
	s.publishLifecycle(models.SubjectEventDeleted, event, userID)
	return nil
}

// Search queries the optional search index. With search disabled it
// returns an empty result.
func (s *EventService) Search(ctx context.Context, query string, size int) ([]models.EventSearchItem, error) {
	if s.esClient == nil {
		return []models.EventSearchItem{}, nil
	}
	return s.esClient.Search(ctx, query, size)
}

// canManage reports whether the user is the event's creator or an admin
// of its owning brand.
func (s *EventService) canManage(ctx context.Context, event *models.Event, userID string) (bool, error) {
	if event.CreatedBy == userID {
		return true, nil
	}
	if event.BrandID == "" {
		return false, nil
	}
	brand, err := s.brandRepo.GetByID(ctx, event.BrandID)
	if err != nil {
		return false, err
	}
	return brand != nil && brand.IsAdmin(userID), nil
}

// buildTickets turns submitted tiers into stored tickets. Ids are kept
// when present; InitialQuantity always snapshots the submitted quantity.
func buildTickets(inputs []models.TicketInput) []models.Ticket {
	tickets := make([]models.Ticket, len(inputs))
	for i, in := range inputs {
		id := in.ID
		if id == "" {
			id = "t_" + uuid.New().String()
		}
		tickets[i] = models.Ticket{
			ID:              id,
			Name:            in.Name,
			Price:           in.Price,
			InitialQuantity: in.Quantity,
			Quantity:        in.Quantity,
			PurchaseLimit:   in.PurchaseLimit,
		}
	}
	return tickets
}

func (s *EventService) index(ctx context.Context, event *models.Event) {
	if s.esClient == nil {
		return
	}
	if err := s.esClient.IndexEvent(ctx, event); err != nil {
		slog.Warn("Failed to index event", "event_id", event.ID, "error", err)
	}
}

func (s *EventService) publishLifecycle(subject string, event *models.Event, actorID string) {
	payload := models.EventLifecycleEvent{
		EventID:   event.ID,
		Title:     event.Title,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.natsClient.Publish(subject, payload); err != nil {
		slog.Warn("Failed to publish event lifecycle message", "subject", subject, "error", err)
	}
}
