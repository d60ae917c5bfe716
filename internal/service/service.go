package service

import (
	"lerida/internal/messaging"
	"lerida/internal/repository"
	"lerida/internal/search"
)

type Services struct {
	Identity *IdentityService
	Brands   *BrandService
	Events   *EventService
	Checkout *CheckoutService
}

// NewServices wires the service layer. natsClient and esClient may be
// nil; messaging and search are optional.
func NewServices(repos *repository.Repositories, natsClient *messaging.NATSClient, esClient *search.ElasticsearchClient) *Services {
	return &Services{
		Identity: NewIdentityService(repos.Users, repos.Session),
		Brands:   NewBrandService(repos.Brands, repos.Users),
		Events:   NewEventService(repos.Events, repos.Brands, natsClient, esClient),
		Checkout: NewCheckoutService(repos.Events, repos.Brands, repos.Users, natsClient),
	}
}
