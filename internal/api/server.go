package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lerida/internal/config"
	"lerida/internal/handlers"
	"lerida/internal/messaging"
	"lerida/internal/middleware"
	"lerida/internal/repository"
	"lerida/internal/search"
	"lerida/internal/service"
	"lerida/internal/storage"
)

// Server wires storage, repositories, services and routes
type Server struct {
	router   *gin.Engine
	config   *config.Config
	store    storage.Store
	nats     *messaging.NATSClient
	services *service.Services
}

// NewServer builds a fully wired server. NATS and Elasticsearch are
// attached only when enabled; everything else works without them.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage backend: %v", err)
	}

	var natsClient *messaging.NATSClient
	if cfg.NATSEnabled {
		natsClient, err = messaging.NewNATSClient(cfg.NATS)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
	}

	var esClient *search.ElasticsearchClient
	if cfg.SearchEnabled {
		esClient, err = search.NewElasticsearchClient(cfg.Elasticsearch)
		if err != nil {
			log.Fatalf("Failed to connect to Elasticsearch: %v", err)
		}
	}

	repos := repository.NewRepositories(store)
	services := service.NewServices(repos, natsClient, esClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		store:    store,
		nats:     natsClient,
		services: services,
	}

	server.setupRoutes()
	return server
}

func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		return storage.NewPostgresStore(cfg.Postgres)
	case config.BackendValkey:
		return storage.NewValkeyStore(cfg.Valkey)
	default:
		return storage.NewMemoryStore(cfg.QuotaBytes), nil
	}
}

func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services)

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public checkout flow behind the shareable link
	ticket := s.router.Group("/ticket")
	{
		ticket.GET("/:id", h.TicketPage)
		ticket.POST("/:id/quote", h.QuoteOrder)
		ticket.POST("/:id/purchase", h.PurchaseTickets)
	}

	api := s.router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
		}

		// Everything else requires the session
		authed := api.Group("")
		authed.Use(middleware.SessionAuth(s.services.Identity))
		{
			authed.GET("/profile", h.Profile)
			authed.PUT("/profile", h.UpdateProfile)

			brands := authed.Group("/brands")
			{
				brands.POST("", h.CreateBrand)
				brands.GET("", h.ListBrands)
				brands.PATCH("/:id/bank", h.UpdateBrandBank)
				brands.POST("/:id/admins", h.AddBrandAdmin)
			}

			events := authed.Group("/events")
			{
				events.POST("", h.CreateEvent)
				events.GET("", h.ListEvents)
				events.GET("/search", h.SearchEvents)
				events.GET("/:id", h.GetEvent)
				events.PUT("/:id", h.UpdateEvent)
				events.DELETE("/:id", h.DeleteEvent)
			}
		}
	}
}

// GetRouter returns the configured router
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes external connections
func (s *Server) Cleanup() error {
	if err := s.nats.Close(); err != nil {
		return err
	}
	return s.store.Close()
}
