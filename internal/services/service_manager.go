package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ai-buddy/student-support-service/internal/events"
	"github.com/ai-buddy/student-support-service/internal/repositories"
	"github.com/ai-buddy/student-support-service/internal/snapshot"
)

// ServiceManagerConfig holds tunables for the service layer.
type ServiceManagerConfig struct {
	// LoginDelay simulates upstream auth latency on login.
	LoginDelay time.Duration
	// ChatSeed seeds the canned-response picker; zero derives from the
	// clock.
	ChatSeed int64
}

// ServiceManager wires and owns all service instances.
type ServiceManager interface {
	Session() SessionService
	Recommendation() RecommendationService
	Catalog() CatalogService
	Chat() ChatService
	Wellness() WellnessService
	Dashboard() DashboardService

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type serviceManager struct {
	repo   repositories.Repository
	logger *slog.Logger
	config ServiceManagerConfig

	sessionService        SessionService
	recommendationService RecommendationService
	catalogService        CatalogService
	chatService           ChatService
	wellnessService       WellnessService
	dashboardService      DashboardService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

func NewServiceManager(
	repo repositories.Repository,
	snapshots snapshot.Store,
	publisher events.EventPublisher,
	logger *slog.Logger,
	config ServiceManagerConfig,
) ServiceManager {
	recommendationService := NewRecommendationService(repo, logger)

	return &serviceManager{
		repo:                  repo,
		logger:                logger,
		config:                config,
		sessionService:        NewSessionService(repo.Directory(), snapshots, publisher, logger, config.LoginDelay),
		recommendationService: recommendationService,
		catalogService:        NewCatalogService(repo, logger),
		chatService:           NewChatService(logger, config.ChatSeed),
		wellnessService:       NewWellnessService(repo, logger),
		dashboardService:      NewDashboardService(repo, recommendationService, logger),
	}
}

// NewDefaultServiceManager uses production defaults (1s simulated login
// latency, clock-derived chat seed).
func NewDefaultServiceManager(
	repo repositories.Repository,
	snapshots snapshot.Store,
	publisher events.EventPublisher,
	logger *slog.Logger,
) ServiceManager {
	return NewServiceManager(repo, snapshots, publisher, logger, ServiceManagerConfig{
		LoginDelay: time.Second,
	})
}

func (m *serviceManager) Session() SessionService               { return m.sessionService }
func (m *serviceManager) Recommendation() RecommendationService { return m.recommendationService }
func (m *serviceManager) Catalog() CatalogService               { return m.catalogService }
func (m *serviceManager) Chat() ChatService                     { return m.chatService }
func (m *serviceManager) Wellness() WellnessService             { return m.wellnessService }
func (m *serviceManager) Dashboard() DashboardService           { return m.dashboardService }

// Initialize restores the persisted session before handlers serve traffic.
func (m *serviceManager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if m.shutdown {
		return fmt.Errorf("service manager already shut down")
	}

	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository ping: %w", err)
	}
	if err := m.sessionService.Initialize(ctx); err != nil {
		return fmt.Errorf("initialize session: %w", err)
	}

	m.initialized = true
	m.logger.Info("Services initialized")
	return nil
}

func (m *serviceManager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shutdown {
		return nil
	}
	m.shutdown = true
	m.logger.Info("Services shut down")
	return nil
}
