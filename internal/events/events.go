// Package events carries session lifecycle events over an in-process pub/sub
// so dependent components (logging, future cache invalidation) react to
// session changes without holding a reference to the store.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/ai-buddy/student-support-service/internal/models"
)

const TopicSessionEvents = "session.events"

type EventType string

const (
	SessionCreated  EventType = "session.created"
	SessionEnded    EventType = "session.ended"
	PremiumUpgraded EventType = "session.premium_upgraded"
)

type SessionEvent struct {
	Type       EventType       `json:"type"`
	AccountID  string          `json:"account_id"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventPublisher interface {
	PublishSessionEvent(ctx context.Context, event SessionEvent) error
	Close() error
}

// GoChannelBus is a watermill gochannel pub/sub. The execution model is a
// single process, so no external broker is involved.
type GoChannelBus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

func NewGoChannelBus(logger *slog.Logger) *GoChannelBus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
	return &GoChannelBus{pubsub: pubsub, logger: logger}
}

func (b *GoChannelBus) PublishSessionEvent(ctx context.Context, event SessionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal session event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := b.pubsub.Publish(TopicSessionEvents, msg); err != nil {
		return fmt.Errorf("publish session event: %w", err)
	}
	return nil
}

// Subscribe returns the session event stream. Callers must Ack every message.
func (b *GoChannelBus) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, TopicSessionEvents)
}

func (b *GoChannelBus) Close() error {
	return b.pubsub.Close()
}

// RunEventLogger drains the session event stream and logs each event. It
// returns when ctx is cancelled or the channel closes.
func RunEventLogger(ctx context.Context, bus *GoChannelBus, logger *slog.Logger) error {
	messages, err := bus.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe session events: %w", err)
	}

	go func() {
		for msg := range messages {
			var event SessionEvent
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				logger.Error("Malformed session event", "error", err)
				msg.Ack()
				continue
			}
			logger.Info("Session event",
				"type", event.Type,
				"account_id", event.AccountID,
				"role", event.Role)
			msg.Ack()
		}
	}()

	return nil
}

// MockEventPublisher records events for tests.
type MockEventPublisher struct {
	mu     sync.Mutex
	events []SessionEvent
	logger *slog.Logger
}

func NewMockEventPublisher(logger *slog.Logger) *MockEventPublisher {
	return &MockEventPublisher{logger: logger}
}

func (m *MockEventPublisher) PublishSessionEvent(ctx context.Context, event SessionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockEventPublisher) Events() []SessionEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SessionEvent(nil), m.events...)
}

func (m *MockEventPublisher) Close() error { return nil }
