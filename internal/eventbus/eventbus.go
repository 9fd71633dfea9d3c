package eventbus

import (
	"runtime/debug"
	"sync"

	"github.com/charmbracelet/log"

	"cinematch/internal/domain"
	"cinematch/internal/logger"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogRequested     = domain.EventCatalogRequested
	EventCatalogLoaded        = domain.EventCatalogLoaded
	EventRecommendRequested   = domain.EventRecommendRequested
	EventRecommendationsReady = domain.EventRecommendationsReady
	EventPostersProbed        = domain.EventPostersProbed
	EventContactSubmitted     = domain.EventContactSubmitted
	EventContactCompleted     = domain.EventContactCompleted
	EventError                = domain.EventError
	EventFallbackUsed         = domain.EventFallbackUsed
	EventConfigLoaded         = domain.EventConfigLoaded
	EventConfigSaved          = domain.EventConfigSaved
	EventAppReady             = domain.EventAppReady
)

// Re-export domain event types
type CatalogRequestedEvent = domain.CatalogRequestedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type RecommendRequestedEvent = domain.RecommendRequestedEvent
type RecommendationsReadyEvent = domain.RecommendationsReadyEvent
type PostersProbedEvent = domain.PostersProbedEvent
type ContactSubmittedEvent = domain.ContactSubmittedEvent
type ContactCompletedEvent = domain.ContactCompletedEvent
type ErrorEvent = domain.ErrorEvent
type FallbackUsedEvent = domain.FallbackUsedEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent
type AppReadyEvent = domain.AppReadyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       *log.Logger
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		log:       logger.New("eventbus"),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.log.Debug("publishing", "event", event.Type())

	select {
	case b.eventChan <- event:
	case <-b.quit:
	default:
		// Channel full, log and drop
		b.log.Warn("channel full, dropping event", "event", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and drops any queued events
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			// Copy the handlers so none run under the lock
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			// Handlers run in order on the dispatcher goroutine
			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event handler panic", "event", event.Type(), "panic", r, "stack", string(debug.Stack()))
		}
	}()
	h(event)
}
