package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogRequested     EventType = "CatalogRequested"
	EventCatalogLoaded        EventType = "CatalogLoaded"
	EventRecommendRequested   EventType = "RecommendRequested"
	EventRecommendationsReady EventType = "RecommendationsReady"
	EventPostersProbed        EventType = "PostersProbed"
	EventContactSubmitted     EventType = "ContactSubmitted"
	EventContactCompleted     EventType = "ContactCompleted"
	EventError                EventType = "Error"
	EventConfigLoaded         EventType = "ConfigLoaded"
	EventConfigSaved          EventType = "ConfigSaved"
	EventFallbackUsed         EventType = "FallbackUsed"
	EventAppReady             EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogRequestedEvent is emitted when the title catalog fetch starts
type CatalogRequestedEvent struct {
	Generation uint64
}

func (e CatalogRequestedEvent) Type() EventType { return EventCatalogRequested }

// CatalogLoadedEvent is emitted once a catalog is available, remote or fallback
type CatalogLoadedEvent struct {
	Generation uint64
	Titles     []string
	Source     CatalogSource
	Cause      error // why the fallback was used, nil for remote
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// RecommendRequestedEvent is emitted when a recommendation request starts
type RecommendRequestedEvent struct {
	Generation uint64
	Movie      string
}

func (e RecommendRequestedEvent) Type() EventType { return EventRecommendRequested }

// RecommendationsReadyEvent carries the cards to display for a request
type RecommendationsReadyEvent struct {
	Generation      uint64
	Movie           string
	Recommendations []Recommendation
	Fallback        bool
	Cause           error
}

func (e RecommendationsReadyEvent) Type() EventType { return EventRecommendationsReady }

// PostersProbedEvent reports which posters failed to load for a card set
type PostersProbedEvent struct {
	Generation uint64
	Failed     []int // card indexes whose poster is unavailable
}

func (e PostersProbedEvent) Type() EventType { return EventPostersProbed }

// ContactSubmittedEvent is emitted when the contact form is sent
type ContactSubmittedEvent struct {
	Message ContactMessage
}

func (e ContactSubmittedEvent) Type() EventType { return EventContactSubmitted }

// ContactCompletedEvent reports the outcome of a contact submission
type ContactCompletedEvent struct {
	Success bool
	Error   string // user-facing message when Success is false
}

func (e ContactCompletedEvent) Type() EventType { return EventContactCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// FallbackUsedEvent is emitted whenever sample data replaces a backend response
type FallbackUsedEvent struct {
	Endpoint string
	Cause    error
}

func (e FallbackUsedEvent) Type() EventType { return EventFallbackUsed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	BackendURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the UI program is about to start
type AppReadyEvent struct{}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
