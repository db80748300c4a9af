package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDocumentLoaded  EventType = "DocumentLoaded"
	EventDocumentCreated EventType = "DocumentCreated"
	EventDocumentSaved   EventType = "DocumentSaved"
	EventError           EventType = "Error"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchNavigated EventType = "SearchNavigated"
	EventSearchCleared   EventType = "SearchCleared"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DocumentLoadedEvent is emitted when a file has been read into the buffer
type DocumentLoadedEvent struct {
	Path  string
	Lines int
}

func (e DocumentLoadedEvent) Type() EventType { return EventDocumentLoaded }

// DocumentCreatedEvent is emitted when the editor starts with a new buffer
type DocumentCreatedEvent struct {
	Path   string // empty for untitled buffers
	Reason string
}

func (e DocumentCreatedEvent) Type() EventType { return EventDocumentCreated }

// DocumentSavedEvent is emitted after the buffer has been written to disk
type DocumentSavedEvent struct {
	Path  string
	Bytes int
}

func (e DocumentSavedEvent) Type() EventType { return EventDocumentSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// SearchCompletedEvent is emitted when a query has been run against the buffer
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
	FirstMatch Coordinates // only meaningful when MatchCount > 0
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchNavigatedEvent is emitted when the current match changes
type SearchNavigatedEvent struct {
	From Coordinates
	To   Coordinates
}

func (e SearchNavigatedEvent) Type() EventType { return EventSearchNavigated }

// SearchClearedEvent is emitted when the match list is dropped
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
