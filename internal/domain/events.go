package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSectionsChanged EventType = "SectionsChanged"
	EventTabSynced       EventType = "TabSynced"
	EventScrollRequested EventType = "ScrollRequested"
	EventScrollSettled   EventType = "ScrollSettled"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SectionsChangedEvent is emitted when the section sizes are replaced
type SectionsChangedEvent struct {
	Sizes []int
}

func (e SectionsChangedEvent) Type() EventType { return EventSectionsChanged }

// TabSyncedEvent is emitted when scrolling the list selected a different tab
type TabSyncedEvent struct {
	Section  int
	Position int // first completely visible item
	At       time.Time
}

func (e TabSyncedEvent) Type() EventType { return EventTabSynced }

// ScrollRequestedEvent is emitted when a tab selection starts a smooth scroll
type ScrollRequestedEvent struct {
	Seq     uint64
	Section int
	Target  int
	At      time.Time
}

func (e ScrollRequestedEvent) Type() EventType { return EventScrollRequested }

// ScrollSettledEvent is emitted when the list comes to rest after a
// tab-driven scroll. Seq matches the latest ScrollRequestedEvent.
type ScrollSettledEvent struct {
	Seq uint64
	At  time.Time
}

func (e ScrollSettledEvent) Type() EventType { return EventScrollSettled }

// ConfigLoadedEvent is emitted when configuration is loaded or reloaded
type ConfigLoadedEvent struct {
	Path     string
	Sections []Section
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
