package ui

import (
	"scribe/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// statusExpiredMsg is sent once a status message has been shown long enough
type statusExpiredMsg struct{}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}
