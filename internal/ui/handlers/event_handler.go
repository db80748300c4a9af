package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"scribe/internal/eventbus"
	"scribe/internal/ui/state"
)

// EventHandler turns domain events forwarded from the bus into status messages
type EventHandler struct {
	state *state.AppState
	now   func() time.Time
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, now func() time.Time) *EventHandler {
	return &EventHandler{
		state: appState,
		now:   now,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			h.state.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err), h.now())
		} else {
			h.state.SetStatus(fmt.Sprintf("Error: %s", e.Message), h.now())
		}

	case eventbus.DocumentCreatedEvent:
		if e.Reason != "" {
			h.state.SetStatus(fmt.Sprintf("New file: %s", e.Reason), h.now())
		}

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(fmt.Sprintf("Config saved to %s", e.Path), h.now())
	}

	return nil
}
