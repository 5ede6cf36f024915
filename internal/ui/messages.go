package ui

import (
	"time"

	"tabsync/internal/config"
	"tabsync/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// ConfigReloadedMsg carries a configuration re-read from disk
type ConfigReloadedMsg struct {
	Config *config.Config
}

// frameMsg advances a running smooth scroll by one frame
type frameMsg time.Time

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
