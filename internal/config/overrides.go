package config

import "sync"

// Overrides holds settings given on the command line. They win over the
// file until the user saves settings from the UI, which makes the file
// authoritative again.
type Overrides struct {
	mu          sync.Mutex
	orientation string
	layout      string
}

// NewOverrides records the non-empty settings to enforce
func NewOverrides(orientation, layout string) *Overrides {
	return &Overrides{orientation: orientation, layout: layout}
}

// Apply writes the overrides into cfg
func (o *Overrides) Apply(cfg *Config) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.orientation != "" {
		cfg.Orientation = o.orientation
	}
	if o.layout != "" {
		cfg.Layout = o.layout
	}
}

// Clear drops all overrides
func (o *Overrides) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.orientation = ""
	o.layout = ""
}
