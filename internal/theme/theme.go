// Package theme persists the light/dark preference with the same key/value
// contract as the comparison selection.
package theme

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tayloree/phonecmp/internal/storage"
)

// Key is the storage key holding the theme.
const Key = "phone-comparison-theme"

// Mode is a color theme.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Parse resolves a theme name.
func Parse(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (use light or dark)", raw)
	}
}

// Preference is the persisted theme.
type Preference struct {
	mode   Mode
	store  storage.Store
	logger *log.Logger
}

// Load restores the stored theme, falling back to def when nothing valid is stored.
func Load(store storage.Store, def Mode, logger *log.Logger) *Preference {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if _, err := Parse(string(def)); err != nil {
		def = Light
	}
	p := &Preference{mode: def, store: store, logger: logger}
	if store == nil {
		p.store = storage.NewMemory()
		return p
	}

	raw, ok, err := store.Get(Key)
	switch {
	case err != nil:
		logger.Warn("reading saved theme failed; using default", "default", def, "err", err)
	case ok:
		if m, perr := Parse(raw); perr == nil {
			p.mode = m
		} else {
			logger.Warn("saved theme is invalid; using default", "value", raw, "default", def)
		}
	}
	return p
}

// Mode returns the current theme.
func (p *Preference) Mode() Mode { return p.mode }

// Set changes and persists the theme.
func (p *Preference) Set(m Mode) {
	p.mode = m
	if err := p.store.Set(Key, string(m)); err != nil {
		p.logger.Warn("saving theme failed", "err", err)
	}
}

// Toggle flips between light and dark and returns the new theme.
func (p *Preference) Toggle() Mode {
	if p.mode == Dark {
		p.Set(Light)
	} else {
		p.Set(Dark)
	}
	return p.mode
}
