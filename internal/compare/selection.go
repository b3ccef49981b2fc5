package compare

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tayloree/phonecmp/internal/storage"
)

const (
	// MaxSelected is the most phones that can be compared at once.
	MaxSelected = 3
	// MinCompare is the fewest selected phones for which a comparison exists.
	MinCompare = 2

	// SelectionKey is the storage key holding the persisted selection.
	SelectionKey = "phone-comparison-selected"
)

// Selection is the ordered, bounded set of phone ids chosen for comparison.
// Every mutation is written through to the backing store.
type Selection struct {
	ids    []string
	set    map[string]struct{}
	store  storage.Store
	key    string
	known  func(string) bool
	logger *log.Logger
}

// SelectionOption customizes a Selection at construction.
type SelectionOption func(*Selection)

// WithLogger routes persistence warnings to l.
func WithLogger(l *log.Logger) SelectionOption {
	return func(s *Selection) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKnownIDs drops restored ids for which known returns false.
func WithKnownIDs(known func(string) bool) SelectionOption {
	return func(s *Selection) { s.known = known }
}

// NewSelection restores the selection from store. A missing, unreadable or
// malformed value yields an empty selection. A nil store keeps state in memory.
func NewSelection(store storage.Store, opts ...SelectionOption) *Selection {
	if store == nil {
		store = storage.NewMemory()
	}
	s := &Selection{
		ids:    []string{},
		set:    make(map[string]struct{}, MaxSelected),
		store:  store,
		key:    SelectionKey,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.restore()
	return s
}

func (s *Selection) restore() {
	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.logger.Warn("reading saved selection failed; starting empty", "key", s.key, "err", err)
		return
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return
	}

	var saved []string
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		s.logger.Warn("saved selection is malformed; starting empty", "key", s.key, "err", err)
		return
	}

	for _, id := range saved {
		if len(s.ids) == MaxSelected {
			s.logger.Debug("saved selection exceeds limit; truncating", "max", MaxSelected)
			break
		}
		if id == "" || s.IsSelected(id) {
			continue
		}
		if s.known != nil && !s.known(id) {
			s.logger.Debug("dropping unknown id from saved selection", "id", id)
			continue
		}
		s.add(id)
	}
}

func (s *Selection) persist() {
	data, err := json.Marshal(s.ids)
	if err != nil {
		s.logger.Warn("encoding selection failed", "err", err)
		return
	}
	if err := s.store.Set(s.key, string(data)); err != nil {
		s.logger.Warn("saving selection failed", "key", s.key, "err", err)
	}
}

func (s *Selection) add(id string) {
	s.ids = append(s.ids, id)
	s.set[id] = struct{}{}
}

func (s *Selection) drop(id string) {
	delete(s.set, id)
	out := s.ids[:0]
	for _, existing := range s.ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	s.ids = out
}

// Toggle removes id when selected, otherwise appends it if there is room.
// It reports whether the selection changed; a full selection ignores new ids.
func (s *Selection) Toggle(id string) bool {
	if s.IsSelected(id) {
		s.drop(id)
		s.persist()
		return true
	}
	if !s.CanAddMore() {
		return false
	}
	s.add(id)
	s.persist()
	return true
}

// Remove deselects id. Removing an id that is not selected does nothing.
func (s *Selection) Remove(id string) bool {
	if !s.IsSelected(id) {
		return false
	}
	s.drop(id)
	s.persist()
	return true
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = []string{}
	s.set = make(map[string]struct{}, MaxSelected)
	s.persist()
}

// IsSelected reports whether id is in the selection.
func (s *Selection) IsSelected(id string) bool {
	_, ok := s.set[id]
	return ok
}

// IDs returns the selected ids, oldest first.
func (s *Selection) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the number of selected ids.
func (s *Selection) Len() int { return len(s.ids) }

// CanAddMore reports whether another id fits.
func (s *Selection) CanAddMore() bool { return len(s.ids) < MaxSelected }

// CanCompare reports whether enough ids are selected for a comparison.
func (s *Selection) CanCompare() bool { return len(s.ids) >= MinCompare }
