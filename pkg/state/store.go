package state

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/mklimuk/expedition-pilot/pkg/db"
)

// Storage slot names. The completion blob keeps the key the original
// dashboard used so an exported blob stays recognizable.
const (
	slotTasks = "geto-mission-tasks"
	slotTheme = "geto-theme"
	slotHero  = "geto-hero-image"
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Completion maps task ids to their done flag. Keys are present only for
// tasks that are currently completed; absence means not completed.
type Completion map[string]bool

// Store owns the mutable dashboard state and its persistence. All mutations
// go through one update path guarded by the mutex, so concurrent toggles
// fold the latest state instead of clobbering each other.
type Store struct {
	repo *db.Repository

	mu    sync.Mutex
	tasks Completion
}

// NewStore creates a Store over the given repository with empty state.
// Call Load to pick up previously persisted content.
func NewStore(repo *db.Repository) *Store {
	return &Store{
		repo:  repo,
		tasks: Completion{},
	}
}

// Load initializes the completion state from the persisted blob. A missing
// or malformed blob fails soft to an empty mapping; nothing is surfaced past
// this boundary.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = Completion{}

	raw, ok, err := s.repo.Get(slotTasks)
	if err != nil {
		log.Printf("completion state load failed, starting empty: %v", err)
		return
	}
	if !ok {
		return
	}

	var parsed Completion
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("completion state blob malformed, starting empty: %v", err)
		return
	}
	for id, done := range parsed {
		if done {
			s.tasks[id] = true
		}
	}
}

// Toggle flips the completion flag for id (absent counts as false, so the
// first toggle marks the task done) and persists the whole mapping. Flipping
// back to false removes the key, which makes a double toggle restore the
// exact previous mapping. The new flag is returned; a persistence failure is
// reported but the in-memory flip still holds.
func (s *Store) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := !s.tasks[id]
	if done {
		s.tasks[id] = true
	} else {
		delete(s.tasks, id)
	}

	if err := s.save(); err != nil {
		return done, fmt.Errorf("persist completion state: %w", err)
	}
	return done, nil
}

// save serializes the full mapping and writes it under the tasks slot.
// Caller must hold the mutex. Every toggle incurs one full write.
func (s *Store) save() error {
	raw, err := json.Marshal(s.tasks)
	if err != nil {
		return err
	}
	return s.repo.Put(slotTasks, string(raw))
}

// Completed returns a copy of the current completion mapping.
func (s *Store) Completed() Completion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Completion, len(s.tasks))
	for id, done := range s.tasks {
		out[id] = done
	}
	return out
}

// Theme returns the persisted theme preference, defaulting to dark.
func (s *Store) Theme() string {
	value, ok, err := s.repo.Get(slotTheme)
	if err != nil {
		log.Printf("theme read failed: %v", err)
		return ThemeDark
	}
	if !ok || (value != ThemeDark && value != ThemeLight) {
		return ThemeDark
	}
	return value
}

// SetTheme persists the theme preference. Only the closed set of theme names
// is accepted.
func (s *Store) SetTheme(value string) error {
	if value != ThemeDark && value != ThemeLight {
		return fmt.Errorf("unknown theme %q", value)
	}
	return s.repo.Put(slotTheme, value)
}

// HeroImage returns the cached hero image data URI, if one was generated.
func (s *Store) HeroImage() (string, bool) {
	value, ok, err := s.repo.Get(slotHero)
	if err != nil {
		log.Printf("hero image read failed: %v", err)
		return "", false
	}
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// SetHeroImage caches the generated hero image so it is not regenerated on
// every load.
func (s *Store) SetHeroImage(dataURI string) error {
	return s.repo.Put(slotHero, dataURI)
}
