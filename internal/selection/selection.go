// ABOUTME: In-progress trip selection with automatic durable persistence
// ABOUTME: Restores on load, re-persists on every mutation, fails open

package selection

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/seyeon-q/soomgil/internal/models"
	"github.com/seyeon-q/soomgil/internal/store"
)

// Key is the durable-scope key holding the serialized selection.
const Key = "soomgil.selection"

// MinDuration is the shortest walk, in minutes, that can proceed.
const MinDuration = 5

// payload is the wire layout of the persisted selection.
type payload struct {
	StartLocation *models.LatLng `json:"startLocation"`
	Duration      *int           `json:"duration"`
	Address       string         `json:"address"`
}

// State holds the in-progress trip configuration. Every mutation writes the
// full triple back to the durable scope; write failures are logged and
// swallowed so the flow is never blocked by storage trouble.
type State struct {
	mu       sync.Mutex
	durable  store.Store
	location *models.LatLng
	address  string
	duration *int
}

// Load builds a State from whatever the durable scope holds. Absent or
// malformed content silently yields an empty selection.
func Load(durable store.Store) *State {
	s := &State{durable: durable}

	raw, err := durable.Get(Key)
	if err != nil {
		if err != store.ErrNotFound {
			log.Warn("selection restore failed", "err", err)
		}
		return s
	}

	var saved payload
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.Warn("selection restore failed", "err", err)
		return s
	}

	s.location = saved.StartLocation
	s.duration = saved.Duration
	s.address = saved.Address
	return s
}

// StartLocation returns the selected start coordinates, or nil.
func (s *State) StartLocation() *models.LatLng {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// Address returns the resolved human-readable address, empty when unset.
func (s *State) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// Duration returns the selected walk duration in minutes, or nil.
func (s *State) Duration() *int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.duration
}

// SetStartLocation stores the start coordinates. No validation here; gating
// happens only through CanProceed.
func (s *State) SetStartLocation(loc *models.LatLng) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = loc
	s.persistLocked()
}

// SetAddress stores the resolved address string.
func (s *State) SetAddress(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = addr
	s.persistLocked()
}

// SetDuration stores the walk duration in minutes.
func (s *State) SetDuration(min *int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duration = min
	s.persistLocked()
}

// CanProceed reports whether the selection is complete enough to request a
// route: a start location is set and the duration is at least MinDuration.
func (s *State) CanProceed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location != nil && s.duration != nil && *s.duration >= MinDuration
}

func (s *State) persistLocked() {
	data, err := json.Marshal(payload{
		StartLocation: s.location,
		Duration:      s.duration,
		Address:       s.address,
	})
	if err != nil {
		log.Warn("selection persist failed", "err", err)
		return
	}
	if err := s.durable.Set(Key, data); err != nil {
		log.Warn("selection persist failed", "err", err)
	}
}
