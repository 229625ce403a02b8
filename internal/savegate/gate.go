// ABOUTME: Pre-append dedupe gate over the route history ledger
// ABOUTME: One logical recommendation saves at most once per day

package savegate

import (
	"fmt"
	"sync"

	"github.com/seyeon-q/soomgil/internal/history"
)

// Key identifies a logical save: same day, same title, same start address,
// same duration. DurationMin is rendered into the key so nil and zero differ.
type Key struct {
	Date         string
	Title        string
	StartAddress string
	DurationMin  string
}

// KeyFor computes the dedupe key for a stored record.
func KeyFor(r history.Record) Key {
	return Key{
		Date:         r.Date,
		Title:        r.Title,
		StartAddress: r.StartAddress,
		DurationMin:  durationKey(r.DurationMin),
	}
}

func durationKey(min *int) string {
	if min == nil {
		return "null"
	}
	return fmt.Sprintf("%d", *min)
}

// Status is the outcome of a save attempt.
type Status int

const (
	// Saved means the record was appended to the ledger.
	Saved Status = iota
	// AlreadySaved means an identical record exists for today; nothing was written.
	AlreadySaved
	// InFlight means another save for the same key is still running.
	InFlight
)

// Gate wraps the ledger with the dedupe pre-check and an in-flight guard.
// The ledger itself appends unconditionally; the gate is the only place that
// decides whether an append should happen at all.
type Gate struct {
	mu       sync.Mutex
	ledger   *history.Ledger
	saved    map[Key]bool
	inflight map[Key]bool
}

// New builds a gate seeded with the keys already present in the ledger.
func New(ledger *history.Ledger) *Gate {
	g := &Gate{
		ledger:   ledger,
		saved:    make(map[Key]bool),
		inflight: make(map[Key]bool),
	}
	for _, r := range ledger.All() {
		g.saved[KeyFor(r)] = true
	}
	return g
}

// Save appends the candidate unless an identical record was already saved
// today or a save for the same key is still in flight.
func (g *Gate) Save(c history.Candidate) (Status, error) {
	key := g.keyForCandidate(c)

	g.mu.Lock()
	if g.saved[key] {
		g.mu.Unlock()
		return AlreadySaved, nil
	}
	if g.inflight[key] {
		g.mu.Unlock()
		return InFlight, nil
	}
	g.inflight[key] = true
	g.mu.Unlock()

	err := g.ledger.Append(c)

	g.mu.Lock()
	delete(g.inflight, key)
	if err == nil {
		g.saved[key] = true
	}
	g.mu.Unlock()

	if err != nil {
		return Saved, fmt.Errorf("save walk: %w", err)
	}
	return Saved, nil
}

// keyForCandidate applies the ledger's normalization so the gate and the
// stored record agree on the key.
func (g *Gate) keyForCandidate(c history.Candidate) Key {
	addr := c.StartAddress
	if addr == "" {
		addr = history.UnspecifiedAddress
	}
	title := c.Title
	if title == "" {
		title = history.DefaultTitle
	}
	return Key{
		Date:         today(),
		Title:        title,
		StartAddress: addr,
		DurationMin:  durationKey(c.DurationMin),
	}
}
