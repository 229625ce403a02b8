// ABOUTME: Ordered newest-first ledger of saved walks in the session scope
// ABOUTME: Migrates a legacy durable-scope copy on first read

package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/seyeon-q/soomgil/internal/store"
)

// Key is the ledger's storage key in both scopes. The durable-scope entry is
// legacy: early versions stored the ledger durably, and a one-time migration
// moves it into the session scope.
const Key = "route_history_v1"

// Ledger reads and writes the saved-walk list. New records are prepended, so
// the stored order is always newest first.
//
// The ledger appends unconditionally; duplicate detection belongs to the
// save-gate, which checks before calling Append. Keep that split: callers
// rely on knowing "already saved" without touching storage.
type Ledger struct {
	session store.Store
	durable store.Store
	now     func() time.Time
}

// New returns a ledger over the two storage scopes.
func New(session, durable store.Store) *Ledger {
	return &Ledger{session: session, durable: durable, now: time.Now}
}

// All returns every saved record, newest first. It first migrates any legacy
// durable-scope ledger into the session scope. Absent or malformed content
// yields an empty list; storage trouble is logged, never propagated.
func (l *Ledger) All() []Record {
	l.migrateLegacy()

	raw, err := l.session.Get(Key)
	if err != nil {
		if err != store.ErrNotFound {
			log.Warn("history read failed", "err", err)
		}
		return []Record{}
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Warn("history unreadable, starting empty", "err", err)
		return []Record{}
	}
	return records
}

// Append normalizes the candidate, stamps today's date, prepends it and
// writes the whole list back. It does not deduplicate.
func (l *Ledger) Append(c Candidate) error {
	rec := normalize(c, l.now())

	list := append([]Record{rec}, l.All()...)
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.session.Set(Key, data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// Clear removes the ledger from both scopes. The durable-scope delete is
// cleanup for installs that predate the migration.
func (l *Ledger) Clear() error {
	if err := l.session.Delete(Key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := l.durable.Delete(Key); err != nil {
		return fmt.Errorf("clear legacy history: %w", err)
	}
	return nil
}

// migrateLegacy moves a legacy durable-scope ledger into the session scope,
// copying the raw value verbatim and deleting the durable copy. It is
// idempotent. If the session scope already holds a ledger the legacy copy is
// left alone rather than overwriting newer data.
func (l *Ledger) migrateLegacy() {
	legacy, err := l.durable.Get(Key)
	if err != nil {
		if err != store.ErrNotFound {
			log.Warn("legacy history check failed", "err", err)
		}
		return
	}

	if _, err := l.session.Get(Key); err == nil {
		return
	}

	if err := l.session.Set(Key, legacy); err != nil {
		log.Warn("legacy history migration failed", "err", err)
		return
	}
	if err := l.durable.Delete(Key); err != nil {
		log.Warn("legacy history cleanup failed", "err", err)
		return
	}
	log.Debug("migrated legacy history into session scope")
}

// TotalMinutes sums the recorded durations across all saved walks.
func TotalMinutes(records []Record) int {
	total := 0
	for _, r := range records {
		if r.DurationMin != nil {
			total += *r.DurationMin
		}
	}
	return total
}
