// ABOUTME: Saved walk record and its normalization defaults
// ABOUTME: Wire layout matches the route_history_v1 storage format

package history

import "time"

// Sentinel values applied when a candidate omits a field. They are stored
// as-is, so they must stay byte-identical across versions.
const (
	UnspecifiedAddress = "미지정"
	DefaultTitle       = "경로"
)

// Record is one saved walk, as stored in the ledger.
type Record struct {
	// Date is the calendar day the record was saved, YYYY-MM-DD (UTC).
	Date string `json:"date"`
	// StartAddress is the resolved start address, UnspecifiedAddress when unknown.
	StartAddress string `json:"startAddress"`
	// DurationMin is the walk duration in minutes, nil when unknown.
	DurationMin *int `json:"durationMin"`
	// Title names the route.
	Title string `json:"title"`
	// Summary is a truncated description, possibly empty.
	Summary string `json:"summary"`
}

// Candidate is an unsaved record; zero-value fields get defaults on append.
type Candidate struct {
	StartAddress string
	DurationMin  *int
	Title        string
	Summary      string
}

// normalize turns a candidate into a storable record, stamping today's date.
func normalize(c Candidate, now time.Time) Record {
	r := Record{
		Date:         now.UTC().Format("2006-01-02"),
		StartAddress: c.StartAddress,
		DurationMin:  c.DurationMin,
		Title:        c.Title,
		Summary:      c.Summary,
	}
	if r.StartAddress == "" {
		r.StartAddress = UnspecifiedAddress
	}
	if r.Title == "" {
		r.Title = DefaultTitle
	}
	return r
}
