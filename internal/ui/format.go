// ABOUTME: Terminal formatting for selections, walks and history records
// ABOUTME: Human-readable output built on fatih/color

package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/seyeon-q/soomgil/internal/history"
	"github.com/seyeon-q/soomgil/internal/models"
	"github.com/seyeon-q/soomgil/internal/selection"
)

// FormatSelection renders the current trip selection.
func FormatSelection(s *selection.State) string {
	var b strings.Builder

	loc := s.StartLocation()
	if loc != nil {
		fmt.Fprintf(&b, "start:    %s\n", color.CyanString("(%.4f, %.4f)", loc.Lat, loc.Lng))
	} else {
		fmt.Fprintf(&b, "start:    %s\n", color.New(color.Faint).Sprint("not set"))
	}

	if addr := s.Address(); addr != "" {
		fmt.Fprintf(&b, "address:  %s\n", addr)
	} else {
		fmt.Fprintf(&b, "address:  %s\n", color.New(color.Faint).Sprint("not set"))
	}

	if d := s.Duration(); d != nil {
		fmt.Fprintf(&b, "duration: %s\n", FormatMinutes(*d))
	} else {
		fmt.Fprintf(&b, "duration: %s\n", color.New(color.Faint).Sprint("not set"))
	}

	if s.CanProceed() {
		fmt.Fprintf(&b, "ready:    %s", color.GreenString("yes"))
	} else {
		fmt.Fprintf(&b, "ready:    %s (need a start location and at least %d minutes)",
			color.YellowString("no"), selection.MinDuration)
	}
	return b.String()
}

// FormatRecord renders one saved walk for the history listing.
func FormatRecord(r history.Record) string {
	duration := color.New(color.Faint).Sprint("—")
	if r.DurationMin != nil {
		duration = FormatMinutes(*r.DurationMin)
	}
	line := fmt.Sprintf("%s  %s  %s  %s",
		color.New(color.Faint).Sprint(r.Date),
		color.GreenString(r.Title),
		r.StartAddress,
		duration)
	if r.Summary != "" {
		line += "\n    " + color.New(color.Faint).Sprint(r.Summary)
	}
	return line
}

// FormatMinutes renders a duration in minutes as hours and minutes.
func FormatMinutes(min int) string {
	h := min / 60
	m := min % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatRoute renders a route's vertices, one coordinate pair per line.
func FormatRoute(coords [][2]float64) string {
	var b strings.Builder
	for i, c := range coords {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %2d. (%.4f, %.4f)", i+1, c[0], c[1])
	}
	return b.String()
}

// FormatDescriptions renders a recommendation's narrative segments.
func FormatDescriptions(descs []models.PathDescription) string {
	var b strings.Builder
	for i, d := range descs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(color.New(color.Bold).Sprint(d.PathName))
		b.WriteByte('\n')
		b.WriteString(d.Description)
	}
	return b.String()
}

// Stamps reports how many walk stamps the total time has earned: one per
// full hour walked.
func Stamps(totalMinutes int) int {
	return totalMinutes / 60
}
