// ABOUTME: Duration preference derived from recent saved walks
// ABOUTME: Feeds the personalized duration-route recommendation

package history

import "github.com/seyeon-q/soomgil/internal/models"

// recentWindow is how many of the newest records the preference looks at.
const recentWindow = 5

// DurationPreference classifies the user's recent walk lengths. An empty
// ledger defaults to medium; records without a duration count as the default
// walk length.
func DurationPreference(records []Record) models.DurationPreference {
	if len(records) == 0 {
		return models.PreferenceMedium
	}

	recent := records
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}

	total := 0
	for _, r := range recent {
		if r.DurationMin != nil {
			total += *r.DurationMin
		} else {
			total += models.DefaultDurationMin
		}
	}
	avg := float64(total) / float64(len(recent))
	return models.ClassifyDuration(avg)
}
