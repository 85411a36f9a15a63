// Package token derives a live countdown, a discrete validity tier, and a
// masked display form from OAuth token material. All derivations are
// fail-soft: an unparseable deadline resolves to the expired state rather
// than an error.
package token

import "time"

// RedactionMarker is the fixed display form for tokens too short to mask
// piecewise.
const RedactionMarker = "********"

// expiresAtLayouts are the accepted deadline formats, tried in order.
var expiresAtLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

// TimeRemaining is the decomposed countdown state. All fields are zero
// exactly when IsExpired is true.
type TimeRemaining struct {
	Days      int
	Hours     int
	Minutes   int
	Seconds   int
	IsExpired bool
}

// Tier is the coarse validity classification used for urgency styling.
type Tier string

const (
	// TierExpired means the deadline has passed or never parsed.
	TierExpired Tier = "expired"
	// TierExpiringSoon means fewer than 30 minutes remain.
	TierExpiringSoon Tier = "expiring-soon"
	// TierValidLow means at least 30 but fewer than 60 minutes remain.
	TierValidLow Tier = "valid-low"
	// TierValid means an hour or more remains.
	TierValid Tier = "valid"
)

// Tier classifies the remaining lifetime. Boundary values belong to the
// higher tier: exactly 30 minutes is valid-low, exactly 60 is valid.
func (r TimeRemaining) Tier() Tier {
	if r.IsExpired {
		return TierExpired
	}
	totalMinutes := r.Days*1440 + r.Hours*60 + r.Minutes
	switch {
	case totalMinutes < 30:
		return TierExpiringSoon
	case totalMinutes < 60:
		return TierValidLow
	default:
		return TierValid
	}
}

// Clock computes the countdown for one token deadline. A zero-value or
// unparseable deadline yields a permanently expired clock.
type Clock struct {
	deadline time.Time
	valid    bool
}

// NewClock parses the reported expiration instant. Parsing failure is not
// an error; the resulting clock reports expired on every sample.
func NewClock(expiresAt string) *Clock {
	for _, layout := range expiresAtLayouts {
		if t, err := time.Parse(layout, expiresAt); err == nil {
			return &Clock{deadline: t, valid: true}
		}
	}
	return &Clock{}
}

// Deadline returns the parsed expiration instant and whether it parsed.
func (c *Clock) Deadline() (time.Time, bool) {
	return c.deadline, c.valid
}

// Remaining decomposes the time left at the given instant into days,
// hours, minutes and seconds by integer floor division.
func (c *Clock) Remaining(now time.Time) TimeRemaining {
	if !c.valid {
		return TimeRemaining{IsExpired: true}
	}

	left := c.deadline.Sub(now)
	if left <= 0 {
		return TimeRemaining{IsExpired: true}
	}

	total := int(left / time.Second)
	return TimeRemaining{
		Days:    total / 86400,
		Hours:   (total % 86400) / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// Mask renders a token for display without revealing it. Tokens of eight
// characters or fewer collapse to the redaction marker; longer tokens show
// the first and last four characters only. The full value is only
// reachable through the explicit copy action.
func Mask(token string) string {
	if len(token) <= 8 {
		return RedactionMarker
	}
	return token[:4] + "..." + token[len(token)-4:]
}
