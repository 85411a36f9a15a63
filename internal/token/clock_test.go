package token

import (
	"testing"
	"time"
)

func TestRemainingAroundDeadline(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	clock := NewClock(now.Add(90 * time.Second).Format(time.RFC3339))

	// Just before the deadline the token is still live.
	before := clock.Remaining(now.Add(89 * time.Second))
	if before.IsExpired {
		t.Fatal("expired before deadline")
	}
	if before.Seconds != 1 || before.Minutes != 0 {
		t.Errorf("remaining = %+v, want 1s", before)
	}

	// At and after the deadline everything is zero.
	for _, offset := range []time.Duration{90 * time.Second, 91 * time.Second, time.Hour} {
		got := clock.Remaining(now.Add(offset))
		if !got.IsExpired {
			t.Errorf("at +%v: not expired", offset)
		}
		if got.Days != 0 || got.Hours != 0 || got.Minutes != 0 || got.Seconds != 0 {
			t.Errorf("at +%v: remaining = %+v, want all zero", offset, got)
		}
	}
}

func TestRemainingDecomposition(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	left := 2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second
	clock := NewClock(now.Add(left).Format(time.RFC3339))

	got := clock.Remaining(now)
	want := TimeRemaining{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}
	if got != want {
		t.Errorf("remaining = %+v, want %+v", got, want)
	}
}

func TestUnparseableDeadlineIsExpired(t *testing.T) {
	tests := []string{"", "not-a-time", "13/37/2025", "soon"}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			got := NewClock(input).Remaining(time.Now())
			if !got.IsExpired {
				t.Errorf("NewClock(%q): not expired", input)
			}
			if got != (TimeRemaining{IsExpired: true}) {
				t.Errorf("NewClock(%q): remaining = %+v, want zeroes", input, got)
			}
		})
	}
}

func TestClockAcceptsLenientLayouts(t *testing.T) {
	clock := NewClock("2099-06-01 10:30:00")
	if _, ok := clock.Deadline(); !ok {
		t.Error("space-separated layout did not parse")
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		remaining TimeRemaining
		want      Tier
	}{
		{"expired", TimeRemaining{IsExpired: true}, TierExpired},
		{"one second", TimeRemaining{Seconds: 1}, TierExpiringSoon},
		{"29 minutes", TimeRemaining{Minutes: 29}, TierExpiringSoon},
		{"29m59s", TimeRemaining{Minutes: 29, Seconds: 59}, TierExpiringSoon},
		{"exactly 30 minutes", TimeRemaining{Minutes: 30}, TierValidLow},
		{"59 minutes", TimeRemaining{Minutes: 59}, TierValidLow},
		{"exactly 60 minutes", TimeRemaining{Hours: 1}, TierValid},
		{"90 minutes", TimeRemaining{Hours: 1, Minutes: 30}, TierValid},
		{"two days", TimeRemaining{Days: 2}, TierValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.remaining.Tier(); got != tt.want {
				t.Errorf("Tier() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"", RedactionMarker},
		{"abc", RedactionMarker},
		{"abcdefgh", RedactionMarker},
		{"abcdefghi", "abcd...fghi"},
		{"abcdefghij", "abcd...ghij"},
		{"eyJhbGciOiJSUzI1NiJ9.payload.sig", "eyJh....sig"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Mask(tt.token); got != tt.want {
				t.Errorf("Mask(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
