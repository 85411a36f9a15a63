package updates

import (
	"fmt"
	"testing"
	"time"

	"caseview/pkg/models"
)

func makeUpdate(i int) models.RealtimeUpdate {
	return models.RealtimeUpdate{
		ID:        fmt.Sprintf("u-%04d", i),
		Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Second),
		Step:      models.StepFetchingCase,
		Message:   fmt.Sprintf("update %d", i),
		Level:     models.LevelInfo,
	}
}

func TestLatestOnEmptyLog(t *testing.T) {
	l := NewLog()
	if _, ok := l.Latest(); ok {
		t.Error("Latest() on empty log reported an entry")
	}
	if got := l.Recent(10); got != nil {
		t.Errorf("Recent(10) on empty log = %v, want nil", got)
	}
}

func TestLatestReturnsLastAppended(t *testing.T) {
	l := NewLog()
	for i := 0; i < 5; i++ {
		l.Append(makeUpdate(i))
	}
	got, ok := l.Latest()
	if !ok {
		t.Fatal("Latest() found nothing")
	}
	if got.ID != "u-0004" {
		t.Errorf("Latest().ID = %s, want u-0004", got.ID)
	}
}

func TestRecentReturnsLastNReversed(t *testing.T) {
	l := NewLog()
	for i := 0; i < 1000; i++ {
		l.Append(makeUpdate(i))
	}

	got := l.Recent(10)
	if len(got) != 10 {
		t.Fatalf("Recent(10) returned %d entries", len(got))
	}
	for i, u := range got {
		wantID := fmt.Sprintf("u-%04d", 999-i)
		if u.ID != wantID {
			t.Errorf("Recent(10)[%d].ID = %s, want %s", i, u.ID, wantID)
		}
		if i > 0 && u.Timestamp.After(got[i-1].Timestamp) {
			t.Errorf("Recent(10)[%d] is newer than its predecessor", i)
		}
	}

	if l.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", l.Len())
	}
}

func TestRecentLargerThanLog(t *testing.T) {
	l := NewLog()
	for i := 0; i < 3; i++ {
		l.Append(makeUpdate(i))
	}
	got := l.Recent(10)
	if len(got) != 3 {
		t.Fatalf("Recent(10) returned %d entries, want 3", len(got))
	}
	if got[0].ID != "u-0002" || got[2].ID != "u-0000" {
		t.Errorf("Recent(10) order wrong: %s ... %s", got[0].ID, got[2].ID)
	}
}

func TestAllPreservesArrivalOrder(t *testing.T) {
	l := NewLog()
	for i := 0; i < 4; i++ {
		l.Append(makeUpdate(i))
	}
	all := l.All()
	for i, u := range all {
		if u.ID != fmt.Sprintf("u-%04d", i) {
			t.Errorf("All()[%d].ID = %s", i, u.ID)
		}
	}

	// Mutating the copy must not affect the log.
	all[0].Message = "tampered"
	if first := l.All()[0]; first.Message == "tampered" {
		t.Error("All() exposed internal storage")
	}
}
