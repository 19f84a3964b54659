package countdown

import (
	"testing"
	"time"
)

func TestRemainingExactWeek(t *testing.T) {
	target := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	snap, ok := Remaining(target, now)
	if !ok {
		t.Fatal("expected positive countdown")
	}
	want := Snapshot{Days: 7, Hours: 0, Mins: 0}
	if snap != want {
		t.Errorf("remaining = %+v, want %+v", snap, want)
	}
}

func TestRemainingMixedFields(t *testing.T) {
	target := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.January, 6, 11, 30, 0, 0, time.UTC)

	snap, ok := Remaining(target, now)
	if !ok {
		t.Fatal("expected positive countdown")
	}
	want := Snapshot{Days: 1, Hours: 12, Mins: 30}
	if snap != want {
		t.Errorf("remaining = %+v, want %+v", snap, want)
	}
}

func TestRemainingTruncatesSeconds(t *testing.T) {
	target := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	now := target.Add(-90 * time.Second)

	snap, ok := Remaining(target, now)
	if !ok {
		t.Fatal("expected positive countdown")
	}
	want := Snapshot{Days: 0, Hours: 0, Mins: 1}
	if snap != want {
		t.Errorf("remaining = %+v, want %+v", snap, want)
	}
}

func TestRemainingAtOrAfterTarget(t *testing.T) {
	target := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)

	if _, ok := Remaining(target, target); ok {
		t.Error("countdown at the target instant should not be armed")
	}
	if _, ok := Remaining(target, target.Add(time.Hour)); ok {
		t.Error("countdown after the target instant should not be armed")
	}
}

func TestTickerFreezesAfterTarget(t *testing.T) {
	// Frozen-at-last-value policy: a tick past the target leaves the
	// previous snapshot untouched rather than zeroing it.
	target := time.Date(2026, time.January, 8, 0, 0, 0, 0, time.UTC)
	tk := NewTicker(target, time.Minute)

	tk.tick(target.Add(-2 * time.Hour))
	before := tk.Current()
	if before == (Snapshot{}) {
		t.Fatal("expected a computed snapshot before the target")
	}

	tk.tick(target.Add(time.Hour))
	if got := tk.Current(); got != before {
		t.Errorf("snapshot after target = %+v, want frozen %+v", got, before)
	}
}

func TestTickerStartStop(t *testing.T) {
	tk := NewTicker(time.Now().Add(48*time.Hour), time.Minute)
	tk.Start()

	// The immediate startup tick runs asynchronously; Stop waits for the
	// loop, after which the snapshot must be populated.
	tk.Stop()
	if got := tk.Current(); got.Days < 1 {
		t.Errorf("snapshot after start = %+v, want at least one day", got)
	}
}
