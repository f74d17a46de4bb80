package countdown

import (
	"testing"
	"time"
)

func ist(t *testing.T) *time.Location {
	t.Helper()
	loc, err := Location(DefaultTimezone)
	if err != nil {
		t.Fatalf("loading default timezone: %v", err)
	}
	return loc
}

func TestUntil_ExactComponents(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)
	now := target.Add(-(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second))

	got := Until(target, now)
	want := Snapshot{Days: 3, Hours: 4, Minutes: 5, Seconds: 6}
	if got != want {
		t.Fatalf("Until = %+v, want %+v", got, want)
	}
}

func TestUntil_ComponentsStayInRange(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)

	// Walk backwards from the target in uneven strides; every snapshot
	// before the target must have non-negative days and in-range components.
	now := target
	for i := 0; i < 500; i++ {
		now = now.Add(-(13*time.Minute + 7*time.Second))
		s := Until(target, now)
		if s.Days < 0 {
			t.Fatalf("days = %d for now=%v, want >= 0", s.Days, now)
		}
		if s.Hours < 0 || s.Hours > 23 {
			t.Fatalf("hours = %d out of range for now=%v", s.Hours, now)
		}
		if s.Minutes < 0 || s.Minutes > 59 {
			t.Fatalf("minutes = %d out of range for now=%v", s.Minutes, now)
		}
		if s.Seconds < 0 || s.Seconds > 59 {
			t.Fatalf("seconds = %d out of range for now=%v", s.Seconds, now)
		}
	}
}

func TestUntil_PastTargetGoesNegative(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)
	now := target.Add(36 * time.Hour)

	s := Until(target, now)
	if s.Days >= 0 {
		t.Fatalf("days = %d after the target, want negative", s.Days)
	}
}

func TestUntil_ZoneIndependent(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)
	now := target.Add(-50 * time.Hour)

	// The same two instants expressed in UTC must produce the same snapshot.
	a := Until(target, now)
	b := Until(target.UTC(), now.UTC())
	if a != b {
		t.Fatalf("snapshot differs across zones: %+v vs %+v", a, b)
	}
}

func TestDaysUntil(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)

	now := time.Date(2025, time.March, 25, 17, 55, 0, 0, loc)
	if got := DaysUntil(target, now); got != 2 {
		t.Errorf("DaysUntil 2d6h out = %d, want 2", got)
	}

	now = time.Date(2025, time.March, 27, 0, 0, 0, 0, loc)
	if got := DaysUntil(target, now); got != 1 {
		t.Errorf("DaysUntil one day out = %d, want 1", got)
	}
}

func TestSameCalendarDay(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"same day same year", time.Date(2025, time.March, 28, 15, 4, 5, 0, loc), true},
		{"same day later year", time.Date(2031, time.March, 28, 0, 0, 0, 0, loc), true},
		{"next day", time.Date(2025, time.March, 29, 0, 0, 0, 0, loc), false},
		{"same day wrong month", time.Date(2025, time.April, 28, 0, 0, 0, 0, loc), false},
	}
	for _, tc := range cases {
		if got := SameCalendarDay(target, tc.now, loc); got != tc.want {
			t.Errorf("%s: SameCalendarDay = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSameCalendarDay_ProjectsIntoZone(t *testing.T) {
	loc := ist(t)
	target := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)

	// 20:00 UTC on March 27th is already 01:30 on the 28th in IST.
	now := time.Date(2025, time.March, 27, 20, 0, 0, 0, time.UTC)
	if !SameCalendarDay(target, now, loc) {
		t.Fatal("expected UTC instant to be projected into IST before comparing")
	}
}

func TestParseTarget(t *testing.T) {
	loc := ist(t)

	got, err := ParseTarget("2025-03-28", loc)
	if err != nil {
		t.Fatalf("ParseTarget: %v", err)
	}
	want := time.Date(2025, time.March, 28, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseTarget = %v, want %v", got, want)
	}

	if _, err := ParseTarget("28-03-2025", loc); err == nil {
		t.Error("expected error for malformed date")
	}
}
