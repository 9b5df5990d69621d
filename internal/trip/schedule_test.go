package trip

import (
	"testing"
	"time"
)

func TestUntil(t *testing.T) {
	target := time.Date(2026, time.February, 27, 17, 40, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Countdown
		ok   bool
	}{
		{
			name: "two days out",
			now:  time.Date(2026, time.February, 25, 17, 40, 0, 0, time.UTC),
			want: Countdown{Days: 2},
			ok:   true,
		},
		{
			name: "mixed units",
			now:  time.Date(2026, time.February, 26, 15, 10, 30, 0, time.UTC),
			want: Countdown{Days: 1, Hours: 2, Minutes: 29, Seconds: 30},
			ok:   true,
		},
		{
			name: "already departed",
			now:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
			ok:   false,
		},
		{
			name: "exactly at departure",
			now:  target,
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Until(tt.now, target)
			if ok != tt.ok {
				t.Fatalf("Until() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Until() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDayOf(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		day  int
		ok   bool
	}{
		{
			name: "before the trip",
			now:  time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC),
			ok:   false,
		},
		{
			name: "day one in Bangkok time",
			now:  time.Date(2026, time.February, 28, 6, 0, 0, 0, bangkok),
			day:  1,
			ok:   true,
		},
		{
			// 2026-02-27 22:00 UTC is already Feb 28 in Bangkok.
			name: "utc date lags bangkok date",
			now:  time.Date(2026, time.February, 27, 22, 0, 0, 0, time.UTC),
			day:  1,
			ok:   true,
		},
		{
			name: "final day",
			now:  time.Date(2026, time.March, 4, 10, 0, 0, 0, bangkok),
			day:  5,
			ok:   true,
		},
		{
			name: "after the trip",
			now:  time.Date(2026, time.March, 6, 10, 0, 0, 0, bangkok),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := DayOf(tt.now)
			if ok != tt.ok || day != tt.day {
				t.Errorf("DayOf() = (%d, %v), want (%d, %v)", day, ok, tt.day, tt.ok)
			}
		})
	}
}

func TestWeatherLocationFor(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2026, time.February, 20, 0, 0, 0, 0, bangkok), "Bengaluru"},
		{time.Date(2026, time.February, 28, 8, 0, 0, 0, bangkok), "Phuket"},
		{time.Date(2026, time.March, 2, 8, 0, 0, 0, bangkok), "Phuket"},
		{time.Date(2026, time.March, 3, 8, 0, 0, 0, bangkok), "Bangkok"},
		{time.Date(2026, time.March, 10, 8, 0, 0, 0, bangkok), "Bangkok"},
	}

	for _, tt := range tests {
		if got := WeatherLocationFor(tt.now); got.Name != tt.want {
			t.Errorf("WeatherLocationFor(%v) = %s, want %s", tt.now, got.Name, tt.want)
		}
	}
}

func TestMemberUniverse(t *testing.T) {
	if len(Members) != 7 {
		t.Fatalf("expected 7 members, got %d", len(Members))
	}
	seen := make(map[string]bool)
	for _, m := range Members {
		if seen[m] {
			t.Errorf("duplicate member %q", m)
		}
		seen[m] = true
		if MemberColors[m] == "" {
			t.Errorf("member %q has no color", m)
		}
	}
}
