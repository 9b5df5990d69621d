package trip

import "time"

// Countdown is the remaining time to a target instant, broken into display
// units.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Until returns the countdown from now to target, or false once the target
// has passed.
func Until(now, target time.Time) (Countdown, bool) {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{}, false
	}
	return Countdown{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}, true
}

// DayOf returns the 1-based itinerary day for now, or false when now falls
// outside the trip window. Dates compare in Bangkok time, matching the
// itinerary.
func DayOf(now time.Time) (int, bool) {
	date := now.In(bangkok).Format("2006-01-02")
	for _, d := range Itinerary {
		if d.Date == date {
			return d.Day, true
		}
	}
	return 0, false
}

// WeatherLocationFor picks which location's weather to show on a given
// date: home city before departure, Phuket for the island days, Bangkok
// from the transfer day onward.
func WeatherLocationFor(now time.Time) Location {
	date := now.In(bangkok).Format("2006-01-02")
	switch {
	case date >= "2026-03-03":
		return Bangkok
	case date >= "2026-02-28":
		return Phuket
	default:
		return Bengaluru
	}
}
