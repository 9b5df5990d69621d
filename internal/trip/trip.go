// Package trip holds the fixed reference data for the trip: the member
// universe, flight legs, the day-by-day itinerary, and location
// coordinates. This is configuration, not computed state; it is served
// read-only so every device renders the same copy.
package trip

import "time"

// Members is the fixed traveler universe for the reference deployment.
// The services take the universe as injected configuration; this slice is
// only the default.
var Members = []string{
	"Mahendra", "Namrata", "Ishmeet", "Meghana", "Unmesh", "Harish", "Swaroop",
}

// MemberColors maps each member to their display color.
var MemberColors = map[string]string{
	"Mahendra": "#F5C842",
	"Namrata":  "#00C9A7",
	"Ishmeet":  "#FF7EB3",
	"Meghana":  "#7C83FD",
	"Unmesh":   "#FF9A3C",
	"Harish":   "#4ECDC4",
	"Swaroop":  "#C471ED",
}

// TotalCash is the default shared cash pool in baht.
const TotalCash = 70000

// Trip window.
var (
	Departure = time.Date(2026, time.February, 27, 17, 40, 0, 0, time.UTC)
	Start     = time.Date(2026, time.February, 28, 0, 0, 0, 0, bangkok)
	End       = time.Date(2026, time.March, 4, 23, 59, 59, 0, bangkok)
)

var bangkok = time.FixedZone("ICT", 7*3600)

// Flight is one leg of the group's booked itinerary.
type Flight struct {
	Leg      int       `json:"leg"`
	Flight   string    `json:"flight"`
	Airline  string    `json:"airline"`
	From     string    `json:"from"`
	FromFull string    `json:"from_full"`
	To       string    `json:"to"`
	ToFull   string    `json:"to_full"`
	DepLocal string    `json:"dep_local"`
	ArrLocal string    `json:"arr_local"`
	DepUTC   time.Time `json:"dep_utc"`
	PNR      string    `json:"pnr"`
	Baggage  string    `json:"baggage"`
	TrackURL string    `json:"track_url"`
	Note     string    `json:"note,omitempty"`
	Warn     string    `json:"warn,omitempty"`
}

// Flights lists all four booked legs in travel order.
var Flights = []Flight{
	{
		Leg: 1, Flight: "FD 138", Airline: "Thai AirAsia",
		From: "BLR", FromFull: "Bengaluru T2",
		To: "DMK", ToFull: "Don Mueang T1",
		DepLocal: "Feb 27, 23:10", ArrLocal: "Feb 28, 04:25",
		DepUTC:   time.Date(2026, time.February, 27, 17, 40, 0, 0, time.UTC),
		PNR:      "DBWNXZ", Baggage: "20 KG + 7 KG cabin",
		TrackURL: "https://www.flightradar24.com/data/flights/fd138",
		Note:     "International. Arrive DMK T1, transfer to T2 for domestic.",
	},
	{
		Leg: 2, Flight: "SL 0754", Airline: "Thai Lion Air",
		From: "DMK", FromFull: "Don Mueang T2",
		To: "HKT", ToFull: "Phuket Domestic",
		DepLocal: "Feb 28, 10:20", ArrLocal: "Feb 28, 11:40",
		DepUTC:   time.Date(2026, time.February, 28, 3, 20, 0, 0, time.UTC),
		PNR:      "QKAEWX", Baggage: "15 KG checked",
		TrackURL: "https://www.flightradar24.com/data/flights/sl754",
		Note:     "6 hr layover at DMK. Clear immigration before heading to T2.",
	},
	{
		Leg: 3, Flight: "SL 0759", Airline: "Thai Lion Air",
		From: "HKT", FromFull: "Phuket Domestic",
		To: "DMK", ToFull: "Don Mueang T2",
		DepLocal: "Mar 3, 11:35", ArrLocal: "Mar 3, 12:55",
		DepUTC:   time.Date(2026, time.March, 3, 4, 35, 0, 0, time.UTC),
		PNR:      "QKAEWX", Baggage: "15 KG checked",
		TrackURL: "https://www.flightradar24.com/data/flights/sl759",
		Note:     "Phuket to Bangkok. Check in for Day 4.",
	},
	{
		Leg: 4, Flight: "FD 137", Airline: "Thai AirAsia",
		From: "DMK", FromFull: "Don Mueang T1",
		To: "BLR", ToFull: "Bengaluru T2",
		DepLocal: "Mar 4, 20:10", ArrLocal: "Mar 4, 22:30",
		DepUTC:   time.Date(2026, time.March, 4, 13, 10, 0, 0, time.UTC),
		PNR:      "DBWNXZ", Baggage: "20 KG + 7 KG cabin",
		TrackURL: "https://www.flightradar24.com/data/flights/fd137",
		Warn:     "Departs DMK (Don Mueang), NOT Suvarnabhumi. Leave hotel by 17:00.",
	},
}

// Activity is one timed entry on an itinerary day.
type Activity struct {
	Time  string  `json:"time"`
	Label string  `json:"label"`
	Type  string  `json:"type"`
	Note  string  `json:"note,omitempty"`
	Cost  float64 `json:"cost,omitempty"`
}

// Day is one itinerary day with its planned activities.
type Day struct {
	Day           int        `json:"day"`
	Date          string     `json:"date"`
	Title         string     `json:"title"`
	Location      string     `json:"location"`
	Activities    []Activity `json:"activities"`
	PerPersonCost float64    `json:"per_person_cost"`
}

// Itinerary lists the five planned days.
var Itinerary = []Day{
	{
		Day: 1, Date: "2026-02-28", Title: "Arrival in Paradise",
		Location: "Phuket · Kamala",
		Activities: []Activity{
			{Time: "04:25", Label: "Land at DMK", Type: "transit"},
			{Time: "10:20", Label: "SL 0754 DMK → HKT", Type: "transit"},
			{Time: "12:00", Label: "Lunch — Lillo Island Restaurant & Bar", Type: "food", Note: "Kamala Beach", Cost: 800},
			{Time: "14:00", Label: "Check-in — Villa Aurora", Type: "stay", Note: "Kamala, Phuket · Ref: RCRW2FJNPN"},
			{Time: "17:30", Label: "Sunset — Café del Mar Beach Club", Type: "activity", Note: "Kamala Beach", Cost: 600},
			{Time: "20:00", Label: "Dinner — Marush Kamala", Type: "food", Note: "Mediterranean / Middle Eastern", Cost: 700},
			{Time: "22:00", Label: "Villa Aurora pool party", Type: "activity"},
		},
		PerPersonCost: 9540,
	},
	{
		Day: 2, Date: "2026-03-01", Title: "Phi Phi Islands",
		Location: "Phi Phi · Andaman Sea",
		Activities: []Activity{
			{Time: "07:30", Label: "Breakfast — Lafayette French Bakery", Type: "food", Cost: 350},
			{Time: "09:00", Label: "Phi Phi Speedboat Tour", Type: "activity", Note: "Maya Bay · Pileh Lagoon · Snorkeling", Cost: 2800},
			{Time: "18:00", Label: "Return to villa", Type: "stay"},
			{Time: "20:00", Label: "Bangla Road & Illuzion Club", Type: "nightlife", Note: "Patong nightlife", Cost: 2500},
		},
		PerPersonCost: 11244,
	},
	{
		Day: 3, Date: "2026-03-02", Title: "Jungle Adventures",
		Location: "Phuket · Patong",
		Activities: []Activity{
			{Time: "08:30", Label: "Breakfast — 936 Coffee", Type: "food", Note: "Kamala beachfront", Cost: 350},
			{Time: "10:00", Label: "Flying Hanuman Zipline", Type: "activity", Note: "Jungle canopy", Cost: 2500},
			{Time: "13:00", Label: "Lunch — Three Monkeys Restaurant", Type: "food", Note: "Treehouse dining", Cost: 600},
			{Time: "15:00", Label: "Villa pool time", Type: "activity"},
			{Time: "20:00", Label: "Farewell Dinner — SILK at Andara", Type: "food", Note: "Fine dining · Villa farewell party after", Cost: 2500},
		},
		PerPersonCost: 14910,
	},
	{
		Day: 4, Date: "2026-03-03", Title: "Phuket → Bangkok",
		Location: "Bangkok",
		Activities: []Activity{
			{Time: "08:00", Label: "Farewell buffet — Pinto at InterContinental", Type: "food", Cost: 1200},
			{Time: "11:35", Label: "SL 0759 HKT → DMK", Type: "transit"},
			{Time: "13:00", Label: "Bangkok hotel check-in", Type: "stay"},
			{Time: "14:00", Label: "Grand Palace & Emerald Buddha", Type: "activity", Note: "Closes 15:30 — go early!", Cost: 500},
			{Time: "19:00", Label: "Yaowarat Chinatown Night Market", Type: "food", Note: "Street food experience", Cost: 600},
		},
		PerPersonCost: 6574,
	},
	{
		Day: 5, Date: "2026-03-04", Title: "Last Day in Bangkok",
		Location: "Bangkok",
		Activities: []Activity{
			{Time: "10:00", Label: "Traditional Thai Massage", Type: "activity", Note: "Sukhumvit", Cost: 600},
			{Time: "12:00", Label: "ICONSIAM Riverside Mall", Type: "activity", Note: "Floating market inside"},
			{Time: "14:00", Label: "Wat Arun — Temple of Dawn", Type: "activity", Note: "Best view from across the river", Cost: 100},
			{Time: "17:00", Label: "Octave Rooftop Bar", Type: "nightlife", Note: "45th floor · 360° views", Cost: 1500},
			{Time: "20:10", Label: "FD 137 DMK → BLR", Type: "transit", Note: "Don Mueang T1 · Leave hotel by 17:00"},
		},
		PerPersonCost: 5667,
	},
}

// Location is a named coordinate used for weather lookups.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

var (
	Bengaluru = Location{Name: "Bengaluru", Lat: 12.97, Lon: 77.59}
	Phuket    = Location{Name: "Phuket", Lat: 7.89, Lon: 98.40}
	Bangkok   = Location{Name: "Bangkok", Lat: 13.75, Lon: 100.52}
)

// ExpenseCategory pairs a stable value with its display label.
type ExpenseCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ExpenseCategories lists the categories offered when recording an expense.
var ExpenseCategories = []ExpenseCategory{
	{Value: "food", Label: "Food & Drinks"},
	{Value: "transport", Label: "Transport"},
	{Value: "accommodation", Label: "Accommodation"},
	{Value: "activities", Label: "Activities & Tours"},
	{Value: "shopping", Label: "Shopping"},
	{Value: "medical", Label: "Medical"},
	{Value: "misc", Label: "Miscellaneous"},
}

// ValidCategory reports whether value is a known expense category.
func ValidCategory(value string) bool {
	for _, c := range ExpenseCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}
