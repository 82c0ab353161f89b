package timezone

import "time"

const (
	TelAviv     = "Тель-Авив"
	Vladivostok = "Владивосток"
)

// Scheme selects the summer time predicate of a city.
type Scheme uint8

const (
	SchemeNone Scheme = iota
	// SchemeLastSunday switches on the last Sunday of March and back on the last Sunday of October.
	SchemeLastSunday
	// SchemeFixed has no seasonal switch, the summer offset applies all year.
	SchemeFixed
)

// Rule describes how local wall clock of a city maps to UTC.
// Offsets are hours added to local time to get UTC.
type Rule struct {
	City         string
	Scheme       Scheme
	SummerOffset int
	WinterOffset int
}

var rules = map[string]Rule{
	TelAviv:     {City: TelAviv, Scheme: SchemeLastSunday, SummerOffset: -3, WinterOffset: -2},
	Vladivostok: {City: Vladivostok, Scheme: SchemeFixed, SummerOffset: -10, WinterOffset: -10},
}

func Lookup(city string) (Rule, bool) {
	r, ok := rules[city]
	return r, ok
}

// Cities returns the names of all modeled cities.
func Cities() []string {
	out := make([]string, 0, len(rules))
	for c := range rules {
		out = append(out, c)
	}
	return out
}

func (r Rule) IsSummerTime(t time.Time) bool {
	switch r.Scheme {
	case SchemeLastSunday:
		return lastSundaySummer(t)
	case SchemeFixed:
		return true
	default:
		return false
	}
}

func (r Rule) OffsetHours(t time.Time) int {
	if r.IsSummerTime(t) {
		return r.SummerOffset
	}
	return r.WinterOffset
}

// IsSummerTime reports whether local time t is inside the summer period of city.
// Unknown cities never have summer time.
func IsSummerTime(t time.Time, city string) bool {
	r, ok := Lookup(city)
	if !ok {
		return false
	}
	return r.IsSummerTime(t)
}

// OffsetHours returns the hours to add to local time t in city to get UTC.
// Unknown cities are treated as UTC.
func OffsetHours(t time.Time, city string) int {
	r, ok := Lookup(city)
	if !ok {
		return 0
	}
	return r.OffsetHours(t)
}

// ToUTC shifts the naive wall clock t of city to UTC. The result keeps t's location.
func ToUTC(t time.Time, city string) time.Time {
	return t.Add(time.Duration(OffsetHours(t, city)) * time.Hour)
}
