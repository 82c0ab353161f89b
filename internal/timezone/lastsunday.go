package timezone

import "time"

// isoWeekday numbers days Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func daysUntilSunday(t time.Time) int {
	return 7 - isoWeekday(t)
}

// lastSundaySummer implements the switch to summer time on the last Sunday of
// March and back to winter time on the last Sunday of October at 02:00.
//
// In March the switch is taken at 02:00 on the Friday preceding the last
// Sunday, not on the Sunday itself.
func lastSundaySummer(t time.Time) bool {
	switch t.Month() {
	case time.April, time.May, time.June, time.July, time.August, time.September:
		return true
	case time.March:
		return marchSummer(t)
	case time.October:
		return octoberSummer(t)
	default:
		return false
	}
}

func marchSummer(t time.Time) bool {
	sunday := t.AddDate(0, 0, daysUntilSunday(t))
	if sunday.Month() != t.Month() {
		return true
	}
	// not the last Sunday yet
	if sunday.AddDate(0, 0, 7).Month() == sunday.Month() {
		return false
	}

	wd := isoWeekday(t)
	switch {
	case wd < int(time.Friday):
		return false
	case wd > int(time.Friday):
		return true
	default:
		return t.Hour() >= 2
	}
}

func octoberSummer(t time.Time) bool {
	if t.AddDate(0, 0, 7).Month() == t.Month() {
		return true
	}

	days := daysUntilSunday(t)
	if days == 0 {
		return t.Hour() < 2
	}
	// last week of October: summer only until the last Sunday
	return t.AddDate(0, 0, days).Month() == t.Month()
}
