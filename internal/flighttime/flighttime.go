package flighttime

import (
	"fmt"
	"time"

	"github.com/you/go-tickets-report/internal/tickets"
	"github.com/you/go-tickets-report/internal/timezone"
)

// UTC returns the leg's wall clock shifted to UTC with the summer/winter
// offset of its city.
func UTC(l tickets.Leg) time.Time {
	return timezone.ToUTC(l.Local, l.City)
}

// Duration is the signed time between departure and arrival, both taken in UTC.
func Duration(dep, arr tickets.Leg) time.Duration {
	return UTC(arr).Sub(UTC(dep))
}

// Of parses both legs of t and returns its flight time.
func Of(t tickets.Ticket) (time.Duration, error) {
	dep, err := t.Departure()
	if err != nil {
		return 0, err
	}
	arr, err := t.Arrival()
	if err != nil {
		return 0, err
	}
	return Duration(dep, arr), nil
}

// Format renders d as HH:MM without wrapping at 24 hours. The sign is dropped.
func Format(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%02d:%02d", int64(h), int64(m))
}
