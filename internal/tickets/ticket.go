package tickets

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrBadDateTime = errors.New("bad date/time")
	ErrBadPrice    = errors.New("bad price")
	ErrBadTicket   = errors.New("bad ticket")
)

// input layout of departure/arrival date and time, e.g. "12.05.18 16:20"
const dateTimeLayout = "02.01.06 15:04"

type Container struct {
	Tickets []Ticket `json:"tickets"`
}

// UnmarshalJSON decodes each ticket on its own. A ticket that does not fit
// the schema is kept with Err set instead of failing the whole document.
func (c *Container) UnmarshalJSON(b []byte) error {
	var raw struct {
		Tickets []json.RawMessage `json:"tickets"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.Tickets = make([]Ticket, 0, len(raw.Tickets))
	for _, rt := range raw.Tickets {
		var t Ticket
		if err := json.Unmarshal(rt, &t); err != nil {
			t = Ticket{Err: fmt.Errorf("%w: %v", ErrBadTicket, err)}
		}
		c.Tickets = append(c.Tickets, t)
	}
	return nil
}

type Ticket struct {
	Origin          string `json:"origin"`
	OriginName      string `json:"origin_name"`
	Destination     string `json:"destination"`
	DestinationName string `json:"destination_name"`
	DepartureDate   string `json:"departure_date"`
	DepartureTime   string `json:"departure_time"`
	ArrivalDate     string `json:"arrival_date"`
	ArrivalTime     string `json:"arrival_time"`
	Carrier         string `json:"carrier"`
	Stops           Stops  `json:"stops"`
	Price           Price  `json:"price"`

	// Err is set when the ticket could not be decoded.
	Err error `json:"-"`
}

// Leg is one end of a flight: a city and its naive local wall clock.
type Leg struct {
	City  string
	Local time.Time
}

// Connects reports whether the ticket flies between a and b in either direction.
func (t Ticket) Connects(a, b string) bool {
	return (t.OriginName == a && t.DestinationName == b) ||
		(t.OriginName == b && t.DestinationName == a)
}

func (t Ticket) Departure() (Leg, error) {
	lt, err := ParseLocal(t.DepartureDate, t.DepartureTime)
	if err != nil {
		return Leg{}, fmt.Errorf("departure: %w", err)
	}
	return Leg{City: t.OriginName, Local: lt}, nil
}

func (t Ticket) Arrival() (Leg, error) {
	lt, err := ParseLocal(t.ArrivalDate, t.ArrivalTime)
	if err != nil {
		return Leg{}, fmt.Errorf("arrival: %w", err)
	}
	return Leg{City: t.DestinationName, Local: lt}, nil
}

// ParseLocal parses a "dd.mm.yy" date and an "H:mm" or "HH:mm" time into a
// naive wall clock carried in time.UTC. Two digit years are read as 20yy.
func ParseLocal(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if len(clock) == 4 {
		clock = "0" + clock
	}
	t, err := time.Parse(dateTimeLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q %q: %v", ErrBadDateTime, date, clock, err)
	}
	if t.Year() < 2000 {
		t = t.AddDate(100, 0, 0)
	}
	return t, nil
}

// Price keeps the raw price token as found in the input. Strings are
// unquoted, anything else is kept verbatim and rejected later by Float.
type Price string

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	*p = Price(b)
	return nil
}

func (p Price) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadPrice, string(p))
	}
	return v, nil
}

// Stops accepts a number or a numeric string. Other values decode as 0.
type Stops int

func (s *Stops) UnmarshalJSON(b []byte) error {
	str := strings.Trim(string(bytes.TrimSpace(b)), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		*s = 0
		return nil
	}
	*s = Stops(n)
	return nil
}
