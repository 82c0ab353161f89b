package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/you/go-tickets-report/internal/flighttime"
	"github.com/you/go-tickets-report/internal/stats"
)

type CarrierTime struct {
	Carrier  string
	Duration time.Duration
}

type Report struct {
	From     string
	To       string
	Matched  int
	Skipped  int
	Carriers []CarrierTime // sorted by carrier
	Prices   stats.Summary
}

type carrierView struct {
	Carrier       string `json:"carrier"`
	MinFlightTime string `json:"min_flight_time"`
	Minutes       int64  `json:"minutes"`
}

type reportView struct {
	From     string        `json:"from"`
	To       string        `json:"to"`
	Matched  int           `json:"matched"`
	Skipped  int           `json:"skipped"`
	Carriers []carrierView `json:"carriers"`
	Prices   stats.Summary `json:"prices"`
}

func (r Report) MarshalJSON() ([]byte, error) {
	v := reportView{
		From:     r.From,
		To:       r.To,
		Matched:  r.Matched,
		Skipped:  r.Skipped,
		Carriers: make([]carrierView, 0, len(r.Carriers)),
		Prices:   r.Prices,
	}
	for _, c := range r.Carriers {
		v.Carriers = append(v.Carriers, carrierView{
			Carrier:       c.Carrier,
			MinFlightTime: flighttime.Format(c.Duration),
			Minutes:       int64(c.Duration / time.Minute),
		})
	}
	return json.Marshal(v)
}

func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// WriteText renders the human readable report. Headings are bold and carrier
// names cyan when colored is set.
func WriteText(w io.Writer, r Report, colored bool) error {
	head := paint(colored, color.Bold)
	name := paint(colored, color.FgCyan)

	var b strings.Builder
	head.Fprintf(&b, "Minimum flight times by carriers (%s - %s):", r.From, r.To)
	b.WriteString("\n")
	if len(r.Carriers) == 0 {
		b.WriteString("no flights\n")
	}
	for _, c := range r.Carriers {
		fmt.Fprintf(&b, "%s:   %s\n", name.Sprint(c.Carrier), flighttime.Format(c.Duration))
	}
	b.WriteString("\n")

	if !r.Prices.OK {
		head.Fprint(&b, "No matching tickets, price statistics unavailable")
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Mean price: %.2f\n", r.Prices.Mean)
		fmt.Fprintf(&b, "Median price: %.2f\n", r.Prices.Median)
		head.Fprintf(&b, "Difference between mean price and median: %.2f", r.Prices.Difference)
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r Report) String() string {
	var b strings.Builder
	_ = WriteText(&b, r, false)
	return b.String()
}
