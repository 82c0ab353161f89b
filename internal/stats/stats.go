package stats

import (
	"errors"
	"sort"
)

var ErrNoData = errors.New("no data")

type Summary struct {
	Count      int     `json:"count"`
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	Difference float64 `json:"difference"`
	OK         bool    `json:"ok"`
}

func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoData
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// Median sorts a copy of values and returns its middle element, or the
// average of the two middle elements for an even count.
func Median(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrNoData
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, nil
	}
	return sorted[mid], nil
}

// Summarize computes mean, median and mean minus median. An empty input
// yields a zero Summary with OK unset.
func Summarize(values []float64) Summary {
	mean, err := Mean(values)
	if err != nil {
		return Summary{}
	}
	median, _ := Median(values)
	return Summary{
		Count:      len(values),
		Mean:       mean,
		Median:     median,
		Difference: mean - median,
		OK:         true,
	}
}
