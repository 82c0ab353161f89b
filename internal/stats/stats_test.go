package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	m, err := Median([]float64{100, 200, 300})
	require.NoError(t, err)
	require.Equal(t, 200.0, m)

	m, err = Median([]float64{400, 100, 300, 200})
	require.NoError(t, err)
	require.Equal(t, "250.00", fmt.Sprintf("%.2f", m))

	m, err = Median([]float64{42})
	require.NoError(t, err)
	require.Equal(t, 42.0, m)
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_, err := Median(in)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, in)
}

func TestMean(t *testing.T) {
	m, err := Mean([]float64{150, 150, 300})
	require.NoError(t, err)
	require.Equal(t, 200.0, m)
}

func TestEmpty(t *testing.T) {
	_, err := Mean(nil)
	require.ErrorIs(t, err, ErrNoData)
	_, err = Median([]float64{})
	require.ErrorIs(t, err, ErrNoData)

	s := Summarize(nil)
	require.False(t, s.OK)
	require.Zero(t, s.Count)
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{100, 200, 300, 400})
	require.True(t, s.OK)
	require.Equal(t, 4, s.Count)
	require.Equal(t, 250.0, s.Mean)
	require.Equal(t, 250.0, s.Median)
	require.Equal(t, "0.00", fmt.Sprintf("%.2f", s.Difference))

	s = Summarize([]float64{150, 150, 300})
	require.Equal(t, 200.0, s.Mean)
	require.Equal(t, 150.0, s.Median)
	require.Equal(t, 50.0, s.Difference)
}
