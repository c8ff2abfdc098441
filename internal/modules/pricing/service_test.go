package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombook/internal/pkg/ist"
)

func mustResolve(t *testing.T, local string) time.Time {
	t.Helper()
	instant, err := ist.Resolve(local)
	require.NoError(t, err)
	return instant
}

func TestEstimate_PeakAndOffPeakSplit(t *testing.T) {
	svc := NewService()

	// Monday 09:30-11:00 IST at 300/hr: 60 peak minutes, 30 off-peak minutes.
	start := mustResolve(t, "2025-11-17T09:30")
	end := mustResolve(t, "2025-11-17T11:00")

	est := svc.Estimate(300, start, end)

	require.Len(t, est.Breakdown, 2)
	assert.Equal(t, BreakdownLine{Label: LabelPeak, Minutes: 60, Amount: 450}, est.Breakdown[0])
	assert.Equal(t, BreakdownLine{Label: LabelOffPeak, Minutes: 30, Amount: 150}, est.Breakdown[1])
	assert.Equal(t, 600.0, est.Total)
}

func TestEstimate_ExactPeakWindow(t *testing.T) {
	svc := NewService()

	// Wednesday 10:00-13:00 IST is fully peak: single breakdown line.
	start := mustResolve(t, "2025-11-19T10:00")
	end := mustResolve(t, "2025-11-19T13:00")

	est := svc.Estimate(200, start, end)

	require.Len(t, est.Breakdown, 1)
	assert.Equal(t, BreakdownLine{Label: LabelPeak, Minutes: 180, Amount: 900}, est.Breakdown[0])
	assert.Equal(t, 900.0, est.Total)
}

func TestEstimate_WeekendHasNoPeak(t *testing.T) {
	svc := NewService()

	// Saturday 09:00-14:00 IST overlaps peak clock hours but is off-peak.
	start := mustResolve(t, "2025-11-22T09:00")
	end := mustResolve(t, "2025-11-22T14:00")

	est := svc.Estimate(100, start, end)

	require.Len(t, est.Breakdown, 1)
	assert.Equal(t, BreakdownLine{Label: LabelOffPeak, Minutes: 300, Amount: 500}, est.Breakdown[0])
	assert.Equal(t, 500.0, est.Total)
}

func TestEstimate_MultiDaySpan(t *testing.T) {
	svc := NewService()

	// Friday 18:00 through Monday 11:00: one peak hour on Friday evening,
	// one on Monday morning, weekend entirely off-peak.
	start := mustResolve(t, "2025-11-21T18:00")
	end := mustResolve(t, "2025-11-24T11:00")

	est := svc.Estimate(100, start, end)

	totalMinutes := 65 * 60
	require.Len(t, est.Breakdown, 2)
	assert.Equal(t, 120, est.Breakdown[0].Minutes)
	assert.Equal(t, totalMinutes-120, est.Breakdown[1].Minutes)
	assert.Equal(t, 300.0, est.Breakdown[0].Amount)
	assert.Equal(t, 6300.0, est.Breakdown[1].Amount)
	assert.Equal(t, 6600.0, est.Total)
}

func TestEstimate_MinutesAddUp(t *testing.T) {
	svc := NewService()

	spans := [][2]string{
		{"2025-11-17T09:30", "2025-11-17T11:00"},
		{"2025-11-19T12:45", "2025-11-19T16:15"},
		{"2025-11-21T18:00", "2025-11-24T11:00"},
		{"2025-11-22T00:00", "2025-11-23T23:59"},
	}
	for _, span := range spans {
		start := mustResolve(t, span[0])
		end := mustResolve(t, span[1])

		est := svc.Estimate(100, start, end)

		sum := 0
		for _, line := range est.Breakdown {
			sum += line.Minutes
		}
		assert.Equal(t, int(end.Sub(start).Minutes()), sum, "span %v", span)
	}
}

func TestEstimate_MonotonicInDuration(t *testing.T) {
	svc := NewService()

	start := mustResolve(t, "2025-11-19T09:00")
	prev := 0.0
	for i := 1; i <= 48; i++ {
		end := start.Add(time.Duration(i) * 15 * time.Minute)
		total := svc.Estimate(250, start, end).Total
		assert.GreaterOrEqual(t, total, prev)
		prev = total
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	svc := NewService()

	start := mustResolve(t, "2025-11-17T09:30")
	end := mustResolve(t, "2025-11-17T11:00")

	first := svc.Estimate(300, start, end)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, svc.Estimate(300, start, end))
	}
}

func TestEstimate_ZeroOnBadInputs(t *testing.T) {
	svc := NewService()

	start := mustResolve(t, "2025-11-17T10:00")
	end := mustResolve(t, "2025-11-17T12:00")

	zero := Estimate{Breakdown: []BreakdownLine{}}
	assert.Equal(t, zero, svc.Estimate(0, start, end))
	assert.Equal(t, zero, svc.Estimate(-5, start, end))
	assert.Equal(t, zero, svc.Estimate(300, end, start))
	assert.Equal(t, zero, svc.Estimate(300, start, start))
	assert.Equal(t, zero, svc.Estimate(300, time.Time{}, end))
}

func TestEstimateLocal(t *testing.T) {
	svc := NewService()

	est, err := svc.EstimateLocal(300, "2025-11-17T09:30", "2025-11-17T11:00")
	require.NoError(t, err)
	assert.Equal(t, 600.0, est.Total)

	est, err = svc.EstimateLocal(300, "", "2025-11-17T11:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, est.Total)
	assert.Empty(t, est.Breakdown)

	_, err = svc.EstimateLocal(300, "2025-11-17", "2025-11-17T11:00")
	assert.ErrorIs(t, err, ist.ErrMalformed)
}
