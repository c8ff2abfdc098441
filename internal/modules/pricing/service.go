package pricing

import (
	"math"
	"time"

	"roombook/internal/pkg/ist"
)

const (
	// PeakMultiplier applies to minutes inside a weekday peak window.
	PeakMultiplier = 1.5

	LabelPeak    = "Peak hours"
	LabelOffPeak = "Off-peak hours"

	minutesPerHour = 60
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Estimate prices the [start, end) span at the given hourly rate, prorated by
// minute, with peak-window minutes billed at PeakMultiplier. A non-positive
// rate or a non-increasing interval yields the zero estimate rather than an
// error: the form is still being edited and callers gate submission on the
// validator, not on this.
func (s *Service) Estimate(baseHourlyRate float64, start, end time.Time) Estimate {
	if baseHourlyRate <= 0 || start.IsZero() || end.IsZero() || !start.Before(end) {
		return Estimate{Breakdown: []BreakdownLine{}}
	}

	totalMinutes := int(math.Round(end.Sub(start).Minutes()))
	if totalMinutes < 0 {
		totalMinutes = 0
	}

	// Walk IST calendar days from the one containing start through the one
	// containing end. The cursor is anchored at UTC midnight and stepped in
	// 24h increments; with a fixed, DST-free offset this visits every IST day
	// the span touches.
	peakMinutes := 0
	for cursor := start.UTC().Truncate(24 * time.Hour); cursor.Before(end); cursor = cursor.Add(24 * time.Hour) {
		if !ist.IsWeekday(cursor) {
			continue
		}
		for _, w := range ist.PeakWindowsForDay(cursor) {
			peakMinutes += w.OverlapMinutes(start, end)
		}
	}

	offPeakMinutes := totalMinutes - peakMinutes
	if offPeakMinutes < 0 {
		offPeakMinutes = 0
	}

	peakAmount := float64(peakMinutes) / minutesPerHour * baseHourlyRate * PeakMultiplier
	offPeakAmount := float64(offPeakMinutes) / minutesPerHour * baseHourlyRate

	breakdown := make([]BreakdownLine, 0, 2)
	if peakMinutes > 0 {
		breakdown = append(breakdown, BreakdownLine{
			Label:   LabelPeak,
			Minutes: peakMinutes,
			Amount:  round2(peakAmount),
		})
	}
	if offPeakMinutes > 0 {
		breakdown = append(breakdown, BreakdownLine{
			Label:   LabelOffPeak,
			Minutes: offPeakMinutes,
			Amount:  round2(offPeakAmount),
		})
	}

	return Estimate{
		Total:     round2(peakAmount + offPeakAmount),
		Breakdown: breakdown,
	}
}

// EstimateLocal resolves IST wall-clock strings and prices the result. Empty
// strings short-circuit to the zero estimate; malformed ones surface
// ist.ErrMalformed.
func (s *Service) EstimateLocal(baseHourlyRate float64, startLocal, endLocal string) (Estimate, error) {
	start, err := ist.Resolve(startLocal)
	if err != nil {
		return Estimate{Breakdown: []BreakdownLine{}}, err
	}
	end, err := ist.Resolve(endLocal)
	if err != nil {
		return Estimate{Breakdown: []BreakdownLine{}}, err
	}
	return s.Estimate(baseHourlyRate, start, end), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
