package ist

import (
	"math"
	"time"
)

// Window is a half-open [Start, End) span of UTC instants.
type Window struct {
	Start time.Time
	End   time.Time
}

// OverlapMinutes returns the overlap between [from, to) and the window,
// rounded to the nearest minute, never negative.
func (w Window) OverlapMinutes(from, to time.Time) int {
	lo := from
	if w.Start.After(lo) {
		lo = w.Start
	}
	hi := to
	if w.End.Before(hi) {
		hi = w.End
	}
	if !hi.After(lo) {
		return 0
	}
	return int(math.Round(hi.Sub(lo).Minutes()))
}

// Peak windows recur every IST weekday: 10:00-13:00 and 16:00-19:00.
var peakHours = [2]struct{ startHour, startMin, endHour, endMin int }{
	{10, 0, 13, 0},
	{16, 0, 19, 0},
}

// PeakWindowsForDay returns the two peak windows of the IST calendar day
// containing t, expressed as UTC instants. Call it once per calendar day a
// span touches, not once per instant.
func PeakWindowsForDay(t time.Time) [2]Window {
	day := t.UTC().Add(Offset)
	y, m, d := day.Date()

	var out [2]Window
	for i, p := range peakHours {
		out[i] = Window{
			Start: time.Date(y, m, d, p.startHour, p.startMin, 0, 0, time.UTC).Add(-Offset),
			End:   time.Date(y, m, d, p.endHour, p.endMin, 0, 0, time.UTC).Add(-Offset),
		}
	}
	return out
}
