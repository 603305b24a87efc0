package reconcile

import (
	"math"
	"time"
)

// Seconds between 2001-01-01 (the mobile app's epoch) and the Unix epoch.
const cocoaEpochOffset = 978307200

// NormalizeTimestamp converts a source-native numeric timestamp of ambiguous
// scale into a UTC time. Magnitudes above 1e10 are milliseconds since the
// Unix epoch; results below 1e9 are seconds since 2001-01-01 and get the
// fixed offset added; everything else is Unix seconds. Absent or
// unrepresentable input yields nil, never an error, so one bad row cannot
// abort a batch.
func NormalizeTimestamp(raw *float64) *time.Time {
	if raw == nil {
		return nil
	}

	v := *raw
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	if v > 1e10 {
		v /= 1000
	}
	if v < 1e9 {
		v += cocoaEpochOffset
	}
	if v < 0 || v > 1e10 {
		return nil
	}

	sec, frac := math.Modf(v)
	t := time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
	return &t
}
