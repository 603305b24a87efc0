package reconcile

import (
	"math"
	"time"

	"podcast_tracker/internal/domain"
)

// MergeProgress merges two progress records that describe the same episode.
// Played-up-to takes the max, first-played the earliest, last-played the
// latest, play counts are summed, and the completion percentage is
// recomputed from the merged values. Commutative: merge(a, b) and
// merge(b, a) carry the same listening state. Callers must apply it once
// per logical collision; the summed play count is the record of two
// distinct source observations.
func MergeProgress(a, b domain.ListeningHistory) domain.ListeningHistory {
	merged := a

	merged.PlayedUpTo = math.Max(a.PlayedUpTo, b.PlayedUpTo)
	merged.Duration = math.Max(a.Duration, b.Duration)
	if b.PlayingStatus > merged.PlayingStatus {
		merged.PlayingStatus = b.PlayingStatus
	}
	merged.FirstPlayedAt = earliest(a.FirstPlayedAt, b.FirstPlayedAt)
	merged.LastPlayedAt = latest(a.LastPlayedAt, b.LastPlayedAt)
	merged.PlayCount = a.PlayCount + b.PlayCount
	merged.CompletionPct = CompletionPercentage(merged.PlayedUpTo, merged.Duration)

	return merged
}

// CompletionPercentage derives the completion percentage, clamped to
// [0, 100]. Undefined (nil) when the duration is unknown.
func CompletionPercentage(playedUpTo, duration float64) *float64 {
	if duration <= 0 {
		return nil
	}
	pct := math.Min(100, math.Max(0, playedUpTo/duration*100))
	return &pct
}

func earliest(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Before(*a) {
		return b
	}
	return a
}

func latest(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.After(*a) {
		return b
	}
	return a
}
