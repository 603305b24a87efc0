package domain

import "time"

// Playing status values carried over from the mobile app.
const (
	StatusUnknown    = 0
	StatusNotPlayed  = 1
	StatusInProgress = 2
	StatusCompleted  = 3
)

// ListeningHistory is the single progress row per live episode.
type ListeningHistory struct {
	EpisodeUUID   string     `db:"episode_uuid"`
	PlayedUpTo    float64    `db:"played_up_to"`
	Duration      float64    `db:"duration"`
	PlayingStatus int        `db:"playing_status"`
	CompletionPct *float64   `db:"completion_percentage"`
	FirstPlayedAt *time.Time `db:"first_played_at"`
	LastPlayedAt  *time.Time `db:"last_played_at"`
	PlayCount     int        `db:"play_count"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// PlaySession is one discrete playback interval. Append-only; sessions are
// reassigned wholesale to the survivor during episode merge, never dropped.
type PlaySession struct {
	ID              int64      `db:"id"`
	EpisodeUUID     string     `db:"episode_uuid"`
	StartedAt       time.Time  `db:"started_at"`
	EndedAt         *time.Time `db:"ended_at"`
	DurationSeconds *float64   `db:"duration_seconds"`
	PlayedFrom      float64    `db:"played_from"`
	PlayedTo        float64    `db:"played_to"`
}
