package domain

import (
	"errors"
	"time"
)

// ErrFeedGone marks a feed the server reports as permanently gone
// (HTTP 404/410). It transitions the podcast to ended instead of failing
// the refresh run.
var ErrFeedGone = errors.New("feed gone")

type Podcast struct {
	UUID        string     `db:"uuid"`
	Title       string     `db:"title"`
	Author      string     `db:"author"`
	Description string     `db:"description"`
	FeedURL     string     `db:"feed_url"`
	WebsiteURL  string     `db:"website_url"`
	ImageURL    string     `db:"image_url"`
	IsEnded     bool       `db:"is_ended"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`

	// EpisodeCount is the number of live episodes; populated by list queries.
	EpisodeCount int `db:"episode_count"`
}

type Episode struct {
	UUID        string     `db:"uuid"`
	PodcastUUID string     `db:"podcast_uuid"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Duration    float64    `db:"duration"` // seconds
	PublishedAt *time.Time `db:"published_at"`
	MediaURL    string     `db:"media_url"`
	MediaType   string     `db:"media_type"`
	SizeBytes   int64      `db:"size_bytes"`
	VideoURL    string     `db:"video_url"`
	DeletedAt   *time.Time `db:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// Feed is the normalized result of one feed fetch.
type Feed struct {
	Title       string
	Author      string
	Description string
	ImageURL    string
	WebsiteURL  string
	Entries     []FeedEntry
}

// FeedEntry is one normalized feed item. UUID is the feed-provided
// identifier (stable hash of guid/link); it is only used for newly
// created episodes, resolution against existing rows happens first.
type FeedEntry struct {
	UUID        string
	Title       string
	Description string
	Duration    float64
	PublishedAt *time.Time
	MediaURL    string
	MediaType   string
	SizeBytes   int64
	VideoURL    string
}

// ExportPodcast is one podcast row from the mobile-app bulk export.
type ExportPodcast struct {
	UUID        string `db:"uuid"`
	Title       string `db:"title"`
	Author      string `db:"author"`
	Description string `db:"description"`
	FeedURL     string `db:"feed_url"`
	ImageURL    string `db:"image_url"`
	WasDeleted  bool   `db:"was_deleted"`
}

// ExportEpisode is one episode row from the bulk export. Timestamp fields
// are source-native numbers of ambiguous scale; the orchestrator runs them
// through reconcile.NormalizeTimestamp.
type ExportEpisode struct {
	UUID          string   `db:"uuid"`
	PodcastUUID   string   `db:"podcast_uuid"`
	Title         string   `db:"title"`
	Description   string   `db:"description"`
	Duration      float64  `db:"duration"`
	PublishedRaw  *float64 `db:"published_raw"`
	MediaURL      string   `db:"media_url"`
	MediaType     string   `db:"media_type"`
	SizeBytes     int64    `db:"size_bytes"`
	PlayedUpTo    float64  `db:"played_up_to"`
	PlayingStatus int      `db:"playing_status"`
	AddedRaw      *float64 `db:"added_raw"`
	LastPlayedRaw *float64 `db:"last_played_raw"`
	WasDeleted    bool     `db:"was_deleted"`
}
