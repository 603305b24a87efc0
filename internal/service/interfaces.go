package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"podcast_tracker/internal/domain"
)

type PodcastStore interface {
	// Upsert inserts or updates a podcast by uuid. Non-empty incoming
	// fields win; empty ones preserve the stored value. Reports whether a
	// new row was created.
	Upsert(ctx context.Context, podcast *domain.Podcast) (bool, error)
	// ListLive returns all non-deleted podcasts with EpisodeCount populated.
	ListLive(ctx context.Context) ([]domain.Podcast, error)
	MarkEnded(ctx context.Context, uuid string) error
	// Delete removes the row permanently. Only ever called for podcasts
	// with zero episodes.
	Delete(ctx context.Context, uuid string) error
}

type EpisodeStore interface {
	Upsert(ctx context.Context, episode *domain.Episode) (bool, error)
	ListLive(ctx context.Context) ([]domain.Episode, error)
	ListLiveByPodcast(ctx context.Context, podcastUUID string) ([]domain.Episode, error)
	Delete(ctx context.Context, uuid string) error
}

type ProgressStore interface {
	// Get returns the progress row for an episode, or nil when none exists.
	Get(ctx context.Context, episodeUUID string) (*domain.ListeningHistory, error)
	GetByEpisodes(ctx context.Context, episodeUUIDs []string) (map[string]domain.ListeningHistory, error)
	Upsert(ctx context.Context, history *domain.ListeningHistory) error
	Reassign(ctx context.Context, fromEpisode, toEpisode string) error
	Delete(ctx context.Context, episodeUUID string) error
}

type PlaySessionStore interface {
	Append(ctx context.Context, session *domain.PlaySession) error
	Reassign(ctx context.Context, fromEpisode, toEpisode string) error
}

type SyncLogStore interface {
	Record(ctx context.Context, report *domain.SyncReport) error
	SetLastSync(ctx context.Context, at time.Time) error
	// LastSync returns nil when no sync has ever completed.
	LastSync(ctx context.Context) (*time.Time, error)
	History(ctx context.Context, limit, offset int) ([]domain.SyncReport, error)
}

type FeedFetcher interface {
	// Fetch retrieves and parses a feed. A permanently gone feed yields an
	// error wrapping domain.ErrFeedGone; transient and parse failures yield
	// ordinary errors.
	Fetch(ctx context.Context, feedURL string) (*domain.Feed, error)
}

type ExportSource interface {
	Path() string
	Podcasts(ctx context.Context) ([]domain.ExportPodcast, error)
	Episodes(ctx context.Context) ([]domain.ExportEpisode, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, episode *domain.Episode, isNew bool) error
	Close() error
}
